package model

import (
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/td0m/devbook/pkg/date"
	"github.com/td0m/devbook/pkg/value"
)

// Person is what developers and clients have in common, for code that
// does not care which one it holds
type Person interface {
	Name() value.Name
	Phone() value.Phone
	Email() value.Email
	Address() value.Address
}

var (
	_ Person = &Developer{}
	_ Person = &Client{}
)

// Contact is the shared part of a developer and a client. Projects are
// referenced by name, the projects themselves live in the model.
type Contact struct {
	name     value.Name
	phone    value.Phone
	email    value.Email
	address  value.Address
	role     value.Role
	projects []value.Name
}

func NewContact(name value.Name, phone value.Phone, email value.Email, address value.Address, role value.Role, projects []value.Name) Contact {
	return Contact{
		name:     name,
		phone:    phone,
		email:    email,
		address:  address,
		role:     role,
		projects: projectSet(projects),
	}
}

func (c Contact) Name() value.Name       { return c.name }
func (c Contact) Phone() value.Phone     { return c.phone }
func (c Contact) Email() value.Email     { return c.email }
func (c Contact) Address() value.Address { return c.address }
func (c Contact) Role() value.Role       { return c.role }

// Projects are sorted by name and never contain duplicates
func (c Contact) Projects() []value.Name {
	ps := make([]value.Name, len(c.projects))
	copy(ps, c.projects)
	return ps
}

func (c Contact) HasProject(name value.Name) bool {
	return slice.Contains(c.projects, name)
}

func (c *Contact) renameProject(from, to value.Name) {
	for i, p := range c.projects {
		if p == from {
			c.projects[i] = to
		}
	}
	c.projects = projectSet(c.projects)
}

func (c *Contact) removeProject(name value.Name) {
	kept := c.projects[:0]
	for _, p := range c.projects {
		if p != name {
			kept = append(kept, p)
		}
	}
	c.projects = kept
}

func projectSet(names []value.Name) []value.Name {
	seen := map[value.Name]bool{}
	out := []value.Name{}
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

type Developer struct {
	Contact
	salary     value.Salary
	dateJoined date.Date
}

func NewDeveloper(c Contact, salary value.Salary, joined date.Date) *Developer {
	return &Developer{Contact: c, salary: salary, dateJoined: joined}
}

func (d *Developer) Salary() value.Salary  { return d.salary }
func (d *Developer) DateJoined() date.Date { return d.dateJoined }

type Client struct {
	Contact
	organisation value.Organisation
	document     value.Document
}

func NewClient(c Contact, org value.Organisation, doc value.Document) *Client {
	return &Client{Contact: c, organisation: org, document: doc}
}

func (c *Client) Organisation() value.Organisation { return c.organisation }
func (c *Client) Document() value.Document         { return c.document }
