package model

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/td0m/devbook/pkg/date"
	"github.com/td0m/devbook/pkg/value"
)

// Snapshot is the plain form of a model that storage reads and writes.
// Deadlines are kept in their canonical text form.
type Snapshot struct {
	Developers []DeveloperRecord `json:"developers"`
	Clients    []ClientRecord    `json:"clients"`
	Projects   []ProjectRecord   `json:"projects"`
}

type ContactRecord struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Address  string   `json:"address"`
	Role     string   `json:"role"`
	Projects []string `json:"projects"`
}

type DeveloperRecord struct {
	ContactRecord
	Salary     string `json:"salary"`
	DateJoined string `json:"dateJoined"`
}

type ClientRecord struct {
	ContactRecord
	Organisation string `json:"organisation"`
	Document     string `json:"document"`
}

type ProjectRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Deadlines   []string `json:"deadlines"`
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Developers) == 0 && len(s.Clients) == 0 && len(s.Projects) == 0
}

// Snapshot captures the full lists, filters are not part of it
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Developers: slice.Map(m.developers.items, func(_ int, d *Developer) DeveloperRecord {
			return DeveloperRecord{
				ContactRecord: contactRecord(d.Contact),
				Salary:        d.salary.String(),
				DateJoined:    d.dateJoined.String(),
			}
		}),
		Clients: slice.Map(m.clients.items, func(_ int, c *Client) ClientRecord {
			return ClientRecord{
				ContactRecord: contactRecord(c.Contact),
				Organisation:  c.organisation.String(),
				Document:      c.document.String(),
			}
		}),
		Projects: slice.Map(m.projects.items, func(_ int, p *Project) ProjectRecord {
			return ProjectRecord{
				Name:        p.name.String(),
				Description: p.description.String(),
				Deadlines: slice.Map(p.deadlines, func(_ int, d *Deadline) string {
					return d.String()
				}),
			}
		}),
	}
}

func contactRecord(c Contact) ContactRecord {
	return ContactRecord{
		Name:    c.name.String(),
		Phone:   c.phone.String(),
		Email:   c.email.String(),
		Address: c.address.String(),
		Role:    c.role.String(),
		Projects: slice.Map(c.projects, func(_ int, n value.Name) string {
			return n.String()
		}),
	}
}

// FromSnapshot rebuilds a model, validating every field on the way in.
// Projects are loaded first so that references can be checked.
func FromSnapshot(s Snapshot) (*Model, error) {
	m := New()
	for i, r := range s.Projects {
		p, err := r.project()
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", i+1, err)
		}
		if err := m.AddProject(p); err != nil {
			return nil, fmt.Errorf("project %d: %w", i+1, err)
		}
	}
	for i, r := range s.Developers {
		d, err := r.Developer()
		if err != nil {
			return nil, fmt.Errorf("developer %d: %w", i+1, err)
		}
		if err := m.AddDeveloper(d); err != nil {
			return nil, fmt.Errorf("developer %d: %w", i+1, err)
		}
	}
	for i, r := range s.Clients {
		c, err := r.Client()
		if err != nil {
			return nil, fmt.Errorf("client %d: %w", i+1, err)
		}
		if err := m.AddClient(c); err != nil {
			return nil, fmt.Errorf("client %d: %w", i+1, err)
		}
	}
	return m, nil
}

func (r ContactRecord) contact() (Contact, error) {
	name, err := value.ParseName(r.Name)
	if err != nil {
		return Contact{}, err
	}
	phone, err := value.ParsePhone(r.Phone)
	if err != nil {
		return Contact{}, err
	}
	email, err := value.ParseEmail(r.Email)
	if err != nil {
		return Contact{}, err
	}
	address, err := value.ParseAddress(r.Address)
	if err != nil {
		return Contact{}, err
	}
	role, err := value.ParseRole(r.Role)
	if err != nil {
		return Contact{}, err
	}
	projects := make([]value.Name, 0, len(r.Projects))
	for _, p := range r.Projects {
		n, err := value.ParseName(p)
		if err != nil {
			return Contact{}, err
		}
		projects = append(projects, n)
	}
	return NewContact(name, phone, email, address, role, projects), nil
}

// Developer validates the record
func (r DeveloperRecord) Developer() (*Developer, error) {
	c, err := r.contact()
	if err != nil {
		return nil, err
	}
	salary, err := value.ParseSalary(r.Salary)
	if err != nil {
		return nil, err
	}
	joined, err := date.Parse(r.DateJoined)
	if err != nil {
		return nil, err
	}
	return NewDeveloper(c, salary, joined), nil
}

// Client validates the record
func (r ClientRecord) Client() (*Client, error) {
	c, err := r.contact()
	if err != nil {
		return nil, err
	}
	org, err := value.ParseOrganisation(r.Organisation)
	if err != nil {
		return nil, err
	}
	doc, err := value.ParseDocument(r.Document)
	if err != nil {
		return nil, err
	}
	return NewClient(c, org, doc), nil
}

func (r ProjectRecord) project() (*Project, error) {
	name, err := value.ParseName(r.Name)
	if err != nil {
		return nil, err
	}
	desc, err := value.ParseDescription(r.Description)
	if err != nil {
		return nil, err
	}
	deadlines := make([]*Deadline, 0, len(r.Deadlines))
	for _, s := range r.Deadlines {
		d, err := ParseDeadline(s)
		if err != nil {
			return nil, err
		}
		deadlines = append(deadlines, d)
	}
	return NewProject(name, desc, deadlines), nil
}
