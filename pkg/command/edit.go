package command

import (
	"fmt"

	"github.com/td0m/devbook/pkg/date"
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

// ContactEdit holds the fields to overwrite, nil fields are kept
type ContactEdit struct {
	Name     *value.Name
	Phone    *value.Phone
	Email    *value.Email
	Address  *value.Address
	Role     *value.Role
	Projects *[]value.Name
}

func (e ContactEdit) IsEmpty() bool {
	return e.Name == nil && e.Phone == nil && e.Email == nil && e.Address == nil && e.Role == nil && e.Projects == nil
}

func (e ContactEdit) apply(c model.Contact) model.Contact {
	name, phone, email, address, role, projects := c.Name(), c.Phone(), c.Email(), c.Address(), c.Role(), c.Projects()
	if e.Name != nil {
		name = *e.Name
	}
	if e.Phone != nil {
		phone = *e.Phone
	}
	if e.Email != nil {
		email = *e.Email
	}
	if e.Address != nil {
		address = *e.Address
	}
	if e.Role != nil {
		role = *e.Role
	}
	if e.Projects != nil {
		projects = *e.Projects
	}
	return model.NewContact(name, phone, email, address, role, projects)
}

type DeveloperEdit struct {
	ContactEdit
	Salary     *value.Salary
	DateJoined *date.Date
}

func (e DeveloperEdit) IsEmpty() bool {
	return e.ContactEdit.IsEmpty() && e.Salary == nil && e.DateJoined == nil
}

type EditDeveloper struct {
	Index value.Index
	Edit  DeveloperEdit
}

func (c EditDeveloper) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredDevelopers()
	if !c.Index.In(len(shown)) {
		return Result{}, fail(ErrInvalidIndex, messages.InvalidDeveloperIndex)
	}
	target := shown[c.Index.ZeroBased()]
	salary, joined := target.Salary(), target.DateJoined()
	if c.Edit.Salary != nil {
		salary = *c.Edit.Salary
	}
	if c.Edit.DateJoined != nil {
		joined = *c.Edit.DateJoined
	}
	edited := model.NewDeveloper(c.Edit.apply(target.Contact), salary, joined)
	if err := m.SetDeveloper(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.EditedDeveloper, messages.FormatDeveloper(edited)),
		Tab:      DeveloperTab,
		Mutated:  true,
	}, nil
}

type ClientEdit struct {
	ContactEdit
	Organisation *value.Organisation
	Document     *value.Document
}

func (e ClientEdit) IsEmpty() bool {
	return e.ContactEdit.IsEmpty() && e.Organisation == nil && e.Document == nil
}

type EditClient struct {
	Index value.Index
	Edit  ClientEdit
}

func (c EditClient) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredClients()
	if !c.Index.In(len(shown)) {
		return Result{}, fail(ErrInvalidIndex, messages.InvalidClientIndex)
	}
	target := shown[c.Index.ZeroBased()]
	org, doc := target.Organisation(), target.Document()
	if c.Edit.Organisation != nil {
		org = *c.Edit.Organisation
	}
	if c.Edit.Document != nil {
		doc = *c.Edit.Document
	}
	edited := model.NewClient(c.Edit.apply(target.Contact), org, doc)
	if err := m.SetClient(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.EditedClient, messages.FormatClient(edited)),
		Tab:      ClientTab,
		Mutated:  true,
	}, nil
}

type ProjectEdit struct {
	Name        *value.Name
	Description *value.Description
	// Deadlines replaces the whole list when set
	Deadlines *[]*model.Deadline
}

func (e ProjectEdit) IsEmpty() bool {
	return e.Name == nil && e.Description == nil && e.Deadlines == nil
}

type EditProject struct {
	Index value.Index
	Edit  ProjectEdit
}

func (c EditProject) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredProjects()
	if !c.Index.In(len(shown)) {
		return Result{}, fail(ErrInvalidIndex, messages.InvalidProjectIndex)
	}
	target := shown[c.Index.ZeroBased()]
	name, desc, deadlines := target.Name(), target.Description(), target.Deadlines()
	if c.Edit.Name != nil {
		name = *c.Edit.Name
	}
	if c.Edit.Description != nil {
		desc = *c.Edit.Description
	}
	if c.Edit.Deadlines != nil {
		deadlines = *c.Edit.Deadlines
	}
	// cloned so that the model never shares deadlines with the command
	edited := model.NewProject(name, desc, deadlines).Clone()
	if err := m.SetProject(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.EditedProject, messages.FormatProject(edited)),
		Tab:      ProjectTab,
		Mutated:  true,
	}, nil
}
