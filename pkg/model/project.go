package model

import "github.com/td0m/devbook/pkg/value"

// Project owns its deadlines, in insertion order
type Project struct {
	name        value.Name
	description value.Description
	deadlines   []*Deadline
}

func NewProject(name value.Name, desc value.Description, deadlines []*Deadline) *Project {
	ds := make([]*Deadline, len(deadlines))
	copy(ds, deadlines)
	return &Project{name: name, description: desc, deadlines: ds}
}

func (p *Project) Name() value.Name               { return p.name }
func (p *Project) Description() value.Description { return p.description }

// Deadlines returns the project's deadlines in display order. The slice is a
// copy, the deadlines are not.
func (p *Project) Deadlines() []*Deadline {
	ds := make([]*Deadline, len(p.deadlines))
	copy(ds, p.deadlines)
	return ds
}

func (p *Project) DeadlineCount() int {
	return len(p.deadlines)
}

// Deadline looks up a deadline by its zero based position
func (p *Project) Deadline(i int) (*Deadline, error) {
	if i < 0 || i >= len(p.deadlines) {
		return nil, ErrDeadlineNotFound
	}
	return p.deadlines[i], nil
}

// Clone copies the project and every deadline it owns
func (p *Project) Clone() *Project {
	c := &Project{name: p.name, description: p.description, deadlines: make([]*Deadline, len(p.deadlines))}
	for i, d := range p.deadlines {
		c.deadlines[i] = d.clone()
	}
	return c
}
