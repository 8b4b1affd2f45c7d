package model

import (
	"errors"

	"github.com/td0m/devbook/pkg/value"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateDeveloper = errors.New("developer with the given name already exists")
	ErrDuplicateClient    = errors.New("client with the given name already exists")
	ErrDuplicateProject   = errors.New("project with the given name already exists")
	ErrUnknownProject     = errors.New("referenced project does not exist")
	ErrDeadlineNotFound   = errors.New("deadline not found")
)

// Entity says which of the three collections changed
type Entity int

const (
	Developers Entity = iota
	Clients
	Projects
)

type EventKind int

const (
	Added EventKind = iota
	Edited
	Deleted
	Filtered
	DeadlineChanged
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Edited:
		return "edited"
	case Deleted:
		return "deleted"
	case Filtered:
		return "filtered"
	case DeadlineChanged:
		return "deadline changed"
	}
	return "unknown"
}

// Event is emitted after every change to the model. The name is that of the
// entity affected, empty for filter changes.
type Event struct {
	Kind   EventKind
	Entity Entity
	Name   string
}

type Listener func(Event)

// Model is owned by a single command loop. It is not safe for concurrent
// use; hosts that share one between goroutines must serialise access.
type Model struct {
	developers *List[*Developer]
	clients    *List[*Client]
	projects   *List[*Project]

	listeners []Listener
}

func New() *Model {
	return &Model{
		developers: newList[*Developer](),
		clients:    newList[*Client](),
		projects:   newList[*Project](),
	}
}

// Subscribe registers l for every future event, call the returned func to stop
func (m *Model) Subscribe(l Listener) func() {
	m.listeners = append(m.listeners, l)
	i := len(m.listeners) - 1
	return func() {
		m.listeners[i] = nil
	}
}

func (m *Model) emit(e Event) {
	for _, l := range m.listeners {
		if l != nil {
			l(e)
		}
	}
}

func (m *Model) Developers() []*Developer         { return m.developers.All() }
func (m *Model) FilteredDevelopers() []*Developer { return m.developers.Filtered() }
func (m *Model) Clients() []*Client               { return m.clients.All() }
func (m *Model) FilteredClients() []*Client       { return m.clients.Filtered() }
func (m *Model) Projects() []*Project             { return m.projects.All() }
func (m *Model) FilteredProjects() []*Project     { return m.projects.Filtered() }

func (m *Model) HasDeveloper(name value.Name) bool { return m.developers.Contains(name) }
func (m *Model) HasClient(name value.Name) bool    { return m.clients.Contains(name) }
func (m *Model) HasProject(name value.Name) bool   { return m.projects.Contains(name) }

func (m *Model) Project(name value.Name) (*Project, bool) { return m.projects.Get(name) }

// ProjectsExist reports whether every name refers to a stored project
func (m *Model) ProjectsExist(names []value.Name) bool {
	for _, n := range names {
		if !m.projects.Contains(n) {
			return false
		}
	}
	return true
}

func (m *Model) AddDeveloper(d *Developer) error {
	if m.developers.Contains(d.Name()) {
		return ErrDuplicateDeveloper
	}
	if !m.ProjectsExist(d.projects) {
		return ErrUnknownProject
	}
	m.developers.add(d)
	m.emit(Event{Kind: Added, Entity: Developers, Name: d.Name().String()})
	return nil
}

// AddDevelopers adds all of ds or none of them
func (m *Model) AddDevelopers(ds []*Developer) error {
	seen := map[value.Name]bool{}
	for _, d := range ds {
		if seen[d.Name()] || m.developers.Contains(d.Name()) {
			return ErrDuplicateDeveloper
		}
		seen[d.Name()] = true
		if !m.ProjectsExist(d.projects) {
			return ErrUnknownProject
		}
	}
	for _, d := range ds {
		m.developers.add(d)
		m.emit(Event{Kind: Added, Entity: Developers, Name: d.Name().String()})
	}
	return nil
}

func (m *Model) DeleteDeveloper(d *Developer) error {
	if err := m.developers.remove(d); err != nil {
		return err
	}
	m.emit(Event{Kind: Deleted, Entity: Developers, Name: d.Name().String()})
	return nil
}

// SetDeveloper replaces target with edited, keeping its position
func (m *Model) SetDeveloper(target, edited *Developer) error {
	if m.developers.indexOf(target) < 0 {
		return ErrNotFound
	}
	if m.developers.clashes(target, edited.Name()) {
		return ErrDuplicateDeveloper
	}
	if !m.ProjectsExist(edited.projects) {
		return ErrUnknownProject
	}
	if err := m.developers.replace(target, edited); err != nil {
		return err
	}
	m.emit(Event{Kind: Edited, Entity: Developers, Name: edited.Name().String()})
	return nil
}

func (m *Model) FilterDevelopers(p Predicate[*Developer]) {
	m.developers.filter(p)
	m.emit(Event{Kind: Filtered, Entity: Developers})
}

func (m *Model) AddClient(c *Client) error {
	if m.clients.Contains(c.Name()) {
		return ErrDuplicateClient
	}
	if !m.ProjectsExist(c.projects) {
		return ErrUnknownProject
	}
	m.clients.add(c)
	m.emit(Event{Kind: Added, Entity: Clients, Name: c.Name().String()})
	return nil
}

// AddClients adds all of cs or none of them
func (m *Model) AddClients(cs []*Client) error {
	seen := map[value.Name]bool{}
	for _, c := range cs {
		if seen[c.Name()] || m.clients.Contains(c.Name()) {
			return ErrDuplicateClient
		}
		seen[c.Name()] = true
		if !m.ProjectsExist(c.projects) {
			return ErrUnknownProject
		}
	}
	for _, c := range cs {
		m.clients.add(c)
		m.emit(Event{Kind: Added, Entity: Clients, Name: c.Name().String()})
	}
	return nil
}

func (m *Model) DeleteClient(c *Client) error {
	if err := m.clients.remove(c); err != nil {
		return err
	}
	m.emit(Event{Kind: Deleted, Entity: Clients, Name: c.Name().String()})
	return nil
}

func (m *Model) SetClient(target, edited *Client) error {
	if m.clients.indexOf(target) < 0 {
		return ErrNotFound
	}
	if m.clients.clashes(target, edited.Name()) {
		return ErrDuplicateClient
	}
	if !m.ProjectsExist(edited.projects) {
		return ErrUnknownProject
	}
	if err := m.clients.replace(target, edited); err != nil {
		return err
	}
	m.emit(Event{Kind: Edited, Entity: Clients, Name: edited.Name().String()})
	return nil
}

func (m *Model) FilterClients(p Predicate[*Client]) {
	m.clients.filter(p)
	m.emit(Event{Kind: Filtered, Entity: Clients})
}

func (m *Model) AddProject(p *Project) error {
	if m.projects.Contains(p.Name()) {
		return ErrDuplicateProject
	}
	m.projects.add(p)
	m.emit(Event{Kind: Added, Entity: Projects, Name: p.Name().String()})
	return nil
}

// DeleteProject also drops the project from every developer and client
func (m *Model) DeleteProject(p *Project) error {
	if err := m.projects.remove(p); err != nil {
		return err
	}
	for _, d := range m.developers.items {
		d.removeProject(p.Name())
	}
	for _, c := range m.clients.items {
		c.removeProject(p.Name())
	}
	m.developers.refresh()
	m.clients.refresh()
	m.emit(Event{Kind: Deleted, Entity: Projects, Name: p.Name().String()})
	return nil
}

// SetProject replaces target with edited. A rename is carried over to every
// developer and client that references the project.
func (m *Model) SetProject(target, edited *Project) error {
	if m.projects.indexOf(target) < 0 {
		return ErrNotFound
	}
	if m.projects.clashes(target, edited.Name()) {
		return ErrDuplicateProject
	}
	if err := m.projects.replace(target, edited); err != nil {
		return err
	}
	if from, to := target.Name(), edited.Name(); from != to {
		for _, d := range m.developers.items {
			d.renameProject(from, to)
		}
		for _, c := range m.clients.items {
			c.renameProject(from, to)
		}
		m.developers.refresh()
		m.clients.refresh()
	}
	m.emit(Event{Kind: Edited, Entity: Projects, Name: edited.Name().String()})
	return nil
}

func (m *Model) FilterProjects(p Predicate[*Project]) {
	m.projects.filter(p)
	m.emit(Event{Kind: Filtered, Entity: Projects})
}

// MarkDeadline marks the i-th (zero based) deadline of p as done
func (m *Model) MarkDeadline(p *Project, i int) error {
	return m.setDeadlineDone(p, i, true)
}

// UnmarkDeadline marks the i-th (zero based) deadline of p as not done
func (m *Model) UnmarkDeadline(p *Project, i int) error {
	return m.setDeadlineDone(p, i, false)
}

func (m *Model) setDeadlineDone(p *Project, i int, done bool) error {
	if m.projects.indexOf(p) < 0 {
		return ErrNotFound
	}
	d, err := p.Deadline(i)
	if err != nil {
		return err
	}
	if done {
		d.Mark()
	} else {
		d.Unmark()
	}
	m.emit(Event{Kind: DeadlineChanged, Entity: Projects, Name: p.Name().String()})
	return nil
}
