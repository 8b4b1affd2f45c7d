package command

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

// FindDevelopers keeps developers that match every non-empty keyword group.
// A group matches when any of its keywords equals a word of the field.
type FindDevelopers struct {
	Names    []string
	Roles    []string
	Projects []string
}

func (c FindDevelopers) Execute(m *model.Model) (Result, error) {
	m.FilterDevelopers(func(d *model.Developer) bool {
		return matches(d.Name().String(), c.Names) &&
			matches(d.Role().String(), c.Roles) &&
			matchesProjects(d.Projects(), c.Projects)
	})
	return Result{
		Feedback: fmt.Sprintf(messages.DevelopersListedOverview, len(m.FilteredDevelopers())),
		Tab:      DeveloperTab,
	}, nil
}

type FindClients struct {
	Names         []string
	Roles         []string
	Organisations []string
	Projects      []string
}

func (c FindClients) Execute(m *model.Model) (Result, error) {
	m.FilterClients(func(cl *model.Client) bool {
		return matches(cl.Name().String(), c.Names) &&
			matches(cl.Role().String(), c.Roles) &&
			matches(cl.Organisation().String(), c.Organisations) &&
			matchesProjects(cl.Projects(), c.Projects)
	})
	return Result{
		Feedback: fmt.Sprintf(messages.ClientsListedOverview, len(m.FilteredClients())),
		Tab:      ClientTab,
	}, nil
}

type FindProjects struct {
	Names        []string
	Descriptions []string
	// Priorities keeps projects with at least one deadline of any of them
	Priorities []value.Priority
}

func (c FindProjects) Execute(m *model.Model) (Result, error) {
	m.FilterProjects(func(p *model.Project) bool {
		return matches(p.Name().String(), c.Names) &&
			matches(p.Description().String(), c.Descriptions) &&
			hasPriority(p, c.Priorities)
	})
	return Result{
		Feedback: fmt.Sprintf(messages.ProjectsListedOverview, len(m.FilteredProjects())),
		Tab:      ProjectTab,
	}, nil
}

// matches is true for an empty keyword list
func matches(field string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	words := strings.Fields(field)
	for _, k := range keywords {
		_, ok := slice.Find(words, func(w string) bool {
			return strings.EqualFold(w, k)
		})
		if ok {
			return true
		}
	}
	return false
}

func matchesProjects(projects []value.Name, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, p := range projects {
		if matches(p.String(), keywords) {
			return true
		}
	}
	return false
}

func hasPriority(p *model.Project, priorities []value.Priority) bool {
	if len(priorities) == 0 {
		return true
	}
	for _, d := range p.Deadlines() {
		if slice.Contains(priorities, d.Priority()) {
			return true
		}
	}
	return false
}
