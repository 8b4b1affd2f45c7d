package command

import (
	"fmt"

	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

type DeleteDeveloper struct {
	Index value.Index
}

func (c DeleteDeveloper) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredDevelopers()
	if !c.Index.In(len(shown)) {
		return Result{}, fail(ErrInvalidIndex, messages.InvalidDeveloperIndex)
	}
	d := shown[c.Index.ZeroBased()]
	if err := m.DeleteDeveloper(d); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.DeletedDeveloper, messages.FormatDeveloper(d)),
		Tab:      DeveloperTab,
		Mutated:  true,
	}, nil
}

type DeleteClient struct {
	Index value.Index
}

func (c DeleteClient) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredClients()
	if !c.Index.In(len(shown)) {
		return Result{}, fail(ErrInvalidIndex, messages.InvalidClientIndex)
	}
	cl := shown[c.Index.ZeroBased()]
	if err := m.DeleteClient(cl); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.DeletedClient, messages.FormatClient(cl)),
		Tab:      ClientTab,
		Mutated:  true,
	}, nil
}

type DeleteProject struct {
	Index value.Index
}

func (c DeleteProject) Execute(m *model.Model) (Result, error) {
	shown := m.FilteredProjects()
	if !c.Index.In(len(shown)) {
		return Result{}, fail(ErrInvalidIndex, messages.InvalidProjectIndex)
	}
	p := shown[c.Index.ZeroBased()]
	if err := m.DeleteProject(p); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.DeletedProject, messages.FormatProject(p)),
		Tab:      ProjectTab,
		Mutated:  true,
	}, nil
}
