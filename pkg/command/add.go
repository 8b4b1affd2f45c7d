package command

import (
	"errors"
	"fmt"

	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
)

type AddDeveloper struct {
	Developer *model.Developer
}

func (c AddDeveloper) Execute(m *model.Model) (Result, error) {
	if err := m.AddDeveloper(c.Developer); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.AddedDeveloper, messages.FormatDeveloper(c.Developer)),
		Tab:      DeveloperTab,
		Mutated:  true,
	}, nil
}

type AddClient struct {
	Client *model.Client
}

func (c AddClient) Execute(m *model.Model) (Result, error) {
	if err := m.AddClient(c.Client); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.AddedClient, messages.FormatClient(c.Client)),
		Tab:      ClientTab,
		Mutated:  true,
	}, nil
}

type AddProject struct {
	Project *model.Project
}

func (c AddProject) Execute(m *model.Model) (Result, error) {
	// the model takes ownership, keep the command's copy untouched
	p := c.Project.Clone()
	if err := m.AddProject(p); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.AddedProject, messages.FormatProject(p)),
		Tab:      ProjectTab,
		Mutated:  true,
	}, nil
}

// modelError turns the model's sentinels into user facing errors
func modelError(err error) error {
	switch {
	case errors.Is(err, model.ErrDuplicateDeveloper):
		return fail(ErrDuplicate, messages.DuplicateDeveloper)
	case errors.Is(err, model.ErrDuplicateClient):
		return fail(ErrDuplicate, messages.DuplicateClient)
	case errors.Is(err, model.ErrDuplicateProject):
		return fail(ErrDuplicate, messages.DuplicateProject)
	case errors.Is(err, model.ErrUnknownProject):
		return fail(ErrUnknownProject, messages.UnknownProject)
	case errors.Is(err, model.ErrDeadlineNotFound):
		return fail(ErrInvalidIndex, messages.InvalidDeadlineIndex)
	}
	return err
}
