package command

import (
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

// MarkDeadline moves a deadline to done. Marking a done deadline succeeds
// and changes nothing.
type MarkDeadline struct {
	Project  value.Index
	Deadline value.Index
}

func (c MarkDeadline) Execute(m *model.Model) (Result, error) {
	p, err := resolveDeadline(m, c.Project, c.Deadline)
	if err != nil {
		return Result{}, err
	}
	if err := m.MarkDeadline(p, c.Deadline.ZeroBased()); err != nil {
		return Result{}, modelError(err)
	}
	return Result{Feedback: messages.MarkedDeadline, Tab: ProjectTab, Mutated: true}, nil
}

// UnmarkDeadline moves a deadline back to not done. Unmarking a deadline
// that is not done succeeds and changes nothing.
type UnmarkDeadline struct {
	Project  value.Index
	Deadline value.Index
}

func (c UnmarkDeadline) Execute(m *model.Model) (Result, error) {
	p, err := resolveDeadline(m, c.Project, c.Deadline)
	if err != nil {
		return Result{}, err
	}
	if err := m.UnmarkDeadline(p, c.Deadline.ZeroBased()); err != nil {
		return Result{}, modelError(err)
	}
	return Result{Feedback: messages.UnmarkedDeadline, Tab: ProjectTab, Mutated: true}, nil
}

// resolveDeadline checks both indices against the displayed projects before
// anything is touched. Both are compared zero based, so the last deadline
// of a project with n deadlines is user index n.
func resolveDeadline(m *model.Model, project, deadline value.Index) (*model.Project, error) {
	shown := m.FilteredProjects()
	if !project.In(len(shown)) {
		return nil, fail(ErrInvalidIndex, messages.InvalidProjectIndex)
	}
	p := shown[project.ZeroBased()]
	if !deadline.In(p.DeadlineCount()) {
		return nil, fail(ErrInvalidIndex, messages.InvalidDeadlineIndex)
	}
	return p, nil
}
