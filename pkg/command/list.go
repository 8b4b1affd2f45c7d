package command

import (
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
)

type ListDevelopers struct{}

func (ListDevelopers) Execute(m *model.Model) (Result, error) {
	m.FilterDevelopers(model.All[*model.Developer])
	return Result{Feedback: messages.ListedDevelopers, Tab: DeveloperTab}, nil
}

type ListClients struct{}

func (ListClients) Execute(m *model.Model) (Result, error) {
	m.FilterClients(model.All[*model.Client])
	return Result{Feedback: messages.ListedClients, Tab: ClientTab}, nil
}

type ListProjects struct{}

func (ListProjects) Execute(m *model.Model) (Result, error) {
	m.FilterProjects(model.All[*model.Project])
	return Result{Feedback: messages.ListedProjects, Tab: ProjectTab}, nil
}
