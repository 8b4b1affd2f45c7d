package parser

import (
	"strings"

	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

var projectPrefixes = []Prefix{PrefixName, PrefixDescription, PrefixDeadline}

var projectFields = []Prefix{PrefixName, PrefixDescription}

func parseAddProject(args string) (command.Command, error) {
	am := Tokenize(args, projectPrefixes...)
	if !am.ArePrefixesPresent(projectFields...) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddProjectUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(projectFields...); err != nil {
		return nil, err
	}

	f := &fields{am: am, usage: command.AddProjectUsage}
	name := required(f, PrefixName, value.ParseName)
	desc := required(f, PrefixDescription, value.ParseDescription)
	deadlines := every(f, PrefixDeadline, model.ParseDeadline)
	if f.err != nil {
		return nil, f.err
	}
	return command.AddProject{Project: model.NewProject(name, desc, deadlines)}, nil
}

func parseEditProject(args string) (command.Command, error) {
	am := Tokenize(args, projectPrefixes...)
	index, err := value.ParseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditProjectUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(projectFields...); err != nil {
		return nil, err
	}

	f := &fields{am: am, usage: command.EditProjectUsage}
	edit := command.ProjectEdit{
		Name:        optional(f, PrefixName, value.ParseName),
		Description: optional(f, PrefixDescription, value.ParseDescription),
	}
	edit.Deadlines = replacement(f, PrefixDeadline, model.ParseDeadline)
	if f.err != nil {
		return nil, f.err
	}
	if edit.IsEmpty() {
		return nil, notEdited(command.EditProjectUsage)
	}
	return command.EditProject{Index: index, Edit: edit}, nil
}

func parseDeleteProject(args string) (command.Command, error) {
	index, err := value.ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteProjectUsage)
	}
	return command.DeleteProject{Index: index}, nil
}

func parseFindProject(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixDescription, PrefixPriority)
	if am.Preamble() != "" || !searchable(am, PrefixName, PrefixDescription, PrefixPriority) {
		return nil, invalidFormat(command.FindProjectUsage)
	}

	f := &fields{am: am, usage: command.FindProjectUsage}
	priorities := []value.Priority{}
	for _, k := range keywords(am, PrefixPriority) {
		p, err := value.ParsePriority(strings.ToUpper(k))
		if err != nil {
			f.fail(err)
			break
		}
		priorities = append(priorities, p)
	}
	if f.err != nil {
		return nil, f.err
	}
	return command.FindProjects{
		Names:        keywords(am, PrefixName),
		Descriptions: keywords(am, PrefixDescription),
		Priorities:   priorities,
	}, nil
}

// parseDeadlineIndices reads PROJECT_INDEX DEADLINE_INDEX
func parseDeadlineIndices(args, usage string) (project, deadline value.Index, err error) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return project, deadline, invalidFormat(usage)
	}
	if project, err = value.ParseIndex(parts[0]); err != nil {
		return project, deadline, invalidFormat(usage)
	}
	if deadline, err = value.ParseIndex(parts[1]); err != nil {
		return project, deadline, invalidFormat(usage)
	}
	return project, deadline, nil
}

func parseMarkDeadline(args string) (command.Command, error) {
	p, d, err := parseDeadlineIndices(args, command.MarkDeadlineUsage)
	if err != nil {
		return nil, err
	}
	return command.MarkDeadline{Project: p, Deadline: d}, nil
}

func parseUnmarkDeadline(args string) (command.Command, error) {
	p, d, err := parseDeadlineIndices(args, command.UnmarkDeadlineUsage)
	if err != nil {
		return nil, err
	}
	return command.UnmarkDeadline{Project: p, Deadline: d}, nil
}
