package parser

import (
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/date"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

var developerPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRole,
	PrefixSalary, PrefixDateJoined, PrefixProject,
}

// single valued ones, in field order
var developerFields = developerPrefixes[:len(developerPrefixes)-1]

func parseAddDeveloper(args string) (command.Command, error) {
	am := Tokenize(args, developerPrefixes...)
	if !am.ArePrefixesPresent(developerFields...) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddDeveloperUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(developerFields...); err != nil {
		return nil, err
	}

	f := &fields{am: am, usage: command.AddDeveloperUsage}
	name := required(f, PrefixName, value.ParseName)
	phone := required(f, PrefixPhone, value.ParsePhone)
	email := required(f, PrefixEmail, value.ParseEmail)
	address := required(f, PrefixAddress, value.ParseAddress)
	role := required(f, PrefixRole, value.ParseRole)
	salary := required(f, PrefixSalary, value.ParseSalary)
	joined := required(f, PrefixDateJoined, date.Parse)
	projects := every(f, PrefixProject, value.ParseName)
	if f.err != nil {
		return nil, f.err
	}

	c := model.NewContact(name, phone, email, address, role, projects)
	return command.AddDeveloper{Developer: model.NewDeveloper(c, salary, joined)}, nil
}

func parseEditDeveloper(args string) (command.Command, error) {
	am := Tokenize(args, developerPrefixes...)
	index, err := value.ParseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditDeveloperUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(developerFields...); err != nil {
		return nil, err
	}

	f := &fields{am: am, usage: command.EditDeveloperUsage}
	edit := command.DeveloperEdit{ContactEdit: contactEdit(f)}
	edit.Salary = optional(f, PrefixSalary, value.ParseSalary)
	edit.DateJoined = optional(f, PrefixDateJoined, date.Parse)
	edit.Projects = replacement(f, PrefixProject, value.ParseName)
	if f.err != nil {
		return nil, f.err
	}
	if edit.IsEmpty() {
		return nil, notEdited(command.EditDeveloperUsage)
	}
	return command.EditDeveloper{Index: index, Edit: edit}, nil
}

func parseDeleteDeveloper(args string) (command.Command, error) {
	index, err := value.ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteDeveloperUsage)
	}
	return command.DeleteDeveloper{Index: index}, nil
}

func parseFindDeveloper(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixRole, PrefixProject)
	if am.Preamble() != "" || !searchable(am, PrefixName, PrefixRole, PrefixProject) {
		return nil, invalidFormat(command.FindDeveloperUsage)
	}
	return command.FindDevelopers{
		Names:    keywords(am, PrefixName),
		Roles:    keywords(am, PrefixRole),
		Projects: keywords(am, PrefixProject),
	}, nil
}

// searchable is true when at least one prefix was typed and every typed
// prefix carries a keyword
func searchable(am ArgumentMultimap, prefixes ...Prefix) bool {
	if !am.AnyPresent(prefixes...) {
		return false
	}
	for _, p := range prefixes {
		if am.Has(p) && len(keywords(am, p)) == 0 {
			return false
		}
	}
	return true
}
