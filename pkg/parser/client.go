package parser

import (
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

var clientPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRole,
	PrefixOrganisation, PrefixDocument, PrefixProject,
}

var clientFields = clientPrefixes[:len(clientPrefixes)-1]

func parseAddClient(args string) (command.Command, error) {
	am := Tokenize(args, clientPrefixes...)
	if !am.ArePrefixesPresent(clientFields...) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddClientUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(clientFields...); err != nil {
		return nil, err
	}

	f := &fields{am: am, usage: command.AddClientUsage}
	name := required(f, PrefixName, value.ParseName)
	phone := required(f, PrefixPhone, value.ParsePhone)
	email := required(f, PrefixEmail, value.ParseEmail)
	address := required(f, PrefixAddress, value.ParseAddress)
	role := required(f, PrefixRole, value.ParseRole)
	org := required(f, PrefixOrganisation, value.ParseOrganisation)
	doc := required(f, PrefixDocument, value.ParseDocument)
	projects := every(f, PrefixProject, value.ParseName)
	if f.err != nil {
		return nil, f.err
	}

	c := model.NewContact(name, phone, email, address, role, projects)
	return command.AddClient{Client: model.NewClient(c, org, doc)}, nil
}

func parseEditClient(args string) (command.Command, error) {
	am := Tokenize(args, clientPrefixes...)
	index, err := value.ParseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditClientUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(clientFields...); err != nil {
		return nil, err
	}

	f := &fields{am: am, usage: command.EditClientUsage}
	edit := command.ClientEdit{ContactEdit: contactEdit(f)}
	edit.Organisation = optional(f, PrefixOrganisation, value.ParseOrganisation)
	edit.Document = optional(f, PrefixDocument, value.ParseDocument)
	edit.Projects = replacement(f, PrefixProject, value.ParseName)
	if f.err != nil {
		return nil, f.err
	}
	if edit.IsEmpty() {
		return nil, notEdited(command.EditClientUsage)
	}
	return command.EditClient{Index: index, Edit: edit}, nil
}

func parseDeleteClient(args string) (command.Command, error) {
	index, err := value.ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteClientUsage)
	}
	return command.DeleteClient{Index: index}, nil
}

func parseFindClient(args string) (command.Command, error) {
	prefixes := []Prefix{PrefixName, PrefixRole, PrefixOrganisation, PrefixProject}
	am := Tokenize(args, prefixes...)
	if am.Preamble() != "" || !searchable(am, prefixes...) {
		return nil, invalidFormat(command.FindClientUsage)
	}
	return command.FindClients{
		Names:         keywords(am, PrefixName),
		Roles:         keywords(am, PrefixRole),
		Organisations: keywords(am, PrefixOrganisation),
		Projects:      keywords(am, PrefixProject),
	}, nil
}
