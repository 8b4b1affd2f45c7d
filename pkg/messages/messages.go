// Package messages is the single home of every user visible string. Parsers
// and commands both refer to it so that the wording stays stable.
package messages

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

const (
	UnknownCommand        = "Unknown command"
	InvalidCommandFormat  = "Invalid command format! \n%s"
	InvalidFile           = "File does not exist!\n"
	InvalidDeveloperIndex = "The developer index provided is invalid"
	InvalidClientIndex    = "The client index provided is invalid"
	InvalidProjectIndex   = "The project index provided is invalid"
	InvalidDeadlineIndex  = "The deadline index provided is invalid"
	UnknownProject        = "One or more of the specified projects do not exist"
	NotEdited             = "At least one field to edit must be provided."

	DevelopersListedOverview = "These are the %d developers with matching information"
	ClientsListedOverview    = "These are the %d clients with matching information"
	ProjectsListedOverview   = "These are the %d projects with matching information"

	DuplicateFields = "Multiple values specified for the following single-valued field(s): "

	DuplicateDeveloper = "This developer already exists in the address book"
	DuplicateClient    = "This client already exists in the address book"
	DuplicateProject   = "This project already exists in the address book"

	AddedDeveloper   = "New developer added: %s"
	AddedClient      = "New client added: %s"
	AddedProject     = "New project added: %s"
	DeletedDeveloper = "Deleted Developer: %s"
	DeletedClient    = "Deleted Client: %s"
	DeletedProject   = "Deleted Project: %s"
	EditedDeveloper  = "Edited Developer: %s"
	EditedClient     = "Edited Client: %s"
	EditedProject    = "Edited Project: %s"

	ListedDevelopers = "Listed all developers"
	ListedClients    = "Listed all clients"
	ListedProjects   = "Listed all projects"

	MarkedDeadline   = "The deadline has been marked as done!"
	UnmarkedDeadline = "The deadline has been marked as undone!"

	ImportedDevelopers = "Imported %d developers"
	ImportedClients    = "Imported %d clients"
	InvalidImportRow   = "Row %d of %s is invalid: %s"
	InvalidImportFile  = "%s is not a valid CSV file: %s"

	ShowingHelp = "Opened help window."
	Exiting     = "Exiting devbook as requested ..."
)

// InvalidFormat wraps a command's usage text
func InvalidFormat(usage string) string {
	return fmt.Sprintf(InvalidCommandFormat, usage)
}

// DuplicatePrefixes lists the repeated prefixes in the order given
func DuplicatePrefixes(prefixes ...string) string {
	return DuplicateFields + strings.Join(prefixes, " ")
}

func projectList(names []value.Name) string {
	return strings.Join(slice.Map(names, func(_ int, n value.Name) string {
		return n.String()
	}), ", ")
}

// FormatPerson renders the fields every developer and client has
func FormatPerson(p model.Person) string {
	var b strings.Builder
	b.WriteString(p.Name().String())
	b.WriteString("; Phone: ")
	b.WriteString(p.Phone().String())
	b.WriteString("; Email: ")
	b.WriteString(p.Email().String())
	b.WriteString("; Address: ")
	b.WriteString(p.Address().String())
	return b.String()
}

func FormatDeveloper(d *model.Developer) string {
	return FormatPerson(d) +
		"; Date Joined: " + d.DateJoined().String() +
		"; Role: " + d.Role().String() +
		"; Salary: " + d.Salary().String() +
		"; Projects: " + projectList(d.Projects())
}

func FormatClient(c *model.Client) string {
	return FormatPerson(c) +
		"; Organisation: " + c.Organisation().String() +
		"; Role: " + c.Role().String() +
		"; Document: " + c.Document().String() +
		"; Projects: " + projectList(c.Projects())
}

func FormatProject(p *model.Project) string {
	var b strings.Builder
	b.WriteString(p.Name().String())
	b.WriteString(";\nDescription: ")
	b.WriteString(p.Description().String())
	b.WriteString(";\nDeadlines:\n")
	for i, d := range p.Deadlines() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}
	return b.String()
}
