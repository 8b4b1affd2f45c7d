package parser_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
	mt "github.com/td0m/devbook/pkg/model/modeltest"
	"github.com/td0m/devbook/pkg/parser"
	"github.com/td0m/devbook/pkg/value"
)

const (
	alice = " n/Alice Pauline p/94351253 e/someone@example.com a/123, Jurong West Ave 6, #08-111" +
		" r/Developer s/5000 d/01-01-2020 pr/AppDev"
	daniel = " n/Daniel Meier p/94351253 e/someone@example.com a/123, Jurong West Ave 6, #08-111" +
		" r/Developer o/Google do/https://docs.example.com/contract pr/AppDev"
)

func parseErr(t *testing.T, line string) *parser.Error {
	t.Helper()
	_, err := parser.Parse(line)
	var e *parser.Error
	if !errors.As(err, &e) {
		t.Fatalf("Parse(%q) = %v, want *parser.Error", line, err)
	}
	return e
}

func TestParse(t *testing.T) {
	name := mt.Name("Alicia")
	noProjects := []value.Name{}
	salary, _ := value.ParseSalary("100")
	high, _ := value.ParsePriority("HIGH")
	dl := []*model.Deadline{mt.Deadline("01-01-2030,Beta,LOW,0")}

	tests := map[string]struct {
		line string
		want command.Command
	}{
		"add developer": {
			line: command.AddDeveloperWord + alice,
			want: command.AddDeveloper{Developer: mt.Developer("Alice Pauline", "AppDev")},
		},
		"add developer without projects": {
			line: "add-developer n/Carl Kurz p/94351253 e/someone@example.com " +
				"a/123, Jurong West Ave 6, #08-111 r/Developer s/5000 d/01-01-2020",
			want: command.AddDeveloper{Developer: mt.Developer("Carl Kurz")},
		},
		"add client": {
			line: command.AddClientWord + daniel,
			want: command.AddClient{Client: mt.Client("Daniel Meier", "AppDev")},
		},
		"add project": {
			line: "add-project n/AppDev dsc/Description of AppDev " +
				"dl/31-12-2019,Develop front end interface,HIGH,0 dl/15-01-2020,Write tests,MEDIUM,1",
			want: command.AddProject{Project: mt.Project("AppDev",
				"31-12-2019,Develop front end interface,HIGH,0",
				"15-01-2020,Write tests,MEDIUM,1",
			)},
		},
		"delete": {
			line: "delete-client 2",
			want: command.DeleteClient{Index: value.FromOneBased(2)},
		},
		"edit developer": {
			line: "edit-developer 1 n/Alicia s/100",
			want: command.EditDeveloper{
				Index: value.FromOneBased(1),
				Edit:  command.DeveloperEdit{ContactEdit: command.ContactEdit{Name: &name}, Salary: &salary},
			},
		},
		"edit clears projects": {
			line: "edit-client 3 pr/",
			want: command.EditClient{
				Index: value.FromOneBased(3),
				Edit:  command.ClientEdit{ContactEdit: command.ContactEdit{Projects: &noProjects}},
			},
		},
		"edit project deadlines": {
			line: "edit-project 1 dl/01-01-2030,Beta,LOW,0",
			want: command.EditProject{
				Index: value.FromOneBased(1),
				Edit:  command.ProjectEdit{Deadlines: &dl},
			},
		},
		"list ignores arguments": {
			line: "list-developer everything",
			want: command.ListDevelopers{},
		},
		"find developer": {
			line: "find-developer n/alice  bob r/dev",
			want: command.FindDevelopers{Names: []string{"alice", "bob"}, Roles: []string{"dev"}, Projects: []string{}},
		},
		"find client": {
			line: "find-client o/google",
			want: command.FindClients{
				Names: []string{}, Roles: []string{}, Organisations: []string{"google"}, Projects: []string{},
			},
		},
		"find project priority": {
			line: "find-project pri/high",
			want: command.FindProjects{Names: []string{}, Descriptions: []string{}, Priorities: []value.Priority{high}},
		},
		"mark": {
			line: "mark-deadline 1 3",
			want: command.MarkDeadline{Project: value.FromOneBased(1), Deadline: value.FromOneBased(3)},
		},
		"unmark with extra spaces": {
			line: "  unmark-deadline   2    1 ",
			want: command.UnmarkDeadline{Project: value.FromOneBased(2), Deadline: value.FromOneBased(1)},
		},
		"import": {
			line: "import-developer  data/devs.csv ",
			want: command.ImportDevelopers{Path: "data/devs.csv"},
		},
		"help": {
			line: "help me",
			want: command.Help{},
		},
		"exit": {
			line: "exit",
			want: command.Exit{},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			got, err := parser.Parse(tt.line)
			is.NoErr(err)
			is.Equal(got, tt.want)
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := map[string]struct {
		line  string
		usage string
	}{
		"empty line":               {"   ", command.HelpUsage},
		"missing prefix":           {"add-developer n/Amy p/123", command.AddDeveloperUsage},
		"preamble":                 {"add-client oops" + daniel, command.AddClientUsage},
		"add project no desc":      {"add-project n/AppDev", command.AddProjectUsage},
		"delete word":              {"delete-developer one", command.DeleteDeveloperUsage},
		"delete zero":              {"delete-project 0", command.DeleteProjectUsage},
		"delete nothing":           {"delete-client", command.DeleteClientUsage},
		"edit without index":       {"edit-developer n/Amy", command.EditDeveloperUsage},
		"edit signed index":        {"edit-project +1 n/Web", command.EditProjectUsage},
		"find nothing":             {"find-developer", command.FindDeveloperUsage},
		"find preamble":            {"find-client bob", command.FindClientUsage},
		"find empty keyword":       {"find-project n/ dsc/web", command.FindProjectUsage},
		"mark one index":           {"mark-deadline 1", command.MarkDeadlineUsage},
		"mark three indices":       {"mark-deadline 1 2 3", command.MarkDeadlineUsage},
		"unmark negative":          {"unmark-deadline 1 -2", command.UnmarkDeadlineUsage},
		"import without a path":    {"import-client   ", command.ImportClientUsage},
		"mark deadline with words": {"mark-deadline one two", command.MarkDeadlineUsage},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			e := parseErr(t, tt.line)
			is.True(errors.Is(e, parser.ErrInvalidFormat))
			is.Equal(e.Msg, messages.InvalidFormat(tt.usage))
			is.Equal(e.Usage, tt.usage)
		})
	}
}

func TestParse_InvalidValue(t *testing.T) {
	tests := map[string]struct {
		line string
		want string
	}{
		"name": {
			line: "add-developer n/Amy* p/94351253 e/a@b.co a/x r/Dev s/1 d/01-01-2020",
			want: value.NameConstraints,
		},
		"first invalid field wins": {
			line: "add-developer n/Amy p/12 e/nope a/x r/Dev s/salary d/31-02-2020",
			want: value.PhoneConstraints,
		},
		"salary": {
			line: "add-developer n/Amy p/94351253 e/a@b.co a/x r/Dev s/lots d/01-01-2020",
			want: value.SalaryConstraints,
		},
		"project names checked last": {
			line: "add-developer n/Amy p/94351253 e/a@b.co a/x r/Dev s/1 d/01-01-2020 pr/Bad*",
			want: value.NameConstraints,
		},
		"document": {
			line: "add-client n/Amy p/94351253 e/a@b.co a/x r/HR o/Acme do/ftp://x",
			want: value.DocumentConstraints,
		},
		"deadline": {
			line: "add-project n/Web dsc/Site dl/01-01-2020,Launch,URGENT,0",
			want: model.DeadlineConstraints,
		},
		"edit email": {
			line: "edit-client 1 e/nope",
			want: value.EmailConstraints,
		},
		"find priority": {
			line: "find-project pri/urgent",
			want: value.PriorityConstraints,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			e := parseErr(t, tt.line)
			is.True(errors.Is(e, parser.ErrInvalidValue))
			is.True(errors.Is(e, parser.ErrInvalidFormat))
			is.Equal(e.Error(), tt.want)
		})
	}
}

func TestParse_DuplicatePrefix(t *testing.T) {
	is := is.New(t)

	e := parseErr(t, command.AddDeveloperWord+alice+" n/Bob")
	is.True(errors.Is(e, parser.ErrDuplicatePrefix))
	is.Equal(e.Msg, messages.DuplicatePrefixes("n/"))

	e = parseErr(t, command.AddDeveloperWord+alice+" d/02-02-2020 a/x e/b@c.co n/Bob")
	is.Equal(e.Msg, messages.DuplicatePrefixes("n/", "e/", "a/", "d/"))
}

func TestParse_DuplicateBeforeInvalidValue(t *testing.T) {
	is := is.New(t)
	e := parseErr(t, "add-developer n/Amy* n/Bob p/94351253 e/a@b.co a/x r/Dev s/1 d/01-01-2020")
	is.True(errors.Is(e, parser.ErrDuplicatePrefix))
}

func TestParse_NotEdited(t *testing.T) {
	is := is.New(t)
	for _, line := range []string{"edit-developer 1", "edit-client 2  ", "edit-project 3"} {
		e := parseErr(t, line)
		is.True(errors.Is(e, parser.ErrInvalidFormat))
		is.Equal(e.Msg, messages.NotEdited)
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	is := is.New(t)
	for _, line := range []string{"foobar 1 2", "foobar", "ADD-DEVELOPER" + alice, "list-developers"} {
		e := parseErr(t, line)
		is.True(errors.Is(e, parser.ErrUnknownCommand))
		is.Equal(e.Msg, messages.UnknownCommand)
	}
}

func TestWords(t *testing.T) {
	is := is.New(t)
	words := parser.Words()
	is.Equal(len(words), len(command.Usages))
	for _, w := range words {
		_, err := parser.Parse(w)
		is.True(!errors.Is(err, parser.ErrUnknownCommand))
	}
}
