package command_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/messages"
	mt "github.com/td0m/devbook/pkg/model/modeltest"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const developersCSV = `name,phone,email,address,role,salary,dateJoined,projects
Fiona Kunz,9482427,fiona@example.com,little tokyo,Backend,7000,02-03-2021,AppDev;Backend
George Best,9482442,george@example.com,4th street,Frontend,6500,15-06-2022,
`

func TestImportDevelopers(t *testing.T) {
	is := is.New(t)
	m := mt.Typical()

	res, err := command.ImportDevelopers{Path: writeFile(t, developersCSV)}.Execute(m)
	is.NoErr(err)
	is.True(res.Mutated)
	is.Equal(res.Tab, command.DeveloperTab)
	is.Equal(res.Feedback, fmt.Sprintf(messages.ImportedDevelopers, 2))
	is.Equal(len(m.Developers()), 5)
	is.True(m.Developers()[3].HasProject(mt.Name("Backend")))
	is.Equal(len(m.Developers()[4].Projects()), 0)
}

func TestImportDevelopers_AllOrNothing(t *testing.T) {
	tests := map[string]struct {
		content string
		kind    error
		msg     string
	}{
		"invalid row": {
			content: developersCSV + "Bad Phone,12,bad@example.com,x,Dev,1,01-01-2020,\n",
			kind:    command.ErrInvalidImport,
		},
		"duplicate of stored developer": {
			content: developersCSV + "Carl Kurz,9482442,carl@example.com,x,Dev,1,01-01-2020,\n",
			kind:    command.ErrDuplicate,
			msg:     messages.DuplicateDeveloper,
		},
		"unknown project": {
			content: developersCSV + "Hans Zimmer,9482442,hans@example.com,x,Dev,1,01-01-2020,Nope\n",
			kind:    command.ErrUnknownProject,
			msg:     messages.UnknownProject,
		},
		"wrong header": {
			content: strings.Replace(developersCSV, "salary", "pay", 1),
			kind:    command.ErrInvalidImport,
		},
		"wrong column count": {
			content: developersCSV + "Hans Zimmer,9482442\n",
			kind:    command.ErrInvalidImport,
		},
		"empty file": {
			content: "",
			kind:    command.ErrInvalidImport,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			m := mt.Typical()
			res, err := command.ImportDevelopers{Path: writeFile(t, tt.content)}.Execute(m)
			is.True(errors.Is(err, tt.kind))
			if tt.msg != "" {
				is.Equal(err.Error(), tt.msg)
			}
			is.True(!res.Mutated)
			is.Equal(len(m.Developers()), 3)
		})
	}
}

func TestImportDevelopers_InvalidRowMessage(t *testing.T) {
	is := is.New(t)
	path := writeFile(t, developersCSV+"Bad Salary,9482442,bad@example.com,x,Dev,lots,01-01-2020,\n")

	_, err := command.ImportDevelopers{Path: path}.Execute(mt.Typical())
	is.True(strings.HasPrefix(err.Error(), fmt.Sprintf("Row 4 of %s is invalid: ", path)))
}

func TestImport_MissingFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := command.ImportDevelopers{Path: path}.Execute(mt.Typical())
	is.True(errors.Is(err, command.ErrInvalidFile))
	is.Equal(err.Error(), messages.InvalidFile)

	_, err = command.ImportClients{Path: path}.Execute(mt.Typical())
	is.True(errors.Is(err, command.ErrInvalidFile))
}

func TestImportClients(t *testing.T) {
	is := is.New(t)
	m := mt.Typical()
	path := writeFile(t, `name,phone,email,address,role,organisation,document,projects
Ivy Chen,93210283,ivy@example.com,Marina Bay,Product Owner,Acme,https://acme.example.com/sow,Website
`)

	res, err := command.ImportClients{Path: path}.Execute(m)
	is.NoErr(err)
	is.Equal(res.Feedback, fmt.Sprintf(messages.ImportedClients, 1))
	is.Equal(res.Tab, command.ClientTab)
	is.Equal(m.Clients()[2].Organisation().String(), "Acme")
}
