package messages

import (
	"testing"

	"github.com/matryer/is"
	mt "github.com/td0m/devbook/pkg/model/modeltest"
)

func TestDuplicatePrefixes(t *testing.T) {
	is := is.New(t)
	is.Equal(DuplicatePrefixes("n/"), "Multiple values specified for the following single-valued field(s): n/")
	is.Equal(DuplicatePrefixes("n/", "p/", "e/", "a/"), DuplicateFields+"n/ p/ e/ a/")
}

func TestInvalidFormat(t *testing.T) {
	is := is.New(t)
	is.Equal(InvalidFormat("usage"), "Invalid command format! \nusage")
}

func TestFormat(t *testing.T) {
	is := is.New(t)
	d := mt.Developer("Benson Meier", "Website", "AppDev")
	is.Equal(FormatDeveloper(d), "Benson Meier; Phone: 94351253; Email: someone@example.com; "+
		"Address: 123, Jurong West Ave 6, #08-111; Date Joined: 01-01-2020; Role: Developer; "+
		"Salary: 5000; Projects: AppDev, Website")

	c := mt.Client("Elle Meyer")
	is.Equal(FormatClient(c), "Elle Meyer; Phone: 94351253; Email: someone@example.com; "+
		"Address: 123, Jurong West Ave 6, #08-111; Organisation: Google; Role: Developer; "+
		"Document: https://docs.example.com/contract; Projects: ")

	p := mt.Project("Website", "10-10-2023,Launch landing page,HIGH,0")
	is.Equal(FormatProject(p), "Website;\nDescription: Description of Website;\nDeadlines:\n1. 10-10-2023,Launch landing page,HIGH,0\n")
}
