// Package modeltest builds valid entities and a populated model for tests.
package modeltest

import (
	"github.com/td0m/devbook/pkg/date"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func Name(s string) value.Name { return must(value.ParseName(s)) }

func names(ss []string) []value.Name {
	out := make([]value.Name, len(ss))
	for i, s := range ss {
		out[i] = Name(s)
	}
	return out
}

func Contact(name string, projects ...string) model.Contact {
	return model.NewContact(
		Name(name),
		must(value.ParsePhone("94351253")),
		must(value.ParseEmail("someone@example.com")),
		must(value.ParseAddress("123, Jurong West Ave 6, #08-111")),
		must(value.ParseRole("Developer")),
		names(projects),
	)
}

func Developer(name string, projects ...string) *model.Developer {
	return model.NewDeveloper(
		Contact(name, projects...),
		must(value.ParseSalary("5000")),
		must(date.Parse("01-01-2020")),
	)
}

func Client(name string, projects ...string) *model.Client {
	return model.NewClient(
		Contact(name, projects...),
		must(value.ParseOrganisation("Google")),
		must(value.ParseDocument("https://docs.example.com/contract")),
	)
}

func Deadline(s string) *model.Deadline { return must(model.ParseDeadline(s)) }

func Project(name string, deadlines ...string) *model.Project {
	ds := make([]*model.Deadline, len(deadlines))
	for i, s := range deadlines {
		ds[i] = Deadline(s)
	}
	return model.NewProject(Name(name), must(value.ParseDescription("Description of "+name)), ds)
}

// Typical returns a model with three projects, three developers and two
// clients. AppDev has three deadlines, the second one done.
func Typical() *model.Model {
	m := model.New()
	for _, p := range []*model.Project{
		Project("AppDev",
			"31-12-2019,Develop front end interface,HIGH,0",
			"15-01-2020,Write tests,MEDIUM,1",
			"01-02-2020,Ship it,LOW,0",
		),
		Project("Website", "10-10-2023,Launch landing page,HIGH,0"),
		Project("Backend"),
	} {
		check(m.AddProject(p))
	}
	for _, d := range []*model.Developer{
		Developer("Alice Pauline", "AppDev"),
		Developer("Benson Meier", "Website", "AppDev"),
		Developer("Carl Kurz"),
	} {
		check(m.AddDeveloper(d))
	}
	for _, c := range []*model.Client{
		Client("Daniel Meier", "AppDev"),
		Client("Elle Meyer"),
	} {
		check(m.AddClient(c))
	}
	return m
}
