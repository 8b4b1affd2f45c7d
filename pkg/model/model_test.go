package model_test

import (
	"reflect"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/devbook/pkg/model"
	mt "github.com/td0m/devbook/pkg/model/modeltest"
	"github.com/td0m/devbook/pkg/value"
)

func TestModel_AddDeveloper(t *testing.T) {
	m := mt.Typical()

	t.Run("adds a new developer", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(m.AddDeveloper(mt.Developer("Fiona Kunz", "Backend")))
		is.Equal(len(m.Developers()), 4)
		is.True(m.HasDeveloper(mt.Name("Fiona Kunz")))
	})
	t.Run("rejects a duplicate name", func(t *testing.T) {
		is := is.New(t)
		is.Equal(m.AddDeveloper(mt.Developer("Alice Pauline")), model.ErrDuplicateDeveloper)
		is.Equal(len(m.Developers()), 4)
	})
	t.Run("rejects unknown projects", func(t *testing.T) {
		is := is.New(t)
		is.Equal(m.AddDeveloper(mt.Developer("George Best", "Nope")), model.ErrUnknownProject)
		is.True(!m.HasDeveloper(mt.Name("George Best")))
	})
}

func TestModel_AddDevelopers(t *testing.T) {
	is := is.New(t)
	m := mt.Typical()
	err := m.AddDevelopers([]*model.Developer{mt.Developer("X"), mt.Developer("Y"), mt.Developer("X")})
	is.Equal(err, model.ErrDuplicateDeveloper)
	is.Equal(len(m.Developers()), 3) // all or nothing

	is.NoErr(m.AddDevelopers([]*model.Developer{mt.Developer("X"), mt.Developer("Y")}))
	is.Equal(len(m.Developers()), 5)
}

func TestModel_Filter(t *testing.T) {
	is := is.New(t)
	m := mt.Typical()
	onlyA := func(d *model.Developer) bool { return d.Name().String()[0] == 'A' }
	m.FilterDevelopers(onlyA)
	is.Equal(len(m.FilteredDevelopers()), 1)
	is.Equal(len(m.Developers()), 3)

	// filter stays in effect for later additions
	is.NoErr(m.AddDeveloper(mt.Developer("Zed")))
	is.NoErr(m.AddDeveloper(mt.Developer("Amy")))
	is.Equal(len(m.FilteredDevelopers()), 2)

	m.FilterDevelopers(model.All[*model.Developer])
	is.Equal(len(m.FilteredDevelopers()), 5)
}

func TestModel_SetProject(t *testing.T) {
	m := mt.Typical()
	appdev, _ := m.Project(mt.Name("AppDev"))

	t.Run("rename collides", func(t *testing.T) {
		is := is.New(t)
		err := m.SetProject(appdev, mt.Project("Website"))
		is.Equal(err, model.ErrDuplicateProject)
		is.True(m.HasProject(mt.Name("AppDev")))
	})
	t.Run("rename rewrites references", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(m.SetProject(appdev, mt.Project("MobileApp")))
		is.True(!m.HasProject(mt.Name("AppDev")))
		for _, d := range m.Developers() {
			is.True(!d.HasProject(mt.Name("AppDev")))
		}
		is.True(m.Developers()[0].HasProject(mt.Name("MobileApp")))
		is.True(m.Clients()[0].HasProject(mt.Name("MobileApp")))
		is.Equal(m.Projects()[0].Name(), mt.Name("MobileApp")) // keeps its position
	})
}

func TestModel_DeleteProject(t *testing.T) {
	is := is.New(t)
	m := mt.Typical()
	website, _ := m.Project(mt.Name("Website"))
	is.NoErr(m.DeleteProject(website))
	is.Equal(len(m.Projects()), 2)
	is.Equal(m.Developers()[1].Projects(), []value.Name{mt.Name("AppDev")})
	is.Equal(m.DeleteProject(website), model.ErrNotFound)
}

func TestModel_MarkDeadline(t *testing.T) {
	m := mt.Typical()
	appdev, _ := m.Project(mt.Name("AppDev"))

	t.Run("marks in place", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(m.MarkDeadline(appdev, 0))
		is.True(appdev.Deadlines()[0].Done())
		is.NoErr(m.MarkDeadline(appdev, 0))
		is.True(appdev.Deadlines()[0].Done())
	})
	t.Run("unmarks in place", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(m.UnmarkDeadline(appdev, 1))
		is.True(!appdev.Deadlines()[1].Done())
	})
	t.Run("out of range leaves deadlines alone", func(t *testing.T) {
		is := is.New(t)
		before := m.Snapshot()
		is.Equal(m.MarkDeadline(appdev, 3), model.ErrDeadlineNotFound)
		is.Equal(m.UnmarkDeadline(appdev, -1), model.ErrDeadlineNotFound)
		is.True(reflect.DeepEqual(before, m.Snapshot()))
	})
	t.Run("unknown project", func(t *testing.T) {
		is := is.New(t)
		is.Equal(m.MarkDeadline(mt.Project("Elsewhere", "01-01-2020,x,LOW,0"), 0), model.ErrNotFound)
	})
}

func TestModel_Subscribe(t *testing.T) {
	is := is.New(t)
	m := mt.Typical()
	var got []model.Event
	stop := m.Subscribe(func(e model.Event) { got = append(got, e) })

	is.NoErr(m.AddClient(mt.Client("Fred")))
	appdev, _ := m.Project(mt.Name("AppDev"))
	is.NoErr(m.MarkDeadline(appdev, 0))
	m.FilterProjects(model.All[*model.Project])
	is.Equal(got, []model.Event{
		{Kind: model.Added, Entity: model.Clients, Name: "Fred"},
		{Kind: model.DeadlineChanged, Entity: model.Projects, Name: "AppDev"},
		{Kind: model.Filtered, Entity: model.Projects},
	})

	stop()
	is.NoErr(m.AddClient(mt.Client("Gina")))
	is.Equal(len(got), 3)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	is := is.New(t)
	m := mt.Typical()
	s := m.Snapshot()
	is.Equal(len(s.Projects), 3)
	is.Equal(s.Projects[0].Deadlines[1], "15-01-2020,Write tests,MEDIUM,1")

	loaded, err := model.FromSnapshot(s)
	is.NoErr(err)
	is.True(reflect.DeepEqual(loaded.Snapshot(), s))
}

func TestFromSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		edit func(*model.Snapshot)
	}{
		{"bad email", func(s *model.Snapshot) { s.Developers[0].Email = "nope" }},
		{"bad deadline", func(s *model.Snapshot) { s.Projects[0].Deadlines[0] = "tomorrow" }},
		{"dangling project", func(s *model.Snapshot) { s.Clients[0].Projects = []string{"Ghost"} }},
		{"duplicate project", func(s *model.Snapshot) { s.Projects[1].Name = s.Projects[0].Name }},
		{"bad document", func(s *model.Snapshot) { s.Clients[1].Document = "file.pdf" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			s := mt.Typical().Snapshot()
			tt.edit(&s)
			_, err := model.FromSnapshot(s)
			is.True(err != nil)
		})
	}
}
