package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ecodeclub/ekit/slice"
	"github.com/td0m/devbook/pkg/date"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/value"
)

var (
	Index    = lipgloss.NewStyle().Foreground(Faded).Width(4)
	Title    = lipgloss.NewStyle().Bold(true)
	Detail   = lipgloss.NewStyle().Foreground(Secondary).PaddingLeft(4)
	Tag      = lipgloss.NewStyle().Foreground(Blue)
	Divider  = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")
	DoneMark = lipgloss.NewStyle().Foreground(Green).Render("✓")
	OpenMark = lipgloss.NewStyle().Foreground(Faded).Render("○")
	Empty    = lipgloss.NewStyle().Foreground(Faded).Italic(true)
)

func tags(names []value.Name) string {
	if len(names) == 0 {
		return ""
	}
	return Divider + Tag.Render(strings.Join(slice.Map(names, func(_ int, n value.Name) string {
		return n.String()
	}), ", "))
}

func header(i int, title string) string {
	return Index.Render(strconv.Itoa(i+1)+".") + Title.Render(title)
}

func contact(p model.Person) string {
	return Detail.Render(p.Phone().String()+Divider+p.Email().String()) + "\n" +
		Detail.Render(p.Address().String())
}

// Developers renders the displayed developers, numbered the way commands
// address them
func Developers(ds []*model.Developer) string {
	if len(ds) == 0 {
		return Empty.Render("no developers") + "\n"
	}
	var b strings.Builder
	for i, d := range ds {
		b.WriteString(header(i, d.Name().String()) + Divider + d.Role().String() + tags(d.Projects()) + "\n")
		b.WriteString(contact(d) + "\n")
		b.WriteString(Detail.Render("salary "+d.Salary().String()+Divider+"joined "+d.DateJoined().String()) + "\n\n")
	}
	return b.String()
}

func Clients(cs []*model.Client) string {
	if len(cs) == 0 {
		return Empty.Render("no clients") + "\n"
	}
	var b strings.Builder
	for i, c := range cs {
		b.WriteString(header(i, c.Name().String()) + Divider + c.Role().String() + " at " +
			c.Organisation().String() + tags(c.Projects()) + "\n")
		b.WriteString(contact(c) + "\n")
		b.WriteString(Detail.Render(c.Document().String()) + "\n\n")
	}
	return b.String()
}

// Projects lists every deadline under its project, coloured by how soon it
// is due
func Projects(ps []*model.Project, now time.Time) string {
	if len(ps) == 0 {
		return Empty.Render("no projects") + "\n"
	}
	var b strings.Builder
	for i, p := range ps {
		b.WriteString(header(i, p.Name().String()) + Divider + p.Description().String() + "\n")
		for j, d := range p.Deadlines() {
			b.WriteString(Deadline(j, d, now) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func Deadline(i int, d *model.Deadline, now time.Time) string {
	mark := OpenMark
	due := lipgloss.NewStyle().Foreground(DueColor(d.Date(), now)).Render(date.Humanize(d.Date(), now))
	desc := lipgloss.NewStyle()
	if d.Done() {
		mark = DoneMark
		due = lipgloss.NewStyle().Foreground(Faded).Render(d.Date().String())
		desc = desc.Strikethrough(true).Foreground(Secondary)
	}
	return Detail.Render(strconv.Itoa(i+1)+". "+mark+" ") + desc.Render(d.Description().String()) +
		Divider + string(d.Priority()) + Divider + due
}
