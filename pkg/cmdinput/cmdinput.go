// Package cmdinput is a one line command prompt that shows whether the
// current text would be accepted while it is typed.
package cmdinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.Copy().
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.Copy().
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
)

// Validator checks a full line without running it
type Validator func(line string) error

type Model struct {
	i        textinput.Model
	validate Validator
	words    []string
	err      error
}

// NewModel completes command words from words on tab
func NewModel(validate Validator, words []string) Model {
	i := textinput.NewModel()
	i.Focus()
	i.CharLimit = 512
	i.Prompt = ""
	i.Placeholder = "type a command, help lists them all"
	return Model{i: i, validate: validate, words: words}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyTab {
			m.SetValue(m.complete())
			return m, nil
		}
		m.i, cmd = m.i.Update(msg)
		m.check()
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	ind := ""
	switch {
	case strings.TrimSpace(m.i.Value()) == "":
	case m.err == nil:
		ind = checkmark
	default:
		ind = cross + lipgloss.NewStyle().Foreground(faded).Render(firstLine(m.err.Error()))
	}
	return lipgloss.NewStyle().Foreground(faded).Render("> ") + m.i.View() + ind
}

func (m *Model) Value() string {
	return m.i.Value()
}

func (m *Model) SetValue(s string) {
	m.i.SetValue(s)
	m.i.CursorEnd()
	m.check()
}

// Valid is false for an empty line
func (m *Model) Valid() bool {
	return strings.TrimSpace(m.i.Value()) != "" && m.err == nil
}

func (m *Model) Reset() {
	m.SetValue("")
}

func (m *Model) SetWidth(w int) {
	m.i.Width = w
}

func (m *Model) check() {
	if m.validate == nil {
		m.err = nil
		return
	}
	m.err = m.validate(m.i.Value())
}

// complete fills in the command word when exactly one word starts with
// what was typed so far
func (m *Model) complete() string {
	v := m.i.Value()
	typed := strings.TrimLeft(v, " ")
	if typed == "" || strings.ContainsAny(typed, " \t") {
		return v
	}
	match := ""
	for _, w := range m.words {
		if strings.HasPrefix(w, typed) {
			if match != "" {
				return v
			}
			match = w
		}
	}
	if match == "" {
		return v
	}
	return match + " "
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
