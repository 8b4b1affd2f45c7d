package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/devbook/pkg/command"
)

var (
	tabContainer = lipgloss.NewStyle().Padding(1, 1)
	activeTab    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	inactiveTab  = lipgloss.NewStyle().Foreground(Secondary)
	tabDivider   = lipgloss.NewStyle().Foreground(Faded)
)

var tabOrder = []command.Tab{command.DeveloperTab, command.ClientTab, command.ProjectTab}

// Tabs is the header line. Info is rendered on the right.
type Tabs struct {
	active command.Tab

	Width int
	Info  string
}

func NewTabs() Tabs {
	return Tabs{active: command.DeveloperTab}
}

func (m Tabs) View() string {
	tabs := make([]string, len(tabOrder))
	for i, t := range tabOrder {
		r := inactiveTab
		if t == m.active {
			r = activeTab
		}
		tabs[i] = r.Render(t.String())
	}
	w := lipgloss.Width
	left := strings.Join(tabs, tabDivider.Render(" | "))
	right := m.Info
	space := lipgloss.NewStyle().Width(max(m.Width-2-w(left)-w(right), 0)).Render("")
	return tabContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}

func (m Tabs) Value() command.Tab {
	return m.active
}

func (m *Tabs) Set(t command.Tab) {
	for _, known := range tabOrder {
		if known == t {
			m.active = t
		}
	}
}

// Move cycles through the tabs, by is usually 1 or -1
func (m *Tabs) Move(by int) {
	n := len(tabOrder)
	m.active = tabOrder[((int(m.active)+by)%n+n)%n]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
