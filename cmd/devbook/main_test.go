package main

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/logic"
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/persist"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	manager := logic.New(persist.InJSON(filepath.Join(t.TempDir(), "devbook.json")), nil)
	if err := manager.Load(); err != nil {
		t.Fatal(err)
	}
	a := newApp(manager)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a
}

func enter(a *app, line string) tea.Cmd {
	a.input.SetValue(line)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestApp_Run(t *testing.T) {
	is := is.New(t)
	a := newTestApp(t)

	enter(a, "add-project n/AppDev dsc/Sales app dl/01-01-2030,Beta,LOW,0")
	is.True(!a.failed)
	is.Equal(a.tabs.Value(), command.ProjectTab)
	is.Equal(a.input.Value(), "")
	is.Equal(a.tabs.Info, "added AppDev")
	is.True(strings.Contains(a.View(), "Beta"))

	enter(a, "mark-deadline 1 2")
	is.True(a.failed)
	is.Equal(a.status, messages.InvalidDeadlineIndex)
	is.Equal(a.input.Value(), "mark-deadline 1 2")
}

func TestApp_UsageOnFormatError(t *testing.T) {
	is := is.New(t)
	a := newTestApp(t)

	enter(a, "delete-developer x")
	is.True(a.failed)
	is.Equal(a.usage, command.DeleteDeveloperUsage)

	enter(a, "help")
	is.True(a.showHelp)
	is.Equal(a.usage, "")
}

func TestApp_Exit(t *testing.T) {
	is := is.New(t)
	a := newTestApp(t)

	cmd := enter(a, "exit")
	is.True(cmd != nil)
	is.Equal(a.status, messages.Exiting)
}
