package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gotomicro/ego/core/elog"
	"github.com/redis/go-redis/v9"
	"github.com/td0m/devbook/internal/config"
	"github.com/td0m/devbook/internal/logging"
	"github.com/td0m/devbook/internal/ui"
	"github.com/td0m/devbook/pkg/cmdinput"
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/logic"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/parser"
	"github.com/td0m/devbook/pkg/persist"
)

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	cfg, err := config.Load("devbook", os.Args[1:])
	check(err)
	logger, err := logging.New("devbook", cfg.LogLevel)
	check(err)

	manager := logic.New(storage(cfg), logger)
	check(manager.Load())
	logger.Info("starting", elog.String("store", cfg.Store))

	a := newApp(manager)
	p := tea.NewProgram(a)
	p.EnterAltScreen()
	defer p.ExitAltScreen()
	check(p.Start())
}

func storage(cfg config.Config) persist.Storage {
	if cfg.Store == config.StoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return persist.InRedis(client, cfg.Redis.Key)
	}
	return persist.InJSON(cfg.File)
}

const (
	headerHeight = 3
	footerHeight = 2
)

var (
	statusOK    = lipgloss.NewStyle().Foreground(ui.Secondary)
	statusError = lipgloss.NewStyle().Foreground(ui.Red)
	helpText    = lipgloss.NewStyle().Foreground(ui.Secondary)
)

type app struct {
	manager *logic.Manager

	tabs     ui.Tabs
	viewport viewport.Model
	input    cmdinput.Model

	status   string
	failed   bool
	showHelp bool
	// usage of the command that last failed to parse
	usage string
}

func newApp(manager *logic.Manager) *app {
	a := &app{
		manager:  manager,
		tabs:     ui.NewTabs(),
		viewport: viewport.Model{},
		input:    cmdinput.NewModel(manager.Validate, parser.Words()),
	}
	manager.Model().Subscribe(func(e model.Event) {
		if e.Name != "" {
			a.tabs.Info = e.Kind.String() + " " + e.Name
		}
	})
	return a
}

func (m *app) Init() tea.Cmd {
	return nil
}

func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.tabs.Width = msg.Width
		m.input.SetWidth(msg.Width - 4)
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.showHelp, m.usage = false, ""
		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, cmd = m.viewport.Update(msg)
		case tea.KeyEnter:
			if m.run() {
				return m, tea.Quit
			}
		default:
			switch msg.String() {
			case "ctrl+right":
				m.tabs.Move(1)
			case "ctrl+left":
				m.tabs.Move(-1)
			default:
				m.input, cmd = m.input.Update(msg)
			}
		}
	}
	m.render()
	return m, cmd
}

// run executes the typed line, it reports whether the program should exit
func (m *app) run() bool {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return false
	}
	res, err := m.manager.Execute(line)
	if err != nil && !res.Mutated {
		// rejected, keep the line so it can be fixed
		m.status, m.failed = err.Error(), true
		var pe *parser.Error
		if errors.As(err, &pe) {
			m.usage = pe.Usage
		}
		return false
	}
	m.usage = ""
	m.status, m.failed = res.Feedback, false
	if err != nil {
		m.status, m.failed = res.Feedback+" (not saved: "+err.Error()+")", true
	}
	m.input.Reset()
	m.showHelp = res.ShowHelp
	if !res.ShowHelp && !res.Exit {
		m.tabs.Set(res.Tab)
	}
	m.viewport.GotoTop()
	return res.Exit
}

func (m *app) render() {
	if m.showHelp {
		m.viewport.SetContent(helpText.Render(strings.Join(command.Usages, "\n\n")))
		return
	}
	if m.usage != "" {
		m.viewport.SetContent(helpText.Render(m.usage))
		return
	}
	book := m.manager.Model()
	switch m.tabs.Value() {
	case command.DeveloperTab:
		m.viewport.SetContent(ui.Developers(book.FilteredDevelopers()))
	case command.ClientTab:
		m.viewport.SetContent(ui.Clients(book.FilteredClients()))
	case command.ProjectTab:
		m.viewport.SetContent(ui.Projects(book.FilteredProjects(), time.Now()))
	}
}

func (m *app) View() string {
	style := statusOK
	if m.failed {
		style = statusError
	}
	status := strings.SplitN(m.status, "\n", 2)[0]
	return m.tabs.View() + m.viewport.View() + "\n" + style.Render(status) + "\n" + m.input.View()
}
