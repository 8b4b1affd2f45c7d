// Package logic ties parsing, execution and storage together. It is the only
// thing the user interfaces talk to.
package logic

import (
	"sync"

	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/parser"
	"github.com/td0m/devbook/pkg/persist"
)

type Manager struct {
	mu      sync.Mutex
	model   *model.Model
	storage persist.Storage
	logger  *elog.Component
}

func New(storage persist.Storage, logger *elog.Component) *Manager {
	if logger == nil {
		logger = elog.DefaultLogger
	}
	return &Manager{
		model:   model.New(),
		storage: storage,
		logger:  logger,
	}
}

// Load replaces the model with what storage holds
func (m *Manager) Load() error {
	s, err := m.storage.Load()
	if err != nil {
		return err
	}
	loaded, err := model.FromSnapshot(s)
	if err != nil {
		return errors.Wrap(err, "invalid snapshot")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.model = loaded
	m.logger.Info("model loaded",
		elog.Int("developers", len(s.Developers)),
		elog.Int("clients", len(s.Clients)),
		elog.Int("projects", len(s.Projects)))
	return nil
}

// Execute runs one line of input. A parse or command error leaves the model
// untouched. A failed save is returned as well, but the model keeps the
// change.
func (m *Manager) Execute(line string) (command.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := parser.Parse(line)
	if err != nil {
		m.logger.Debug("parse failed", elog.String("line", line), elog.FieldErr(err))
		return command.Result{}, err
	}
	res, err := c.Execute(m.model)
	if err != nil {
		m.logger.Debug("command failed", elog.String("line", line), elog.FieldErr(err))
		return command.Result{}, err
	}
	m.logger.Debug("command executed",
		elog.String("line", line),
		elog.String("tab", res.Tab.String()),
		elog.Any("mutated", res.Mutated))

	if res.Mutated {
		if err := m.storage.Save(m.model.Snapshot()); err != nil {
			m.logger.Error("save failed", elog.FieldErr(err))
			return res, errors.Wrap(err, "saving")
		}
	}
	return res, nil
}

// Validate parses line without running it
func (m *Manager) Validate(line string) error {
	_, err := parser.Parse(line)
	return err
}

// Model is for rendering only, callers must not mutate it
func (m *Manager) Model() *model.Model {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.model
}
