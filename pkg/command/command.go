// Package command holds one type per command word. A command is fully
// validated when it is built, so executing it can only fail because the
// model does not match what the command refers to.
package command

import (
	"errors"

	"github.com/td0m/devbook/pkg/model"
)

// Tab is the list a result should be displayed on
type Tab int

const (
	DeveloperTab Tab = iota
	ClientTab
	ProjectTab
)

func (t Tab) String() string {
	switch t {
	case DeveloperTab:
		return "Developers"
	case ClientTab:
		return "Clients"
	case ProjectTab:
		return "Projects"
	}
	return "Unknown"
}

type Result struct {
	Feedback string
	Tab      Tab
	ShowHelp bool
	Exit     bool

	// Mutated is set when the model must be persisted
	Mutated bool
}

type Command interface {
	Execute(m *model.Model) (Result, error)
}

var (
	ErrInvalidIndex   = errors.New("invalid index")
	ErrInvalidFile    = errors.New("invalid file")
	ErrDuplicate      = errors.New("duplicate")
	ErrUnknownProject = errors.New("unknown project")
	ErrInvalidImport  = errors.New("invalid import")
)

// Error is returned by Execute. Msg is shown to the user verbatim, Kind
// classifies it for errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}
