package parser

import (
	"errors"
	"fmt"

	"github.com/td0m/devbook/pkg/messages"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidFormat   = errors.New("invalid command format")
	ErrDuplicatePrefix = errors.New("duplicate prefix")
	// ErrInvalidValue is a format error caused by a single field
	ErrInvalidValue = fmt.Errorf("invalid value: %w", ErrInvalidFormat)
)

// Error is returned by every parser. Msg is shown to the user verbatim.
// Usage is the usage text of the command that failed, empty for unknown
// commands.
type Error struct {
	Kind  error
	Msg   string
	Usage string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func invalidFormat(usage string) error {
	return &Error{Kind: ErrInvalidFormat, Msg: messages.InvalidFormat(usage), Usage: usage}
}

// invalidValue keeps the constraint message of the value that failed
func invalidValue(err error, usage string) error {
	return &Error{Kind: ErrInvalidValue, Msg: err.Error(), Usage: usage}
}

func notEdited(usage string) error {
	return &Error{Kind: ErrInvalidFormat, Msg: messages.NotEdited, Usage: usage}
}
