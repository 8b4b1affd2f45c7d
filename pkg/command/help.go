package command

import (
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
)

// Help does not pick a tab, callers keep whatever is displayed
type Help struct{}

func (Help) Execute(*model.Model) (Result, error) {
	return Result{Feedback: messages.ShowingHelp, ShowHelp: true}, nil
}

type Exit struct{}

func (Exit) Execute(*model.Model) (Result, error) {
	return Result{Feedback: messages.Exiting, Exit: true}, nil
}
