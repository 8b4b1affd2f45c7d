// Package parser turns one line of user input into a command.
//
// A line is a command word followed by its arguments. Named arguments start
// with a prefix such as n/ and run until the next prefix. Every value is
// validated here, so a command that parses can only fail when it does not
// match the model it runs against.
package parser

import (
	"strings"
	"unicode"

	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/messages"
)

type parseFunc func(args string) (command.Command, error)

type entry struct {
	word  string
	parse parseFunc
}

// registry is kept in help order
var registry = []entry{
	{command.AddDeveloperWord, parseAddDeveloper},
	{command.AddClientWord, parseAddClient},
	{command.AddProjectWord, parseAddProject},
	{command.DeleteDeveloperWord, parseDeleteDeveloper},
	{command.DeleteClientWord, parseDeleteClient},
	{command.DeleteProjectWord, parseDeleteProject},
	{command.EditDeveloperWord, parseEditDeveloper},
	{command.EditClientWord, parseEditClient},
	{command.EditProjectWord, parseEditProject},
	{command.ListDeveloperWord, constant(command.ListDevelopers{})},
	{command.ListClientWord, constant(command.ListClients{})},
	{command.ListProjectWord, constant(command.ListProjects{})},
	{command.FindDeveloperWord, parseFindDeveloper},
	{command.FindClientWord, parseFindClient},
	{command.FindProjectWord, parseFindProject},
	{command.MarkDeadlineWord, parseMarkDeadline},
	{command.UnmarkDeadlineWord, parseUnmarkDeadline},
	{command.ImportDeveloperWord, parseImportDeveloper},
	{command.ImportClientWord, parseImportClient},
	{command.HelpWord, constant(command.Help{})},
	{command.ExitWord, constant(command.Exit{})},
}

var parsers = func() map[string]parseFunc {
	m := make(map[string]parseFunc, len(registry))
	for _, e := range registry {
		m[e.word] = e.parse
	}
	return m
}()

// Words lists every command word
func Words() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.word
	}
	return out
}

// Parse reads a full input line. Errors are always *Error.
func Parse(line string) (command.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, invalidFormat(command.HelpUsage)
	}
	word, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, args = line[:i], line[i:]
	}
	parse, ok := parsers[word]
	if !ok {
		return nil, &Error{Kind: ErrUnknownCommand, Msg: messages.UnknownCommand}
	}
	return parse(args)
}

// constant is used by words that take no arguments, anything typed after
// them is ignored
func constant(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}

func parseImportDeveloper(args string) (command.Command, error) {
	path := strings.TrimSpace(args)
	if path == "" {
		return nil, invalidFormat(command.ImportDeveloperUsage)
	}
	return command.ImportDevelopers{Path: path}, nil
}

func parseImportClient(args string) (command.Command, error) {
	path := strings.TrimSpace(args)
	if path == "" {
		return nil, invalidFormat(command.ImportClientUsage)
	}
	return command.ImportClients{Path: path}, nil
}
