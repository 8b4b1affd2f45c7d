package model

import (
	"errors"
	"regexp"
	"strings"

	"github.com/td0m/devbook/pkg/date"
	"github.com/td0m/devbook/pkg/value"
)

const DeadlineConstraints = "Deadline should be of the format dd-MM-yyyy,<DESCRIPTION>,<HIGH|MEDIUM|LOW>,<0|1>\n" +
	"Eg: 31-12-2019,Develop front end interface,HIGH,0"

var ErrInvalidDeadline = errors.New(DeadlineConstraints)

var deadlinePattern = regexp.MustCompile(`^[0-3]\d-[01]\d-\d{4},[^,]+,(HIGH|MEDIUM|LOW),(0|1)$`)

// Deadline belongs to exactly one project. Its fields never change after
// creation, only whether it is done.
type Deadline struct {
	date        date.Date
	description value.Description
	priority    value.Priority
	done        bool
}

func NewDeadline(d date.Date, desc value.Description, priority value.Priority, done bool) *Deadline {
	return &Deadline{date: d, description: desc, priority: priority, done: done}
}

// ParseDeadline reads the canonical form produced by String, done state included
func ParseDeadline(s string) (*Deadline, error) {
	s = strings.TrimSpace(s)
	if !deadlinePattern.MatchString(s) {
		return nil, ErrInvalidDeadline
	}
	parts := strings.Split(s, ",")
	d, err := date.Parse(parts[0])
	if err != nil {
		return nil, ErrInvalidDeadline
	}
	desc, err := value.ParseDescription(parts[1])
	if err != nil {
		return nil, ErrInvalidDeadline
	}
	priority, err := value.ParsePriority(parts[2])
	if err != nil {
		return nil, ErrInvalidDeadline
	}
	return NewDeadline(d, desc, priority, parts[3] == "1"), nil
}

func (d *Deadline) Date() date.Date                { return d.date }
func (d *Deadline) Description() value.Description { return d.description }
func (d *Deadline) Priority() value.Priority       { return d.priority }
func (d *Deadline) Done() bool                     { return d.done }

// Mark is idempotent
func (d *Deadline) Mark() { d.done = true }

// Unmark is idempotent
func (d *Deadline) Unmark() { d.done = false }

// Equal ignores the done flag
func (d *Deadline) Equal(other *Deadline) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.date.Equal(other.date) && d.description == other.description && d.priority == other.priority
}

func (d *Deadline) clone() *Deadline {
	c := *d
	return &c
}

// String is the canonical form, dd-MM-yyyy,<description>,<priority>,<0|1>
func (d *Deadline) String() string {
	done := "0"
	if d.done {
		done = "1"
	}
	return strings.Join([]string{d.date.String(), d.description.String(), d.priority.String(), done}, ",")
}
