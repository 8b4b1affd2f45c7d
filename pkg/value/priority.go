package value

import (
	"errors"
	"strings"
)

const PriorityConstraints = "Priority should be one of HIGH, MEDIUM or LOW"

var ErrInvalidPriority = errors.New(PriorityConstraints)

type Priority string

const (
	High   Priority = "HIGH"
	Medium Priority = "MEDIUM"
	Low    Priority = "LOW"
)

var priorities = map[Priority]bool{High: true, Medium: true, Low: true}

// ParsePriority is case sensitive, "high" is not a priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.TrimSpace(s))
	if !priorities[p] {
		return "", ErrInvalidPriority
	}
	return p, nil
}

func (p Priority) String() string { return string(p) }
