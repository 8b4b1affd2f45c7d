package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/devbook/pkg/date"
)

const (
	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Orange = lipgloss.Color("#c27510")
)

// DueColor is red within two days, orange within two weeks
func DueColor(d date.Date, now time.Time) lipgloss.Color {
	switch days := d.DaysUntil(now); {
	case days <= 2:
		return Red
	case days <= 14:
		return Orange
	default:
		return Faded
	}
}
