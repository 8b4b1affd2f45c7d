package date

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Layout is the dd-MM-yyyy form used for input, display and storage
const Layout = "02-01-2006"

const Constraints = "Dates should be of the format dd-MM-yyyy and must be a valid calendar date"

var ErrParsing = errors.New(Constraints)

var pattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// Date is a calendar day. The zero value is not a valid date and is only
// produced on parse failures.
type Date struct {
	t time.Time
}

// Parse validates s as dd-MM-yyyy
// both the shape and the calendar must agree, so 31-02-2020 is rejected
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if !pattern.MatchString(s) {
		return Date{}, ErrParsing
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, ErrParsing
	}
	return Date{t: t}, nil
}

// IsValid reports whether s would parse
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func (d Date) String() string {
	return d.t.Format(Layout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func StartOfDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil counts whole days from the day of now to d
// negative when d is in the past
func (d Date) DaysUntil(now time.Time) int {
	return int(d.t.Sub(StartOfDay(now)).Hours() / 24)
}
