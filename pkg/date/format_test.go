package date

import (
	"testing"
	"time"
)

func TestHumanize(t *testing.T) {
	now := time.Date(2021, time.January, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want string
	}{
		{"31-12-2020", "overdue"},
		{"01-01-2021", "today"},
		{"02-01-2021", "1 day"},
		{"05-01-2021", "4 days"},
		{"22-01-2021", "3 weeks"},
		{"01-03-2021", "1 month"},
		{"01-06-2021", "4 months"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := Humanize(d, now); got != tt.want {
				t.Errorf("Humanize(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
