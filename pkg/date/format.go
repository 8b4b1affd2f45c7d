package date

import (
	"strconv"
	"time"
)

// Humanize describes how far away d is, relative to the day of now
func Humanize(d Date, now time.Time) string {
	switch days := d.DaysUntil(now); {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days < 14:
		suffix := ""
		if days > 1 {
			suffix = "s"
		}
		return strconv.Itoa(days) + " day" + suffix
	// max 1 month
	case days <= 31:
		return strconv.Itoa(days/7) + " weeks"
	// months
	default:
		postfix := ""
		months := days / 31
		if months > 1 {
			postfix = "s"
		}
		return strconv.Itoa(months) + " month" + postfix
	}
}
