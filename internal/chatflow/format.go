package chatflow

import (
	"fmt"
	"time"
)

// Traveler-facing dates are rendered in French, "02 janvier 2006".
var frenchMonths = [...]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

func FormatFrenchDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), frenchMonths[t.Month()], t.Year())
}

// FormatFrenchDateRange renders "Du 01 octobre 2024 au 05 octobre 2024", the
// shape used for transcript echoes and the dashboard summary.
func FormatFrenchDateRange(from, to time.Time) string {
	return fmt.Sprintf("Du %s au %s", FormatFrenchDate(from), FormatFrenchDate(to))
}
