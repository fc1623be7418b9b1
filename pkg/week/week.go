package week

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date-only form used everywhere a calendar
// date crosses a boundary (API payloads, week_start keys, journal dates).
const DateLayout = "2006-01-02"

// Start returns the Monday that opens t's ISO week, at midnight in t's
// location. Sunday belongs to the week opened by the previous Monday.
func Start(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// PreviousStart returns the Monday one full week before Start(t). The
// public display always shows the previous week's approved records, so
// curation of the current week can finish before Monday's publish.
func PreviousStart(t time.Time) time.Time {
	return Start(t.AddDate(0, 0, -7))
}

// ParseDate parses a YYYY-MM-DD string without any timezone conversion,
// so the calendar day can never drift with the process timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// StartOfDateString maps a YYYY-MM-DD date to its week_start key.
func StartOfDateString(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return Start(t).Format(DateLayout), nil
}

// FormatRange renders a week-picker label like "Jan 15 – Jan 21, 2024"
// for the week opened by weekStart (a YYYY-MM-DD Monday).
func FormatRange(weekStart string) (string, error) {
	mon, err := ParseDate(weekStart)
	if err != nil {
		return "", err
	}
	sun := mon.AddDate(0, 0, 6)
	if mon.Year() != sun.Year() {
		return fmt.Sprintf("%s – %s", mon.Format("Jan 2, 2006"), sun.Format("Jan 2, 2006")), nil
	}
	return fmt.Sprintf("%s – %s, %d", mon.Format("Jan 2"), sun.Format("Jan 2"), sun.Year()), nil
}
