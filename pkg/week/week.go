// Package week does the calendar arithmetic behind the weekly planner.
//
// Weeks start on Monday and Sunday is the last day. Nothing in here reads the
// clock; callers pass the reference date explicitly.
package week

import (
	"fmt"
	"strings"
	"time"
)

const (
	// KeyLayout is the layout of planner day keys.
	KeyLayout = "2006-01-02"

	// Length is the number of day cards in a planner week.
	Length = 7
)

// Short weekday labels, Monday first.
var shortNames = [Length]string{"HÉ", "KE", "SZ", "CS", "PÉ", "SZ", "VA"}

// MondayOfWeek returns local midnight of the Monday of ref's week, shifted by
// offset whole weeks.
func MondayOfWeek(ref time.Time, offset int) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	sinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, offset*Length-sinceMonday)
}

// DateKey formats the calendar fields of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD key as local midnight.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, strings.TrimSpace(key), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("week: invalid date key %q: %w", key, err)
	}
	return t, nil
}

// CanonicalKey reports the normalized form of key, or false if key is not a
// real calendar date.
func CanonicalKey(key string) (string, bool) {
	t, err := ParseKey(key)
	if err != nil {
		return "", false
	}
	return DateKey(t), true
}

// Days lists the seven dates starting at monday.
func Days(monday time.Time) [Length]time.Time {
	var out [Length]time.Time
	for i := range out {
		out[i] = monday.AddDate(0, 0, i)
	}
	return out
}

// Keys lists the seven day keys starting at monday.
func Keys(monday time.Time) [Length]string {
	var out [Length]string
	for i, d := range Days(monday) {
		out[i] = DateKey(d)
	}
	return out
}

// Label names a week relative to the current one.
func Label(offset int) string {
	switch {
	case offset == 0:
		return "Ez a hét"
	case offset == 1:
		return "Jövő hét"
	case offset == -1:
		return "Múlt hét"
	case offset > 0:
		return fmt.Sprintf("%d héttel előre", offset)
	default:
		return fmt.Sprintf("%d héttel vissza", -offset)
	}
}

// Range renders the span of the week starting at monday, e.g. "01.01 - 01.07".
func Range(monday time.Time) string {
	return fmt.Sprintf("%s - %s", monthDay(monday), monthDay(monday.AddDate(0, 0, Length-1)))
}

// DayLabel renders the card label for the i-th day of a week, e.g. "HÉ.01".
func DayLabel(i int, date time.Time) string {
	if i < 0 || i >= Length {
		return fmt.Sprintf("%02d", date.Day())
	}
	return fmt.Sprintf("%s.%02d", shortNames[i], date.Day())
}

// IsSameDay reports whether a and b share calendar fields.
func IsSameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

func monthDay(t time.Time) string {
	return fmt.Sprintf("%02d.%02d", int(t.Month()), t.Day())
}
