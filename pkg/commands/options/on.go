package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/week"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects a planner day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "today",
		`Specify a date, example: --on="2024-2-28", --on="2/28", --on=tomorrow.`)
}

// Key returns the planner key of the selected day relative to now.
func (o *OnOptions) Key(now time.Time) (string, error) {
	return ParseDay(o.OnString, now)
}

// ParseDay turns a loose date into a planner key.
func ParseDay(s string, now time.Time) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	switch s {
	case "", "today", "ma":
		return week.DateKey(today), nil
	case "tomorrow", "holnap":
		return week.DateKey(today.AddDate(0, 0, 1)), nil
	case "yesterday", "tegnap":
		return week.DateKey(today.AddDate(0, 0, -1)), nil
	}
	if t, err := time.ParseInLocation(layoutISO, s, time.Local); err == nil {
		return week.DateKey(t), nil
	}
	t, err := time.ParseInLocation(layoutISOShort, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-M-D or M/D", s)
	}
	// Month and day only: the nearest such date on or after today.
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return week.DateKey(t), nil
}

// WeekOptions selects a planner week.
type WeekOptions struct {
	Offset int
}

func AddWeekArgs(cmd *cobra.Command, o *WeekOptions) {
	cmd.Flags().IntVarP(&o.Offset, "week", "w", 0,
		"Weeks from the current one, negative for past weeks.")
}
