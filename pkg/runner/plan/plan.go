// Package plan provides the runner logic for the weekly planner.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/printers"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/week"
)

// Plan reads and edits planner days.
type Plan struct {
	JSON    bool
	Service *app.Service
	// Now defaults to time.Now.
	Now func() time.Time
	Out io.Writer
}

func (n *Plan) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Plan) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

// Week prints the week offset weeks from today.
func (n *Plan) Week(offset int) error {
	if n.Service == nil {
		return errors.New("can not plan, no service")
	}
	v, err := n.Service.Week(n.now(), offset)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.printJSON(v)
	}
	pp := printers.PrettyPrint{Out: n.out()}
	pp.NewLine()
	pp.Week(v)
	return nil
}

// Set merges patch into the day at key and prints that day's week.
func (n *Plan) Set(key string, patch state.DayPatch) error {
	if n.Service == nil {
		return errors.New("can not plan, no service")
	}
	day, err := n.Service.SetPlannerDay(key, patch)
	if err != nil {
		return err
	}
	return n.printDay(key, day)
}

// Worked flips the worked flag of the day at key.
func (n *Plan) Worked(key string) error {
	if n.Service == nil {
		return errors.New("can not plan, no service")
	}
	day, err := n.Service.ToggleWorked(key)
	if err != nil {
		return err
	}
	return n.printDay(key, day)
}

func (n *Plan) printDay(key string, day state.PlannerDay) error {
	if n.JSON {
		canonical, _ := week.CanonicalKey(key)
		return n.printJSON(struct {
			Date string `json:"date"`
			state.PlannerDay
		}{canonical, day})
	}
	date, err := week.ParseKey(key)
	if err != nil {
		return err
	}
	return n.Week(OffsetOf(date, n.now()))
}

// OffsetOf returns how many weeks date lies from the week of ref.
func OffsetOf(date, ref time.Time) int {
	a := week.MondayOfWeek(date, 0)
	b := week.MondayOfWeek(ref, 0)
	days := int(time.Date(a.Year(), a.Month(), a.Day(), 12, 0, 0, 0, time.UTC).
		Sub(time.Date(b.Year(), b.Month(), b.Day(), 12, 0, 0, 0, time.UTC)).Hours() / 24)
	return days / 7
}

func (n *Plan) printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(n.out(), string(b))
	return nil
}
