package state

import (
	"time"

	"tableflip.dev/listplan/pkg/week"
)

// PlannerDay is the note and worked flag of one calendar day.
type PlannerDay struct {
	Note   string `json:"note"`
	Worked bool   `json:"worked"`
}

// Days is the planner store, keyed by YYYY-MM-DD. A missing key reads as the
// zero PlannerDay.
type Days map[string]PlannerDay

// DayPatch carries the fields to merge into a day. Nil fields are untouched.
type DayPatch struct {
	Note   *string
	Worked *bool
}

// Get returns the record for key.
func (d Days) Get(key string) PlannerDay {
	return d[key]
}

// Week returns the seven records of the week starting at monday.
func (d Days) Week(monday time.Time) [week.Length]PlannerDay {
	var out [week.Length]PlannerDay
	for i, key := range week.Keys(monday) {
		out[i] = d[key]
	}
	return out
}

// Clone copies d.
func (d Days) Clone() Days {
	out := make(Days, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Set merges patch into the record for key, creating it if absent.
func (d Days) Set(key string, patch DayPatch) (Days, error) {
	canonical, ok := week.CanonicalKey(key)
	if !ok {
		return d, ErrInvalidDate
	}
	out := d.Clone()
	day := out[canonical]
	if patch.Note != nil {
		day.Note = *patch.Note
	}
	if patch.Worked != nil {
		day.Worked = *patch.Worked
	}
	out[canonical] = day
	return out, nil
}

// ToggleWorked flips the worked flag for key.
func (d Days) ToggleWorked(key string) (Days, error) {
	canonical, ok := week.CanonicalKey(key)
	if !ok {
		return d, ErrInvalidDate
	}
	worked := !d[canonical].Worked
	return d.Set(canonical, DayPatch{Worked: &worked})
}

// Fill copies records of other whose keys are absent from d. It reports
// whether anything was added.
func (d Days) Fill(other Days) (Days, bool) {
	out := d.Clone()
	changed := false
	for k, v := range other {
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = v
		changed = true
	}
	return out, changed
}
