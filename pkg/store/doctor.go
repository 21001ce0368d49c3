package store

import (
	"encoding/json"
	"errors"

	"tableflip.dev/listplan/pkg/legacy"
	"tableflip.dev/listplan/pkg/state"
)

// Finding describes the contents of one slot.
type Finding struct {
	Slot    string `json:"slot"`
	Present bool   `json:"present"`
	// Shape is the detected layout of a state document.
	Shape string `json:"shape,omitempty"`
	// Current is true when the slot matches the current schema.
	Current bool `json:"current"`
	// Usable is true when a state document normalizes into a state that
	// holds every invariant.
	Usable   bool     `json:"usable"`
	Problems []string `json:"problems,omitempty"`
}

// Inspect reports on every known slot without changing anything.
func Inspect(s Storage) []Finding {
	var out []Finding
	for _, slot := range Slots() {
		f := Finding{Slot: slot}
		data, err := s.Read(slot)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				f.Problems = []string{err.Error()}
			}
			out = append(out, f)
			continue
		}
		f.Present = true

		err = Validate(slot, data)
		var se *SchemaError
		switch {
		case err == nil:
			f.Current = slot == SlotState || slot == SlotPlanner
		case errors.As(err, &se):
			f.Problems = append(f.Problems, se.Problems...)
		default:
			f.Problems = append(f.Problems, err.Error())
		}

		if slot != SlotPlanner {
			var raw any
			if json.Unmarshal(data, &raw) == nil {
				f.Shape = legacy.Detect(raw).String()
				inspectState(&f, raw)
			}
		}
		out = append(out, f)
	}
	return out
}

// inspectState normalizes raw and checks the result.
func inspectState(f *Finding, raw any) {
	st, err := state.Normalize(raw)
	if err != nil {
		f.Problems = append(f.Problems, err.Error())
		return
	}
	if err := st.Validate(); err != nil {
		f.Problems = append(f.Problems, "normalized "+err.Error())
		return
	}
	f.Usable = true
}
