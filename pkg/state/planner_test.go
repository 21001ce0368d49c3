package state

import (
	"errors"
	"testing"
	"time"
)

func TestSetMergesPartialPatches(t *testing.T) {
	worked := true
	note := "x"
	d, err := Days{}.Set("2024-01-01", DayPatch{Worked: &worked})
	if err != nil {
		t.Fatalf("set worked: %v", err)
	}
	d, err = d.Set("2024-01-01", DayPatch{Note: &note})
	if err != nil {
		t.Fatalf("set note: %v", err)
	}
	if got := d.Get("2024-01-01"); got != (PlannerDay{Note: "x", Worked: true}) {
		t.Fatalf("expected merged record, got %+v", got)
	}
}

func TestSetRejectsBadKeys(t *testing.T) {
	orig := Days{"2024-01-01": {Note: "keep"}}
	for _, key := range []string{"", "2024-13-01", "01/01/2024"} {
		got, err := orig.Set(key, DayPatch{})
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Set(%q) = %v, want ErrInvalidDate", key, err)
		}
		if len(got) != 1 {
			t.Errorf("expected store to be unchanged")
		}
	}
}

func TestSetDoesNotModifyReceiver(t *testing.T) {
	note := "new"
	orig := Days{"2024-01-01": {Note: "old"}}
	if _, err := orig.Set("2024-01-01", DayPatch{Note: &note}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if orig.Get("2024-01-01").Note != "old" {
		t.Fatalf("receiver changed")
	}
}

func TestToggleWorked(t *testing.T) {
	d, err := Days{}.ToggleWorked("2024-01-05")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !d.Get("2024-01-05").Worked {
		t.Fatalf("expected worked after first toggle")
	}
	d, _ = d.ToggleWorked("2024-01-05")
	if d.Get("2024-01-05").Worked {
		t.Fatalf("expected second toggle to clear")
	}
}

func TestWeekAndFill(t *testing.T) {
	d := Days{"2024-01-01": {Note: "mon"}, "2024-01-07": {Note: "sun"}, "2024-01-08": {Note: "next"}}
	w := d.Week(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
	if w[0].Note != "mon" || w[6].Note != "sun" || w[3] != (PlannerDay{}) {
		t.Fatalf("unexpected week %+v", w)
	}

	filled, changed := d.Fill(Days{"2024-01-01": {Note: "ignored"}, "2024-02-01": {Worked: true}})
	if !changed {
		t.Fatalf("expected fill to report change")
	}
	if filled.Get("2024-01-01").Note != "mon" || !filled.Get("2024-02-01").Worked {
		t.Fatalf("unexpected fill result %+v", filled)
	}
	if _, changed := filled.Fill(Days{"2024-01-01": {}}); changed {
		t.Fatalf("expected no change for existing keys")
	}
}
