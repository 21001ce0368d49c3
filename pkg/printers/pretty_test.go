package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestCategory(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Category(&state.Category{ID: "a", Name: "Shop", Items: []state.Item{
		{ID: "1", Text: "Milk"},
		{ID: "2", Text: "Bread", Done: true},
	}})
	out := buf.String()
	for _, want := range []string{"Shop", "1 open, 1 done", "[ ] Milk", "[x] Bread"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestItemsEmpty(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Items()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestWeekWrapsNotes(t *testing.T) {
	days := state.Days{"2024-01-01": {Note: strings.Repeat("hosszú jegyzet ", 10), Worked: true}}
	v := app.BuildWeek(days, time.Date(2024, time.January, 3, 9, 0, 0, 0, time.Local), 0)

	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Week(v)
	out := buf.String()
	if !strings.Contains(out, "Ez a hét") || !strings.Contains(out, "HÉ.01") || !strings.Contains(out, "VA.07") {
		t.Fatalf("missing headers in %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "hosszú") && len([]rune(line)) > noteWidth+9+1 {
			t.Fatalf("note line not wrapped: %q", line)
		}
	}
}

func TestListsAndFindings(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Lists(app.Summary{Lists: []app.ListSummary{{ID: "a", Name: "Shop", Active: true, Open: 2}}})
	pp.Findings([]store.Finding{
		{Slot: store.SlotState, Present: true, Current: true, Usable: true},
		{Slot: "od_jegyzetek"},
		{Slot: "od_jegyzetek_v1", Present: true, Problems: []string{"state: unusable document"}},
	})
	out := buf.String()
	for _, want := range []string{"Shop", "current", "empty", "unusable"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
