package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/listplan/pkg/state"
)

func testGateway(m *Memory) *Gateway {
	n := 0
	return NewGateway(m, nil).WithNormalizer(state.Normalizer{
		Now: func() time.Time { return time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		},
	})
}

func storedState(t *testing.T, m *Memory) *state.AppState {
	t.Helper()
	data, err := m.Read(SlotState)
	if err != nil {
		t.Fatalf("read current slot: %v", err)
	}
	var s state.AppState
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("decode current slot: %v", err)
	}
	return &s
}

func TestLoadEmptyStorageWritesDefault(t *testing.T) {
	m := NewMemory()
	s := testGateway(m).Load()
	if err := s.Validate(); err != nil {
		t.Fatalf("default state invalid: %v", err)
	}
	if len(s.Lists()) != 1 || s.Lists()[0].Name != state.DefaultCategoryName {
		t.Fatalf("unexpected default lists %+v", s.Lists())
	}
	if got := storedState(t, m); got.ActiveCategoryID != s.ActiveCategoryID {
		t.Fatalf("default state was not persisted")
	}
}

func TestLoadPrefersCurrentSlot(t *testing.T) {
	m := NewMemory()
	m.Put(SlotState, `{"activeCategoryId":"a","categories":[{"id":"planner_locked","name":"_Tervező","locked":true,"items":[]},{"id":"a","name":"Now","locked":false,"items":[]}]}`)
	m.Put("od_jegyzetek_v3", `{"topics":[{"name":"Old"}]}`)

	s := testGateway(m).Load()
	if s.Lists()[0].Name != "Now" {
		t.Fatalf("expected current slot to win, got %+v", s.Lists())
	}
	if m.Writes() != 0 {
		t.Fatalf("loading a current slot should not write, got %d writes", m.Writes())
	}
}

func TestLoadPersistsRepairedCurrentSlot(t *testing.T) {
	m := NewMemory()
	m.Put(SlotState, `{"activeCategoryId":"a","categories":[{"id":"planner_locked","name":"_Tervező","locked":true,"items":[]},{"id":"a","name":"Shop","locked":false,"items":[{"text":"Milk"},{"id":"b","text":"  "}]}]}`)

	first := NewGateway(m, nil).Load()
	c, _ := first.Category("a")
	if len(c.Items) != 1 || c.Items[0].ID == "" {
		t.Fatalf("expected one item with a generated id, got %+v", c.Items)
	}
	if m.Writes() != 1 {
		t.Fatalf("expected the repaired state to be written once, got %d writes", m.Writes())
	}

	second := NewGateway(m, nil).Load()
	again, _ := second.Category("a")
	if again.Items[0].ID != c.Items[0].ID {
		t.Fatalf("item id changed between loads: %q then %q", c.Items[0].ID, again.Items[0].ID)
	}
	if m.Writes() != 1 {
		t.Fatalf("a clean current slot should not be rewritten, got %d writes", m.Writes())
	}
}

func TestLoadFallsBackThroughLegacySlots(t *testing.T) {
	m := NewMemory()
	m.Put(SlotState, `{not json`)
	m.Put("od_jegyzetek_v3_2", `{"categories":[]}`)
	m.Put("od_jegyzetek_v3", `{"topics":[{"name":"Shop","items":[{"text":"Milk"}]}]}`)
	m.Put("od_jegyzetek_v1", `["ignored"]`)

	s := testGateway(m).Load()
	lists := s.Lists()
	if len(lists) != 1 || lists[0].Name != "Shop" || lists[0].Items[0].Text != "Milk" {
		t.Fatalf("expected the v3 topics to be migrated, got %+v", lists)
	}
	got := storedState(t, m)
	if err := got.Validate(); err != nil {
		t.Fatalf("persisted state invalid: %v", err)
	}
	if got.Lists()[0].Name != "Shop" {
		t.Fatalf("migrated state not written to the current slot")
	}

	again := testGateway(m).Load()
	if again.Lists()[0].ID != lists[0].ID {
		t.Fatalf("second load should read the current slot")
	}
}

func TestLoadMergesLegacyPlannerDays(t *testing.T) {
	m := NewMemory()
	m.Put(SlotPlanner, `{"2024-01-01":{"note":"kept","worked":false}}`)
	m.Put("od_jegyzetek_v3_2", `{
		"selectedCategoryId": "a",
		"categories": [
			{"id":"planner_locked","name":"_Tervező","locked":true,"items":[]},
			{"id":"a","name":"DM","color":"#fff","items":[]}
		],
		"planner": {"weekOffset": 2, "weeks": {"2024-01-01": {"days": [
			{"note":"lost","worked":true},
			{"note":"tuesday","worked":true}
		]}}}
	}`)

	g := testGateway(m)
	s := g.Load()
	if s.ActiveCategoryID != "a" {
		t.Fatalf("unexpected active %q", s.ActiveCategoryID)
	}
	days := g.LoadPlanner()
	if got := days.Get("2024-01-01"); got.Note != "kept" || got.Worked {
		t.Fatalf("existing planner day should win, got %+v", got)
	}
	if got := days.Get("2024-01-02"); got != (state.PlannerDay{Note: "tuesday", Worked: true}) {
		t.Fatalf("expected merged tuesday, got %+v", got)
	}
	if planner := s.Planner(); planner == nil || len(planner.Items) != 0 {
		t.Fatalf("planner category must stay empty")
	}
}

func TestLoadSurvivesStorageFailures(t *testing.T) {
	m := NewMemory()
	m.FailReads(errors.New("disk on fire"))
	m.FailWrites(errors.New("quota exceeded"))

	g := testGateway(m)
	s := g.Load()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected a usable state, got %v", err)
	}
	if err := g.Save(s); err == nil {
		t.Fatal("expected save to report the write failure")
	}
	if len(g.LoadPlanner()) != 0 {
		t.Fatal("expected empty planner on read failure")
	}
}

func TestSavePlannerRoundTrip(t *testing.T) {
	m := NewMemory()
	g := testGateway(m)
	worked := true
	days, err := state.Days{}.Set("2024-01-05", state.DayPatch{Worked: &worked})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := g.SavePlanner(days); err != nil {
		t.Fatalf("save planner: %v", err)
	}
	if !g.LoadPlanner().Get("2024-01-05").Worked {
		t.Fatal("planner day lost in round trip")
	}
	data, _ := m.Read(SlotPlanner)
	if err := Validate(SlotPlanner, data); err != nil {
		t.Fatalf("saved planner fails schema: %v", err)
	}
}
