package app

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
)

func newService(m *store.Memory) *Service {
	return New(store.NewGateway(m, nil), nil)
}

func TestServiceLoadsLazilyAndSaves(t *testing.T) {
	m := store.NewMemory()
	svc := newService(m)
	if m.Writes() != 0 {
		t.Fatal("service should not touch storage before first use")
	}

	st, err := svc.State()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	active := st.ActiveCategoryID

	if _, err := svc.AddItem(active, "Milk"); err != nil {
		t.Fatalf("add: %v", err)
	}

	data, err := m.Read(store.SlotState)
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	var saved state.AppState
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	c, ok := saved.Category(active)
	if !ok || len(c.Items) != 1 || c.Items[0].Text != "Milk" {
		t.Fatalf("expected saved item, got %+v", c)
	}
}

func TestServiceFindsGeneratedIDsAcrossSessions(t *testing.T) {
	m := store.NewMemory()
	m.Put(store.SlotState, `{"activeCategoryId":"a","categories":[{"id":"a","name":"Shop","items":[{"text":"Milk"}]}]}`)

	st, err := newService(m).State()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	c, _ := st.Category("a")
	id := c.Items[0].ID

	next, err := newService(m).ToggleItem("a", id)
	if err != nil {
		t.Fatalf("toggle by an id shown in an earlier session: %v", err)
	}
	if c, _ := next.Category("a"); !c.Items[0].Done {
		t.Fatal("expected item to be done")
	}
}

func TestServiceDenialsDoNotSave(t *testing.T) {
	m := store.NewMemory()
	svc := newService(m)
	st, _ := svc.State()
	writes := m.Writes()

	got, err := svc.AddItem(state.PlannerID, "nope")
	if !errors.Is(err, state.ErrLocked) {
		t.Fatalf("expected locked denial, got %v", err)
	}
	if got != st {
		t.Fatal("expected unchanged state on denial")
	}
	if _, err := svc.DeleteCategory(st.ActiveCategoryID); !errors.Is(err, state.ErrLastCategory) {
		t.Fatalf("expected last category denial, got %v", err)
	}
	if m.Writes() != writes {
		t.Fatalf("denials should not write, got %d extra writes", m.Writes()-writes)
	}
}

func TestServiceKeepsStateWhenSaveFails(t *testing.T) {
	m := store.NewMemory()
	svc := newService(m)
	st, _ := svc.State()
	m.FailWrites(errors.New("quota exceeded"))

	next, err := svc.CreateCategory("Home")
	if err != nil {
		t.Fatalf("create should succeed in memory: %v", err)
	}
	if next.ActiveCategoryID == st.ActiveCategoryID {
		t.Fatal("expected new category to be active")
	}
	cur, _ := svc.State()
	if cur != next {
		t.Fatal("in-memory state should be authoritative after a failed save")
	}

	m.FailWrites(nil)
	if _, err := svc.RenameCategory(next.ActiveCategoryID, "House"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if err := svc.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	cur, _ = svc.State()
	if c, ok := cur.Category(next.ActiveCategoryID); !ok || c.Name != "House" {
		t.Fatalf("next successful save should persist everything, got %+v", c)
	}
}

func TestServicePlannerDays(t *testing.T) {
	m := store.NewMemory()
	svc := newService(m)
	worked := true
	note := "x"
	if _, err := svc.SetPlannerDay("2024-01-01", state.DayPatch{Worked: &worked}); err != nil {
		t.Fatalf("set worked: %v", err)
	}
	day, err := svc.SetPlannerDay("2024-01-01", state.DayPatch{Note: &note})
	if err != nil {
		t.Fatalf("set note: %v", err)
	}
	if day != (state.PlannerDay{Note: "x", Worked: true}) {
		t.Fatalf("expected merged day, got %+v", day)
	}
	if day, _ := svc.ToggleWorked("2024-01-01"); day.Worked {
		t.Fatal("expected toggle to clear worked")
	}
	if _, err := svc.SetPlannerDay("tomorrow", state.DayPatch{}); !errors.Is(err, state.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}

	other := newService(m)
	days, _ := other.Planner()
	if days.Get("2024-01-01") != (state.PlannerDay{Note: "x"}) {
		t.Fatalf("planner not persisted: %+v", days)
	}
}

func TestBuildWeek(t *testing.T) {
	days := state.Days{"2024-01-01": {Note: "start", Worked: true}, "2024-01-10": {Worked: true}}
	ref := time.Date(2024, time.January, 3, 15, 0, 0, 0, time.Local)

	v := BuildWeek(days, ref, 0)
	if v.Monday != "2024-01-01" || v.Label != "Ez a hét" || v.Range != "01.01 - 01.07" {
		t.Fatalf("unexpected header %+v", v)
	}
	if len(v.Days) != 7 || v.Days[0].Note != "start" || v.Worked != 1 {
		t.Fatalf("unexpected days %+v", v.Days)
	}
	if !v.Days[2].Today || v.Days[1].Today {
		t.Fatal("expected wednesday to be today")
	}

	next := BuildWeek(days, ref, 1)
	if next.Monday != "2024-01-08" || next.Worked != 1 || !next.Days[2].Worked {
		t.Fatalf("unexpected next week %+v", next)
	}
}

func TestSummarize(t *testing.T) {
	st := &state.AppState{
		ActiveCategoryID: "a",
		Categories: []state.Category{
			{ID: state.PlannerID, Name: state.PlannerName, Locked: true, Items: []state.Item{}},
			{ID: "a", Name: "A", Items: []state.Item{{ID: "1", Text: "x", Done: true}, {ID: "2", Text: "y"}}},
			{ID: "b", Name: "B", Items: []state.Item{{ID: "3", Text: "z"}}},
		},
	}
	sum := Summarize(st)
	if len(sum.Lists) != 2 || sum.Open != 2 || sum.Done != 1 || !sum.Lists[0].Active {
		t.Fatalf("unexpected summary %+v", sum)
	}
}
