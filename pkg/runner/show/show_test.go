package show

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
)

func TestShowAllJSON(t *testing.T) {
	svc := app.New(store.NewGateway(store.NewMemory(), nil), nil)
	if _, err := svc.CreateCategory("Shop"); err != nil {
		t.Fatalf("create: %v", err)
	}
	var buf bytes.Buffer
	s := &Show{JSON: true, All: true, Service: svc, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	var got []state.Category
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got) != 2 || got[1].Name != "Shop" {
		t.Fatalf("unexpected lists %+v", got)
	}
}

func TestShowPlannerIsRejected(t *testing.T) {
	svc := app.New(store.NewGateway(store.NewMemory(), nil), nil)
	s := &Show{Category: state.PlannerID, Service: svc, Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected an error for the planner")
	}
}
