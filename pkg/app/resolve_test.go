package app

import (
	"errors"
	"testing"

	"tableflip.dev/listplan/pkg/state"
)

func resolveFixture() *state.AppState {
	return &state.AppState{
		ActiveCategoryID: "b",
		Categories: []state.Category{
			{ID: state.PlannerID, Name: state.PlannerName, Locked: true, Items: []state.Item{}},
			{ID: "a", Name: "Shop", Items: []state.Item{{ID: "x", Text: "Milk"}, {ID: "y", Text: "Eggs"}}},
			{ID: "b", Name: "Work", Items: []state.Item{}},
			{ID: "c", Name: "work", Items: []state.Item{}},
		},
	}
}

func TestResolveCategory(t *testing.T) {
	st := resolveFixture()
	tests := []struct {
		ref  string
		want string
		err  bool
	}{
		{"", "b", false},
		{"a", "a", false},
		{"shop", "a", false},
		{"Work", "", true},
		{"missing", "", true},
	}
	for _, tt := range tests {
		c, err := ResolveCategory(st, tt.ref)
		if tt.err {
			if err == nil {
				t.Errorf("ResolveCategory(%q) expected error", tt.ref)
			}
			continue
		}
		if err != nil || c.ID != tt.want {
			t.Errorf("ResolveCategory(%q) = %v, %v; want %s", tt.ref, c, err, tt.want)
		}
	}
	if _, err := ResolveCategory(st, "missing"); !errors.Is(err, state.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestResolveItem(t *testing.T) {
	c, _ := resolveFixture().Category("a")
	if it, err := ResolveItem(c, "y"); err != nil || it.Text != "Eggs" {
		t.Fatalf("by id: %v %v", it, err)
	}
	if it, err := ResolveItem(c, "1"); err != nil || it.ID != "x" {
		t.Fatalf("by position: %v %v", it, err)
	}
	if _, err := ResolveItem(c, "3"); !errors.Is(err, state.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
