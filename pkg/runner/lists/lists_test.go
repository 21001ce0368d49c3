package lists

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
)

func init() {
	color.NoColor = true
}

func newLists(buf *bytes.Buffer) *Lists {
	return &Lists{
		Service: app.New(store.NewGateway(store.NewMemory(), nil), nil),
		Out:     buf,
	}
}

func TestItemsByPosition(t *testing.T) {
	var buf bytes.Buffer
	l := newLists(&buf)

	for _, text := range []string{"Bread", "Milk", "Eggs"} {
		if err := l.Add("", text); err != nil {
			t.Fatalf("add %s: %v", text, err)
		}
	}
	// Newest first: Eggs, Milk, Bread.
	if err := l.Toggle("", "2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := l.Top("DM", "3"); err != nil {
		t.Fatalf("top: %v", err)
	}
	buf.Reset()
	if err := l.Clear(""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[ ] Bread") || !strings.Contains(out, "[ ] Eggs") || strings.Contains(out, "Milk") {
		t.Fatalf("unexpected list after clear:\n%s", out)
	}
	if strings.Index(out, "Bread") > strings.Index(out, "Eggs") {
		t.Fatalf("expected Bread on top:\n%s", out)
	}
}

func TestListLifecycleJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLists(&buf)
	l.JSON = true

	if err := l.Create("Shop"); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created state.Category
	if err := json.Unmarshal(buf.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Name != "Shop" || created.Locked {
		t.Fatalf("unexpected category %+v", created)
	}

	if err := l.Rename("shop", "Groceries"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if err := l.Rename(state.PlannerID, "Mine"); !errors.Is(err, state.ErrLocked) {
		t.Fatalf("expected locked denial, got %v", err)
	}
	if err := l.Delete("Groceries"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := l.Delete("DM"); !errors.Is(err, state.ErrLastCategory) {
		t.Fatalf("expected last category denial, got %v", err)
	}
	if err := l.Add(state.PlannerID, "x"); !errors.Is(err, state.ErrLocked) {
		t.Fatalf("expected locked denial, got %v", err)
	}
}

func TestUseAndOverview(t *testing.T) {
	var buf bytes.Buffer
	l := newLists(&buf)
	if err := l.Create("Work"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := l.Use("DM"); err != nil {
		t.Fatalf("use: %v", err)
	}
	buf.Reset()
	if err := l.Overview(); err != nil {
		t.Fatalf("overview: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "* ") || !strings.Contains(out, "Work") {
		t.Fatalf("unexpected overview:\n%s", out)
	}
}
