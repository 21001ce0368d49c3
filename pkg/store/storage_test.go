package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), sqliteFile))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Storage{
		"diskv":  NewDiskv(t.TempDir()),
		"sqlite": sq,
		"memory": NewMemory(),
	}
}

func TestStorageRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Read(SlotState); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for empty slot, got %v", err)
			}
			if err := s.Write(SlotState, []byte(`{"a":1}`)); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := s.Write(SlotState, []byte(`{"a":2}`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := s.Read(SlotState)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if string(got) != `{"a":2}` {
				t.Fatalf("expected latest value, got %s", got)
			}
			if _, err := s.Read(SlotPlanner); !errors.Is(err, ErrNotFound) {
				t.Fatalf("slots should be independent, got %v", err)
			}
		})
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	base := t.TempDir()
	s, err := Open(StaticConfig{Path: base, Storage: BackendSQLite})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer Close(s)
	if _, ok := s.(*SQLite); !ok {
		t.Fatalf("expected sqlite storage, got %T", s)
	}
	if _, err := Open(StaticConfig{Path: base, Storage: "tape"}); err == nil {
		t.Fatal("expected unknown backend error")
	}
	if _, err := Open(StaticConfig{}); err == nil {
		t.Fatal("expected missing path error")
	}
}

func TestDiskvKeys(t *testing.T) {
	d := NewDiskv(t.TempDir())
	for _, slot := range []string{SlotPlanner, "od_jegyzetek_v2"} {
		if err := d.Write(slot, []byte(`[]`)); err != nil {
			t.Fatalf("write %s: %v", slot, err)
		}
	}
	keys := d.Keys(context.Background())
	if len(keys) != 2 || keys[0] != "od_jegyzetek_v2" || keys[1] != SlotPlanner {
		t.Fatalf("unexpected keys %v", keys)
	}
	if got := d.slotForPath(filepath.Join(d.BasePath(), SlotPlanner+slotExt)); got != SlotPlanner {
		t.Fatalf("slotForPath = %q", got)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LISTPLAN_CONFIG_PATH", dir)
	t.Setenv("LISTPLAN_PATH", filepath.Join(dir, "data"))
	t.Setenv("LISTPLAN_STORAGE", BackendSQLite)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "data") {
		t.Fatalf("unexpected path %q", cfg.BasePath())
	}
	if cfg.Backend() != BackendSQLite {
		t.Fatalf("unexpected backend %q", cfg.Backend())
	}
	if cfg.LogLevel() != "warn" || cfg.LogFormat() != "text" {
		t.Fatalf("unexpected log defaults %q %q", cfg.LogLevel(), cfg.LogFormat())
	}
}
