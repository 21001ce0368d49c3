// Package store persists the checklist state and the planner day store in
// named slots and reads every historical slot the application has used.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Current slots.
const (
	SlotState   = "od_jegyzetek_v4"
	SlotPlanner = "od_jegyzetek_v4_planner"
)

// LegacySlots lists the slots of older releases, newest first.
var LegacySlots = []string{
	"od_jegyzetek_v3_2",
	"od_jegyzetek_v3",
	"od_jegyzetek_v2",
	"od_jegyzetek_v1",
	"od_jegyzetek",
}

// Slots returns every slot the gateway may read, current ones first.
func Slots() []string {
	return append([]string{SlotState, SlotPlanner}, LegacySlots...)
}

// ErrNotFound is returned by Storage.Read for an empty slot.
var ErrNotFound = errors.New("store: slot not found")

// Storage is a synchronous key/value store of raw slot contents.
type Storage interface {
	Read(slot string) ([]byte, error)
	Write(slot string, data []byte) error
}

// Backends.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Open creates the Storage selected by cfg. A nil cfg loads the config from
// the environment.
func Open(cfg Config) (Storage, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	base := cfg.BasePath()
	if base == "" {
		return nil, errors.New("store: base path unknown")
	}
	switch strings.ToLower(cfg.Backend()) {
	case "", BackendDiskv:
		return NewDiskv(base), nil
	case BackendSQLite:
		if err := os.MkdirAll(base, 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure base path: %w", err)
		}
		return OpenSQLite(filepath.Join(base, sqliteFile))
	default:
		return nil, fmt.Errorf("store: unknown storage backend %q", cfg.Backend())
	}
}

// Close releases s if it holds resources.
func Close(s Storage) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
