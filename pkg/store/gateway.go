package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/charmbracelet/log"

	"tableflip.dev/listplan/pkg/logging"
	"tableflip.dev/listplan/pkg/state"
)

// Gateway loads and saves the application state on top of a Storage. Load
// never fails: unreadable slots fall through to older slots and finally to a
// fresh default state.
type Gateway struct {
	storage    Storage
	log        *log.Logger
	normalizer state.Normalizer
}

// NewGateway wraps s. A nil logger discards output.
func NewGateway(s Storage, logger *log.Logger) *Gateway {
	return &Gateway{storage: s, log: logging.OrDiscard(logger)}
}

// WithNormalizer returns a copy of g that normalizes with n.
func (g *Gateway) WithNormalizer(n state.Normalizer) *Gateway {
	out := *g
	out.normalizer = n
	return &out
}

// Storage returns the underlying storage.
func (g *Gateway) Storage() Storage {
	return g.storage
}

// Load returns the current state. When the current slot needed repair, or
// only a legacy slot holds usable data, the normalized result is written to
// the current slot so generated ids stay stable across loads. When nothing is
// usable a default state is written and returned. Planner days embedded in
// the loaded document are merged into the planner slot.
func (g *Gateway) Load() *state.AppState {
	if s, days, repaired, ok := g.loadSlot(SlotState); ok {
		if repaired {
			g.log.Info("repaired current slot", "slot", SlotState)
			_ = g.Save(s)
		}
		g.mergeDays(days)
		return s
	}
	for _, slot := range LegacySlots {
		s, days, _, ok := g.loadSlot(slot)
		if !ok {
			continue
		}
		g.log.Info("migrated legacy slot", "slot", slot, "categories", len(s.Categories))
		g.mergeDays(days)
		_ = g.Save(s)
		return s
	}
	g.log.Info("no usable state found, starting fresh")
	s := g.normalizer.Default()
	_ = g.Save(s)
	return s
}

// Save writes s to the current slot. Failures are logged and returned; the
// caller's in-memory copy stays authoritative.
func (g *Gateway) Save(s *state.AppState) error {
	return g.write(SlotState, s)
}

// LoadPlanner returns the planner day store. A missing or unreadable slot
// reads as an empty store.
func (g *Gateway) LoadPlanner() state.Days {
	raw, ok := g.readJSON(SlotPlanner)
	if !ok {
		return state.Days{}
	}
	return state.NormalizeDays(raw)
}

// SavePlanner writes the planner day store.
func (g *Gateway) SavePlanner(d state.Days) error {
	if d == nil {
		d = state.Days{}
	}
	return g.write(SlotPlanner, d)
}

// loadSlot normalizes slot. repaired reports whether the normalized state
// differs from what is stored.
func (g *Gateway) loadSlot(slot string) (s *state.AppState, days state.Days, repaired, ok bool) {
	raw, ok := g.readJSON(slot)
	if !ok {
		return nil, nil, false, false
	}
	s, days, err := g.normalizer.NormalizeDocument(raw)
	if err != nil {
		g.log.Debug("slot is not usable", "slot", slot, "err", err)
		return nil, nil, false, false
	}
	return s, days, !sameDocument(raw, s), true
}

// sameDocument reports whether s encodes to the decoded JSON value raw.
func sameDocument(raw any, s *state.AppState) bool {
	data, err := json.Marshal(s)
	if err != nil {
		return false
	}
	var encoded any
	if err := json.Unmarshal(data, &encoded); err != nil {
		return false
	}
	return reflect.DeepEqual(raw, encoded)
}

func (g *Gateway) readJSON(slot string) (any, bool) {
	data, err := g.storage.Read(slot)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.log.Warn("read failed", "slot", slot, "err", err)
		}
		return nil, false
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		g.log.Debug("slot is not valid JSON", "slot", slot, "err", err)
		return nil, false
	}
	return raw, true
}

// mergeDays adds days absent from the planner slot and saves the result if
// anything was added.
func (g *Gateway) mergeDays(days state.Days) {
	if len(days) == 0 {
		return
	}
	merged, changed := g.LoadPlanner().Fill(days)
	if !changed {
		return
	}
	g.log.Info("merged planner days from state document", "days", len(days))
	_ = g.SavePlanner(merged)
}

func (g *Gateway) write(slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		g.log.Error("encode failed", "slot", slot, "err", err)
		return fmt.Errorf("store: encode %s: %w", slot, err)
	}
	if err := g.storage.Write(slot, data); err != nil {
		g.log.Error("write failed", "slot", slot, "err", err)
		return fmt.Errorf("store: write %s: %w", slot, err)
	}
	return nil
}
