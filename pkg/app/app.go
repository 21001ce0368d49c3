package app

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/listplan/pkg/logging"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
)

// Service provides the checklist and planner operations shared by the CLI
// and the TUI. It loads once, keeps the state in memory and saves after every
// successful change. A failed save is logged and the in-memory state stays
// authoritative for the rest of the session.
//
// States returned by a Service must be treated as read-only.
type Service struct {
	Gateway *store.Gateway
	Log     *log.Logger

	mu     sync.Mutex
	loaded bool
	st     *state.AppState
	days   state.Days
}

var ErrNoGateway = errors.New("app: no storage configured")

// New returns a Service over g.
func New(g *store.Gateway, logger *log.Logger) *Service {
	return &Service{Gateway: g, Log: logger}
}

func (s *Service) logger() *log.Logger {
	return logging.OrDiscard(s.Log)
}

// ensure loads the state on first use. Callers hold s.mu.
func (s *Service) ensure() error {
	if s.Gateway == nil {
		return ErrNoGateway
	}
	if !s.loaded {
		s.st = s.Gateway.Load()
		s.days = s.Gateway.LoadPlanner()
		s.loaded = true
	}
	return nil
}

// State returns the current state.
func (s *Service) State() (*state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s.st, nil
}

// Planner returns the planner day store.
func (s *Service) Planner() (state.Days, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s.days, nil
}

// Reload drops the cached state and reads storage again. Used after another
// process changed the slots.
func (s *Service) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	return s.ensure()
}

// Watch subscribes to storage change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Gateway == nil {
		return nil, ErrNoGateway
	}
	return store.Watch(ctx, s.Gateway.Storage())
}

// apply runs op against the current state and saves the result. A denied op
// returns the unchanged state and the denial.
func (s *Service) apply(name string, op func(*state.AppState) (*state.AppState, error)) (*state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensure(); err != nil {
		return nil, err
	}
	next, err := op(s.st)
	if err != nil {
		s.logger().Debug("operation denied", "op", name, "err", err)
		return s.st, err
	}
	s.st = next
	if err := s.Gateway.Save(next); err != nil {
		s.logger().Warn("state kept in memory only", "op", name, "err", err)
	}
	return next, nil
}

// SetActiveCategory routes item operations to id.
func (s *Service) SetActiveCategory(id string) (*state.AppState, error) {
	return s.apply("set-active", func(st *state.AppState) (*state.AppState, error) {
		return st.SetActiveCategory(id)
	})
}

// AddItem adds text to the front of a list.
func (s *Service) AddItem(categoryID, text string) (*state.AppState, error) {
	return s.apply("add-item", func(st *state.AppState) (*state.AppState, error) {
		return st.AddItem(categoryID, text)
	})
}

// ToggleItem flips an item's done flag.
func (s *Service) ToggleItem(categoryID, itemID string) (*state.AppState, error) {
	return s.apply("toggle-item", func(st *state.AppState) (*state.AppState, error) {
		return st.ToggleItem(categoryID, itemID)
	})
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(categoryID, itemID string) (*state.AppState, error) {
	return s.apply("delete-item", func(st *state.AppState) (*state.AppState, error) {
		return st.DeleteItem(categoryID, itemID)
	})
}

// ClearChecked removes the done items of a list.
func (s *Service) ClearChecked(categoryID string) (*state.AppState, error) {
	return s.apply("clear-checked", func(st *state.AppState) (*state.AppState, error) {
		return st.ClearChecked(categoryID)
	})
}

// MoveItemToFront moves an item to the top of its list.
func (s *Service) MoveItemToFront(categoryID, itemID string) (*state.AppState, error) {
	return s.apply("move-to-front", func(st *state.AppState) (*state.AppState, error) {
		return st.MoveItemToFront(categoryID, itemID)
	})
}

// CreateCategory appends a list and makes it active.
func (s *Service) CreateCategory(name string) (*state.AppState, error) {
	return s.apply("create-category", func(st *state.AppState) (*state.AppState, error) {
		return st.CreateCategory(name)
	})
}

// RenameCategory renames a list.
func (s *Service) RenameCategory(categoryID, name string) (*state.AppState, error) {
	return s.apply("rename-category", func(st *state.AppState) (*state.AppState, error) {
		return st.RenameCategory(categoryID, name)
	})
}

// DeleteCategory removes a list.
func (s *Service) DeleteCategory(categoryID string) (*state.AppState, error) {
	return s.apply("delete-category", func(st *state.AppState) (*state.AppState, error) {
		return st.DeleteCategory(categoryID)
	})
}

// SetPlannerDay merges patch into the day at key and returns the result.
func (s *Service) SetPlannerDay(key string, patch state.DayPatch) (state.PlannerDay, error) {
	return s.applyDays("set-day", key, func(d state.Days) (state.Days, error) {
		return d.Set(key, patch)
	})
}

// ToggleWorked flips the worked flag of the day at key.
func (s *Service) ToggleWorked(key string) (state.PlannerDay, error) {
	return s.applyDays("toggle-worked", key, func(d state.Days) (state.Days, error) {
		return d.ToggleWorked(key)
	})
}

func (s *Service) applyDays(name, key string, op func(state.Days) (state.Days, error)) (state.PlannerDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensure(); err != nil {
		return state.PlannerDay{}, err
	}
	next, err := op(s.days)
	if err != nil {
		s.logger().Debug("operation denied", "op", name, "key", key, "err", err)
		return state.PlannerDay{}, err
	}
	s.days = next
	if err := s.Gateway.SavePlanner(next); err != nil {
		s.logger().Warn("planner kept in memory only", "op", name, "err", err)
	}
	return next.Get(canonical(key)), nil
}
