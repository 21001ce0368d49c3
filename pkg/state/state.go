// Package state holds the checklist and planner data model, the normalizer
// that turns any persisted document into a valid AppState, and the pure
// operations that change it.
package state

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/listplan/pkg/ident"
	"tableflip.dev/listplan/pkg/legacy"
)

const (
	// PlannerID is the reserved id of the locked planner category.
	PlannerID = legacy.PlannerID
	// PlannerName is the canonical label of the planner category.
	PlannerName = "_Tervező"
	// DefaultCategoryName names the example list of a fresh state.
	DefaultCategoryName = "DM"
	// FallbackName replaces blank category names.
	FallbackName = "Névtelen"
)

// Denials returned by operations. A denied operation leaves state unchanged.
var (
	ErrCategoryNotFound = errors.New("state: category not found")
	ErrItemNotFound     = errors.New("state: item not found")
	ErrLocked           = errors.New("state: category is locked")
	ErrBlankText        = errors.New("state: item text is blank")
	ErrBlankName        = errors.New("state: category name is blank")
	ErrLastCategory     = errors.New("state: cannot delete the last category")
	ErrInvalidDate      = errors.New("state: invalid date key")
)

// ErrUnusable is returned when a persisted value cannot be normalized.
var ErrUnusable = errors.New("state: unusable document")

// Test seams.
var (
	newID = ident.New
	now   = time.Now
)

// Item is one checklist entry.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
	// CreatedAt is milliseconds since the Unix epoch.
	CreatedAt int64 `json:"createdAt"`
}

// Category is a named, ordered list of items.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Locked bool   `json:"locked"`
	Items  []Item `json:"items"`
}

// AppState is the root aggregate. The locked planner category is always
// first and ActiveCategoryID always names an existing category.
type AppState struct {
	ActiveCategoryID string     `json:"activeCategoryId"`
	Categories       []Category `json:"categories"`
}

// Default builds the state of a first run.
func Default() *AppState {
	return Normalizer{}.Default()
}

// Default builds the state of a first run using n's id source.
func (n Normalizer) Default() *AppState {
	cat := Category{ID: n.newID()(), Name: DefaultCategoryName, Items: []Item{}}
	return &AppState{
		ActiveCategoryID: cat.ID,
		Categories:       []Category{plannerCategory(), cat},
	}
}

func plannerCategory() Category {
	return Category{ID: PlannerID, Name: PlannerName, Locked: true, Items: []Item{}}
}

// Clone deep-copies s.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		ActiveCategoryID: s.ActiveCategoryID,
		Categories:       make([]Category, len(s.Categories)),
	}
	for i, c := range s.Categories {
		c.Items = append(make([]Item, 0, len(c.Items)), c.Items...)
		out.Categories[i] = c
	}
	return out
}

// Category finds a category by id.
func (s *AppState) Category(id string) (*Category, bool) {
	i := s.categoryIndex(id)
	if i < 0 {
		return nil, false
	}
	return &s.Categories[i], true
}

// ActiveCategory returns the category named by ActiveCategoryID.
func (s *AppState) ActiveCategory() (*Category, bool) {
	return s.Category(s.ActiveCategoryID)
}

// Planner returns the locked planner category.
func (s *AppState) Planner() *Category {
	p, ok := s.Category(PlannerID)
	if !ok {
		return nil
	}
	return p
}

// Lists returns the non-locked categories.
func (s *AppState) Lists() []Category {
	out := make([]Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		if !c.Locked {
			out = append(out, c)
		}
	}
	return out
}

func (s *AppState) categoryIndex(id string) int {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppState) firstListID() string {
	for _, c := range s.Categories {
		if !c.Locked {
			return c.ID
		}
	}
	return PlannerID
}

// Validate reports the first broken invariant, if any.
func (s *AppState) Validate() error {
	if s == nil || len(s.Categories) == 0 {
		return errors.New("state: no categories")
	}
	first := s.Categories[0]
	if first.ID != PlannerID || !first.Locked || first.Name != PlannerName {
		return errors.New("state: planner category is not first")
	}
	categoryIDs := make(map[string]struct{}, len(s.Categories))
	itemIDs := make(map[string]struct{})
	for i, c := range s.Categories {
		if c.Locked && i != 0 {
			return fmt.Errorf("state: category %q is locked", c.ID)
		}
		if c.ID == "" {
			return fmt.Errorf("state: category %d has no id", i)
		}
		if _, dup := categoryIDs[c.ID]; dup {
			return fmt.Errorf("state: duplicate category id %q", c.ID)
		}
		categoryIDs[c.ID] = struct{}{}
		if c.Name == "" {
			return fmt.Errorf("state: category %q has no name", c.ID)
		}
		if c.Items == nil {
			return fmt.Errorf("state: category %q has nil items", c.ID)
		}
		if c.Locked && len(c.Items) > 0 {
			return errors.New("state: planner category holds items")
		}
		for _, it := range c.Items {
			if it.ID == "" || it.Text == "" {
				return fmt.Errorf("state: invalid item in %q", c.ID)
			}
			if _, dup := itemIDs[it.ID]; dup {
				return fmt.Errorf("state: duplicate item id %q", it.ID)
			}
			itemIDs[it.ID] = struct{}{}
		}
	}
	if _, ok := categoryIDs[s.ActiveCategoryID]; !ok {
		return fmt.Errorf("state: active category %q does not exist", s.ActiveCategoryID)
	}
	return nil
}
