package state

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/listplan/pkg/legacy"
)

// Normalizer turns decoded JSON of any historical layout into an AppState.
// The zero value uses the wall clock and random ids.
type Normalizer struct {
	Now   func() time.Time
	NewID func() string
}

// Normalize runs the default normalizer.
func Normalize(raw any) (*AppState, error) {
	return Normalizer{}.Normalize(raw)
}

// Normalize returns a state satisfying every AppState invariant, or an error
// wrapping ErrUnusable. raw is never modified.
func (n Normalizer) Normalize(raw any) (*AppState, error) {
	s, _, err := n.NormalizeDocument(raw)
	return s, err
}

// NormalizeDocument is Normalize that also returns the planner days found
// inside the document.
func (n Normalizer) NormalizeDocument(raw any) (*AppState, Days, error) {
	switch raw.(type) {
	case map[string]any, []any:
	default:
		return nil, nil, fmt.Errorf("%w: not an object or array (%T)", ErrUnusable, raw)
	}
	doc, ok := legacy.Adapt(raw, n.newID())
	if !ok {
		return nil, nil, fmt.Errorf("%w: no categories or topics", ErrUnusable)
	}
	s := n.fromDocument(doc)
	return s, daysFrom(doc.Planner), nil
}

func (n Normalizer) fromDocument(doc *legacy.Document) *AppState {
	gen := n.newID()
	createdAt := n.clock()().UnixMilli()

	categoryIDs := make(map[string]struct{}, len(doc.Categories))
	itemIDs := make(map[string]struct{})
	s := &AppState{Categories: make([]Category, 0, len(doc.Categories)+1)}

	for _, dc := range doc.Categories {
		c := Category{
			ID:     unique(dc.ID, categoryIDs, gen),
			Name:   strings.TrimSpace(dc.Name),
			Locked: dc.Locked,
			Items:  make([]Item, 0, len(dc.Items)),
		}
		if c.Name == "" {
			c.Name = FallbackName
		}
		for _, di := range dc.Items {
			text := strings.TrimSpace(di.Text)
			if text == "" {
				continue
			}
			it := Item{
				ID:        unique(di.ID, itemIDs, gen),
				Text:      text,
				Done:      di.Done,
				CreatedAt: createdAt,
			}
			if di.HasCreatedAt {
				it.CreatedAt = int64(di.CreatedAt)
			}
			c.Items = append(c.Items, it)
		}
		s.Categories = append(s.Categories, c)
	}

	active := doc.ActiveID
	plannerAt := s.categoryIndex(PlannerID)
	if plannerAt < 0 {
		// An older locked pseudo-category without the reserved id becomes
		// the planner.
		for i, c := range s.Categories {
			if c.Locked {
				if active == c.ID {
					active = PlannerID
				}
				s.Categories[i].ID = PlannerID
				plannerAt = i
				break
			}
		}
	}

	ordered := make([]Category, 0, len(s.Categories)+1)
	ordered = append(ordered, plannerCategory())
	for i, c := range s.Categories {
		if i == plannerAt {
			continue
		}
		c.Locked = false
		ordered = append(ordered, c)
	}
	s.Categories = ordered

	if s.categoryIndex(active) < 0 {
		active = s.firstListID()
	}
	s.ActiveCategoryID = active
	return s
}

// NormalizeDays reads a standalone planner store.
func NormalizeDays(raw any) Days {
	return daysFrom(legacy.PlannerDays(raw))
}

func daysFrom(src map[string]legacy.Day) Days {
	out := make(Days, len(src))
	for k, d := range src {
		out[k] = PlannerDay{Note: d.Note, Worked: d.Worked}
	}
	return out
}

// unique returns id unless it is blank or taken, in which case a fresh id is
// drawn. The result is recorded in seen.
func unique(id string, seen map[string]struct{}, gen func() string) string {
	for {
		if _, taken := seen[id]; id != "" && !taken {
			break
		}
		id = gen()
	}
	seen[id] = struct{}{}
	return id
}

func (n Normalizer) newID() func() string {
	if n.NewID != nil {
		return n.NewID
	}
	return newID
}

func (n Normalizer) clock() func() time.Time {
	if n.Now != nil {
		return n.Now
	}
	return now
}
