package state

import "strings"

// The operations below never modify their receiver. On success they return a
// new state that already satisfies every invariant; on denial they return the
// receiver itself together with one of the Err* denials.

// SetActiveCategory routes item operations to the category id.
func (s *AppState) SetActiveCategory(id string) (*AppState, error) {
	if s.categoryIndex(id) < 0 {
		return s, ErrCategoryNotFound
	}
	out := s.Clone()
	out.ActiveCategoryID = id
	return out, nil
}

// AddItem inserts a new item at the front of a list.
func (s *AppState) AddItem(categoryID, text string) (*AppState, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, ErrBlankText
	}
	out, c, err := s.editList(categoryID)
	if err != nil {
		return s, err
	}
	it := Item{ID: newID(), Text: text, CreatedAt: now().UnixMilli()}
	c.Items = append([]Item{it}, c.Items...)
	return out, nil
}

// ToggleItem flips the done flag of an item.
func (s *AppState) ToggleItem(categoryID, itemID string) (*AppState, error) {
	out, c, err := s.editList(categoryID)
	if err != nil {
		return s, err
	}
	i := itemIndex(c.Items, itemID)
	if i < 0 {
		return s, ErrItemNotFound
	}
	c.Items[i].Done = !c.Items[i].Done
	return out, nil
}

// DeleteItem removes an item.
func (s *AppState) DeleteItem(categoryID, itemID string) (*AppState, error) {
	out, c, err := s.editList(categoryID)
	if err != nil {
		return s, err
	}
	i := itemIndex(c.Items, itemID)
	if i < 0 {
		return s, ErrItemNotFound
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return out, nil
}

// ClearChecked removes every done item of a list.
func (s *AppState) ClearChecked(categoryID string) (*AppState, error) {
	out, c, err := s.editList(categoryID)
	if err != nil {
		return s, err
	}
	kept := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if !it.Done {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	return out, nil
}

// MoveItemToFront relocates an item to index 0.
func (s *AppState) MoveItemToFront(categoryID, itemID string) (*AppState, error) {
	out, c, err := s.editList(categoryID)
	if err != nil {
		return s, err
	}
	i := itemIndex(c.Items, itemID)
	switch {
	case i < 0:
		return s, ErrItemNotFound
	case i == 0:
		return out, nil
	}
	it := c.Items[i]
	copy(c.Items[1:i+1], c.Items[:i])
	c.Items[0] = it
	return out, nil
}

// CreateCategory appends a new list and makes it active.
func (s *AppState) CreateCategory(name string) (*AppState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrBlankName
	}
	out := s.Clone()
	c := Category{ID: newID(), Name: name, Items: []Item{}}
	out.Categories = append(out.Categories, c)
	out.ActiveCategoryID = c.ID
	return out, nil
}

// RenameCategory changes the name of a list.
func (s *AppState) RenameCategory(categoryID, name string) (*AppState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrBlankName
	}
	out, c, err := s.editList(categoryID)
	if err != nil {
		return s, err
	}
	c.Name = name
	return out, nil
}

// DeleteCategory removes a list. The planner alone is not a valid remainder,
// so the last list cannot be deleted. The active category moves to the first
// remaining list.
func (s *AppState) DeleteCategory(categoryID string) (*AppState, error) {
	i := s.categoryIndex(categoryID)
	switch {
	case i < 0:
		return s, ErrCategoryNotFound
	case s.Categories[i].Locked:
		return s, ErrLocked
	case len(s.Lists()) <= 1:
		return s, ErrLastCategory
	}
	out := s.Clone()
	out.Categories = append(out.Categories[:i], out.Categories[i+1:]...)
	out.ActiveCategoryID = out.firstListID()
	return out, nil
}

// editList clones s and returns the clone's copy of a non-locked category.
func (s *AppState) editList(categoryID string) (*AppState, *Category, error) {
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return nil, nil, ErrCategoryNotFound
	}
	if s.Categories[i].Locked {
		return nil, nil, ErrLocked
	}
	out := s.Clone()
	return out, &out.Categories[i], nil
}

func itemIndex(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
