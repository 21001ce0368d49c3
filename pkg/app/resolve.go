package app

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/listplan/pkg/state"
)

// ResolveCategory finds a category by id or, failing that, by name. An
// empty ref selects the active category.
func ResolveCategory(st *state.AppState, ref string) (*state.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		if c, ok := st.ActiveCategory(); ok {
			return c, nil
		}
		return nil, state.ErrCategoryNotFound
	}
	if c, ok := st.Category(ref); ok {
		return c, nil
	}
	var found *state.Category
	for i := range st.Categories {
		if strings.EqualFold(st.Categories[i].Name, ref) {
			if found != nil {
				return nil, fmt.Errorf("app: %q names more than one list, use the id", ref)
			}
			found = &st.Categories[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", state.ErrCategoryNotFound, ref)
	}
	return found, nil
}

// ResolveItem finds an item by id or by its 1-based position.
func ResolveItem(c *state.Category, ref string) (*state.Item, error) {
	ref = strings.TrimSpace(ref)
	for i := range c.Items {
		if c.Items[i].ID == ref {
			return &c.Items[i], nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(c.Items) {
		return &c.Items[n-1], nil
	}
	return nil, fmt.Errorf("%w: %q in %s", state.ErrItemNotFound, ref, c.Name)
}
