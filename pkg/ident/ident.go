// Package ident hands out identifiers for categories and items.
package ident

import "github.com/google/uuid"

// New returns a fresh random identifier. Ids are never derived from a
// counter, so they stay unique across restarts of the program.
func New() string {
	return uuid.NewString()
}
