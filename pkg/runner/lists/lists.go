// Package lists provides the runner logic for list and item changes.
package lists

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/printers"
	"tableflip.dev/listplan/pkg/state"
)

// Lists changes lists and their items and prints the affected list.
type Lists struct {
	ShowID  bool
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Lists) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Lists) state() (*state.AppState, error) {
	if n.Service == nil {
		return nil, errors.New("can not change lists, no service")
	}
	return n.Service.State()
}

// Overview prints every list with its counts.
func (n *Lists) Overview() error {
	sum, err := n.summary()
	if err != nil {
		return err
	}
	if n.JSON {
		return n.printJSON(sum)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.out()}
	pp.Lists(sum)
	return nil
}

func (n *Lists) summary() (app.Summary, error) {
	if n.Service == nil {
		return app.Summary{}, errors.New("can not list, no service")
	}
	return n.Service.Summary()
}

// Create adds a list and makes it active.
func (n *Lists) Create(name string) error {
	if _, err := n.state(); err != nil {
		return err
	}
	st, err := n.Service.CreateCategory(name)
	if err != nil {
		return err
	}
	return n.printCategory(st, st.ActiveCategoryID)
}

// Rename renames the list named by ref.
func (n *Lists) Rename(ref, name string) error {
	c, err := n.category(ref)
	if err != nil {
		return err
	}
	st, err := n.Service.RenameCategory(c.ID, name)
	if err != nil {
		return err
	}
	return n.printCategory(st, c.ID)
}

// Delete removes the list named by ref.
func (n *Lists) Delete(ref string) error {
	c, err := n.category(ref)
	if err != nil {
		return err
	}
	if _, err := n.Service.DeleteCategory(c.ID); err != nil {
		return err
	}
	return n.Overview()
}

// Use makes the list named by ref active.
func (n *Lists) Use(ref string) error {
	c, err := n.category(ref)
	if err != nil {
		return err
	}
	st, err := n.Service.SetActiveCategory(c.ID)
	if err != nil {
		return err
	}
	if c.Locked {
		return n.Overview()
	}
	return n.printCategory(st, c.ID)
}

// Add puts text at the top of the list named by ref.
func (n *Lists) Add(ref, text string) error {
	c, err := n.category(ref)
	if err != nil {
		return err
	}
	st, err := n.Service.AddItem(c.ID, text)
	if err != nil {
		return err
	}
	return n.printCategory(st, c.ID)
}

// Toggle flips the done flag of an item.
func (n *Lists) Toggle(ref, item string) error {
	return n.onItem(ref, item, n.Service.ToggleItem)
}

// Remove deletes an item.
func (n *Lists) Remove(ref, item string) error {
	return n.onItem(ref, item, n.Service.DeleteItem)
}

// Top moves an item to the top of its list.
func (n *Lists) Top(ref, item string) error {
	return n.onItem(ref, item, n.Service.MoveItemToFront)
}

// Clear removes the done items of a list.
func (n *Lists) Clear(ref string) error {
	c, err := n.category(ref)
	if err != nil {
		return err
	}
	st, err := n.Service.ClearChecked(c.ID)
	if err != nil {
		return err
	}
	return n.printCategory(st, c.ID)
}

func (n *Lists) onItem(ref, item string, op func(categoryID, itemID string) (*state.AppState, error)) error {
	c, err := n.category(ref)
	if err != nil {
		return err
	}
	it, err := app.ResolveItem(c, item)
	if err != nil {
		return err
	}
	st, err := op(c.ID, it.ID)
	if err != nil {
		return err
	}
	return n.printCategory(st, c.ID)
}

func (n *Lists) category(ref string) (*state.Category, error) {
	st, err := n.state()
	if err != nil {
		return nil, err
	}
	return app.ResolveCategory(st, ref)
}

func (n *Lists) printCategory(st *state.AppState, id string) error {
	c, ok := st.Category(id)
	if !ok {
		return fmt.Errorf("%w: %s", state.ErrCategoryNotFound, id)
	}
	if n.JSON {
		return n.printJSON(c)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.out()}
	pp.NewLine()
	pp.Category(c)
	return nil
}

func (n *Lists) printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(n.out(), string(b))
	return nil
}
