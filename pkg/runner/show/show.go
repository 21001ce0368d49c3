// Package show provides the runner logic for displaying lists.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/printers"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
)

// Show prints one list, or every list.
type Show struct {
	ShowID   bool
	JSON     bool
	All      bool
	Category string
	// Follow keeps printing whenever the storage changes.
	Follow  bool
	Service *app.Service
	Out     io.Writer
}

func (n *Show) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

// Do prints once and, when following, again after every storage change until
// ctx is done.
func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	if err := n.render(); err != nil {
		return err
	}
	if !n.Follow {
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventSlotChanged && ev.Slot != store.SlotState {
				continue
			}
			if err := n.Service.Reload(); err != nil {
				return err
			}
			if err := n.render(); err != nil {
				return err
			}
		}
	}
}

func (n *Show) render() error {
	st, err := n.Service.State()
	if err != nil {
		return err
	}
	cats, err := n.selected(st)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.Marshal(cats)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.out(), string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.out()}
	pp.NewLine()
	for i := range cats {
		pp.Category(&cats[i])
	}
	return nil
}

func (n *Show) selected(st *state.AppState) ([]state.Category, error) {
	if n.All {
		return st.Lists(), nil
	}
	c, err := app.ResolveCategory(st, n.Category)
	if err != nil {
		return nil, err
	}
	if c.Locked {
		return nil, fmt.Errorf("%s is the planner, use `listplan planner week`", c.Name)
	}
	return []state.Category{*c}, nil
}
