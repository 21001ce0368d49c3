// Package doctor provides the runner logic for inspecting stored slots.
package doctor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/listplan/pkg/printers"
	"tableflip.dev/listplan/pkg/store"
)

// Doctor reports what every slot holds and whether it matches the current
// schema. It never writes.
type Doctor struct {
	JSON    bool
	Storage store.Storage
	Out     io.Writer
}

func (n *Doctor) Do() error {
	if n.Storage == nil {
		return errors.New("can not inspect, no storage")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	findings := store.Inspect(n.Storage)
	if n.JSON {
		b, err := json.Marshal(findings)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Findings(findings)
	return nil
}
