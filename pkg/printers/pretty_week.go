package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/palette"
)

const noteWidth = 48

// Week prints the planner week as one card per day.
func (pp *PrettyPrint) Week(v app.WeekView) {
	w := pp.out()
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(w, v.Label)
	_, _ = c.Fprintf(w, "  %s  (%d/7 worked)\n\n", v.Range, v.Worked)

	for i, d := range v.Days {
		base := palette.Weekday(i)
		if d.Today {
			base = palette.Highlight(base)
		}
		head := color.RGB(palette.RGB(base)).Add(color.Bold)
		if d.Today {
			head = head.Add(color.Underline)
		}
		dot := "○"
		if d.Worked {
			dot = "●"
		}
		_, _ = head.Fprintf(w, "%-6s", d.Label)
		_, _ = fmt.Fprintf(w, " %s  %s\n", dot, c.Sprint(d.Key))

		note := strings.TrimSpace(d.Note)
		if note == "" {
			continue
		}
		_, _ = fmt.Fprintln(w, indent.String(wordwrap.String(note, noteWidth), 9))
	}
	_, _ = fmt.Fprintln(w)
}
