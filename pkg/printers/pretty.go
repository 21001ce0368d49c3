package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/palette"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

const idWidth = len("0b6d3f3e-8a55-4cf1-9d5b-2a7f0c1f3c11  ")

var spacing = strings.Repeat(" ", idWidth)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, open, done int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d open", open)
	if done > 0 {
		_, _ = c.Fprintf(pp.out(), ", %d done", done)
	}
	_, _ = c.Fprintln(pp.out())
}

// Category prints the items of one list.
func (pp *PrettyPrint) Category(c *state.Category) {
	open, done := 0, 0
	for _, it := range c.Items {
		if it.Done {
			done++
		} else {
			open++
		}
	}
	pp.TitleWithCount(c.Name, open, done)
	pp.Items(c.Items...)
}

// Items prints a checklist with a coloured marker per item.
func (pp *PrettyPrint) Items(items ...state.Item) {
	w := pp.out()
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, it := range items {
		if pp.ShowID {
			_, _ = y.Fprint(w, it.ID)
			if pad := idWidth - len(it.ID); pad > 0 {
				_, _ = y.Fprint(w, strings.Repeat(" ", pad))
			}
		}
		marker := palette.ForID(it.ID)
		box, text := "[ ]", color.New()
		if it.Done {
			box = "[x]"
			marker = palette.Muted(marker)
			text = color.New(color.Faint, color.CrossedOut)
		}
		_, _ = color.RGB(palette.RGB(marker)).Fprint(w, "●")
		_, _ = text.Fprintf(w, " %s %s\n", box, it.Text)
	}
	_, _ = fmt.Fprintln(w)
}

// Lists prints the list overview as a table.
func (pp *PrettyPrint) Lists(sum app.Summary) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint(""), bold.Sprint("ID"), bold.Sprint("List"), bold.Sprint("Open"), bold.Sprint("Done"))
	} else {
		tbl.AddRow(bold.Sprint(""), bold.Sprint("List"), bold.Sprint("Open"), bold.Sprint("Done"))
	}
	for _, l := range sum.Lists {
		mark := " "
		if l.Active {
			mark = "*"
		}
		if pp.ShowID {
			tbl.AddRow(mark, l.ID, l.Name, l.Open, l.Done)
		} else {
			tbl.AddRow(mark, l.Name, l.Open, l.Done)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Findings prints a storage inspection.
func (pp *PrettyPrint) Findings(findings []store.Finding) {
	bold := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Slot"), bold.Sprint("Status"), bold.Sprint("Shape"), bold.Sprint("Problems"))
	for _, f := range findings {
		var status string
		switch {
		case !f.Present && len(f.Problems) == 0:
			status = faint.Sprint("empty")
		case f.Present && f.Slot != store.SlotPlanner && !f.Usable:
			status = bad.Sprint("unusable")
		case f.Current:
			status = ok.Sprint("current")
		case f.Slot == store.SlotState || f.Slot == store.SlotPlanner:
			status = warn.Sprint("repairable")
		default:
			status = warn.Sprint("legacy")
		}
		tbl.AddRow(f.Slot, status, f.Shape, strings.Join(f.Problems, "\n"))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
