package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/listplan/pkg/app"
)

func (m Model) View() string {
	if m.st == nil {
		if m.err != nil {
			return m.theme.Error.Render(m.err.Error()) + "\n"
		}
		return "loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	if m.onPlanner() {
		b.WriteString(m.plannerView())
	} else {
		b.WriteString(m.listView())
	}
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) tabs() string {
	parts := make([]string, 0, len(m.st.Categories))
	for _, c := range m.st.Categories {
		style := m.theme.Tab
		if c.ID == m.st.ActiveCategoryID {
			style = m.theme.ActiveTab
		}
		parts = append(parts, style.Render(c.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) listView() string {
	c := m.active()
	if c == nil {
		return ""
	}
	if len(c.Items) == 0 {
		return m.theme.Empty.Render("  nothing here, press a to add") + "\n"
	}

	width := m.width - 8
	if width < 20 {
		width = 60
	}
	var b strings.Builder
	for i, it := range c.Items {
		pointer := "  "
		if i == m.cursor {
			pointer = m.theme.Cursor.Render("> ")
		}
		box := "[ ]"
		text := m.theme.Item
		if it.Done {
			box = "[x]"
			text = m.theme.Done
		}
		dot := lipgloss.NewStyle().Foreground(itemColor(it.ID, it.Done)).Render("●")
		fmt.Fprintf(&b, "%s%s %s %s\n", pointer, dot, box, text.Render(truncate.StringWithTail(it.Text, uint(width), "…")))
	}
	return b.String()
}

func (m Model) plannerView() string {
	v := app.BuildWeek(m.days, m.now(), m.offset)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(v.Label))
	b.WriteString(m.theme.Status.Render(fmt.Sprintf("  %s  (%d/7 worked)", v.Range, v.Worked)))
	b.WriteString("\n")

	cardWidth := 24
	if m.width > 0 {
		if w := (m.width - 2) / 4; w > cardWidth {
			cardWidth = w
		}
	}

	cards := make([]string, 0, len(v.Days))
	for i, d := range v.Days {
		color := dayColor(i, d.Today)
		border := m.theme.Card.BorderForeground(color).Width(cardWidth - 2)
		if i == m.cursor {
			border = border.BorderStyle(lipgloss.ThickBorder())
		}
		dot := "○"
		if d.Worked {
			dot = "●"
		}
		head := lipgloss.NewStyle().Foreground(color).Bold(true).Render(d.Label) + " " + dot
		note := strings.TrimSpace(d.Note)
		if note == "" {
			note = m.theme.Empty.Render("—")
		} else {
			note = m.theme.Note.Render(wordwrap.String(note, cardWidth-4))
		}
		cards = append(cards, border.Render(head+"\n"+note))
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, cards[:4]...),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[4:]...),
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	return b.String()
}

func (m Model) footer() string {
	var b strings.Builder
	switch m.mode {
	case modeInput:
		b.WriteString(m.theme.Prompt.Render("› "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.theme.Status.Render("enter to save, esc to cancel"))
		b.WriteString("\n")
		return b.String()
	case modeConfirm:
		name := ""
		if c := m.active(); c != nil {
			name = c.Name
		}
		b.WriteString(m.theme.Prompt.Render(fmt.Sprintf("delete %q and all its items? (y/N)", name)))
		b.WriteString("\n")
		return b.String()
	}
	switch {
	case m.err != nil:
		b.WriteString(m.theme.Error.Render(m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
