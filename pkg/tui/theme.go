package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/listplan/pkg/palette"
)

type theme struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Item      lipgloss.Style
	Done      lipgloss.Style
	Cursor    lipgloss.Style
	Empty     lipgloss.Style
	Card      lipgloss.Style
	Note      lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		Title:     lipgloss.NewStyle().Bold(true).Underline(true),
		Item:      lipgloss.NewStyle(),
		Done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Note:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	}
}

func hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// dayColor is the card colour of a weekday, lighter for today.
func dayColor(i int, today bool) lipgloss.Color {
	c := palette.Weekday(i)
	if today {
		c = palette.Highlight(c)
	}
	return hex(c)
}

func itemColor(id string, done bool) lipgloss.Color {
	c := palette.ForID(id)
	if done {
		c = palette.Muted(c)
	}
	return hex(c)
}
