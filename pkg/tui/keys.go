package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextList   key.Binding
	PrevList   key.Binding
	Toggle     key.Binding
	Add        key.Binding
	Delete     key.Binding
	Top        key.Binding
	Clear      key.Binding
	NewList    key.Binding
	Rename     key.Binding
	DeleteList key.Binding
	PrevWeek   key.Binding
	NextWeek   key.Binding
	ThisWeek   key.Binding
	EditNote   key.Binding
	Worked     key.Binding
	Help       key.Binding
	Quit       key.Binding

	planner bool
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextList:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		PrevList:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous list")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "done")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete item")),
		Top:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "move to top")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		NewList:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename list")),
		DeleteList: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete list")),
		PrevWeek:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous week")),
		NextWeek:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		ThisWeek:   key.NewBinding(key.WithKeys("."), key.WithHelp(".", "this week")),
		EditNote:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit note")),
		Worked:     key.NewBinding(key.WithKeys(" ", "w"), key.WithHelp("space", "worked")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.planner {
		return []key.Binding{k.PrevWeek, k.NextWeek, k.EditNote, k.Worked, k.NextList, k.Help, k.Quit}
	}
	return []key.Binding{k.Toggle, k.Add, k.Delete, k.NextList, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	if k.planner {
		return [][]key.Binding{
			{k.Up, k.Down, k.EditNote, k.Worked},
			{k.PrevWeek, k.NextWeek, k.ThisWeek},
			{k.NextList, k.PrevList, k.NewList},
			{k.Help, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Top},
		{k.Add, k.Delete, k.Clear},
		{k.NextList, k.PrevList, k.NewList, k.Rename, k.DeleteList},
		{k.Help, k.Quit},
	}
}
