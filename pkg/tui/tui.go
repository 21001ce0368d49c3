// Package tui is the interactive terminal view of the lists and the planner.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/store"
	"tableflip.dev/listplan/pkg/week"
)

type mode int

const (
	modeBrowse mode = iota
	modeInput
	modeConfirm
)

type inputPurpose int

const (
	inputAddItem inputPurpose = iota
	inputNewList
	inputRename
	inputNote
)

type storageChangedMsg struct{ ev store.Event }

type watchClosedMsg struct{}

// Model is the bubbletea model of the app.
type Model struct {
	svc    *app.Service
	now    func() time.Time
	events <-chan store.Event

	st      *state.AppState
	days    state.Days
	cursor  int
	offset  int
	mode    mode
	purpose inputPurpose
	editKey string

	input  textinput.Model
	help   help.Model
	keys   keyMap
	theme  theme
	status string
	err    error
	width  int
	height int
}

// New builds a model over svc. events may be nil.
func New(svc *app.Service, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 48
	m := Model{
		svc:    svc,
		now:    time.Now,
		events: events,
		input:  ti,
		help:   help.New(),
		keys:   defaultKeys(),
		theme:  defaultTheme(),
	}
	m.refresh()
	return m
}

// Run shows the UI until the user quits or ctx is done.
func Run(ctx context.Context, svc *app.Service) error {
	events, err := svc.Watch(ctx)
	if err != nil {
		events = nil
	}
	p := tea.NewProgram(New(svc, events), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.events)
}

func waitForChange(events <-chan store.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return storageChangedMsg{ev: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case storageChangedMsg:
		if err := m.svc.Reload(); err != nil {
			m.err = err
		}
		m.refresh()
		return m, waitForChange(m.events)
	case watchClosedMsg:
		m.events = nil
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.handleInputKey(msg)
		case modeConfirm:
			return m.handleConfirmKey(msg), nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.onPlanner() {
			return m.handlePlannerKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m *Model) refresh() {
	st, err := m.svc.State()
	if err != nil {
		m.err = err
		return
	}
	days, err := m.svc.Planner()
	if err != nil {
		m.err = err
		return
	}
	m.st, m.days = st, days
	m.keys.planner = m.onPlanner()
	m.clampCursor()
}

func (m Model) onPlanner() bool {
	if m.st == nil {
		return false
	}
	c, ok := m.st.ActiveCategory()
	return ok && c.Locked
}

func (m Model) active() *state.Category {
	if m.st == nil {
		return nil
	}
	c, _ := m.st.ActiveCategory()
	return c
}

func (m *Model) clampCursor() {
	n := week.Length
	if !m.onPlanner() {
		n = 0
		if c := m.active(); c != nil {
			n = len(c.Items)
		}
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// apply stores the result of a state operation and reports denials.
func (m Model) apply(st *state.AppState, err error, done string) Model {
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.status = done
	m.st = st
	m.keys.planner = m.onPlanner()
	m.clampCursor()
	return m
}

func (m Model) cycleList(step int) Model {
	n := len(m.st.Categories)
	i := 0
	for j, c := range m.st.Categories {
		if c.ID == m.st.ActiveCategoryID {
			i = j
		}
	}
	next := m.st.Categories[((i+step)%n+n)%n]
	m.cursor = 0
	st, err := m.svc.SetActiveCategory(next.ID)
	return m.apply(st, err, "")
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.active()
	if c == nil {
		return m, nil
	}
	var current *state.Item
	if m.cursor < len(c.Items) {
		current = &c.Items[m.cursor]
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(c.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NextList):
		return m.cycleList(1), nil
	case key.Matches(msg, m.keys.PrevList):
		return m.cycleList(-1), nil
	case key.Matches(msg, m.keys.Toggle):
		if current != nil {
			st, err := m.svc.ToggleItem(c.ID, current.ID)
			return m.apply(st, err, ""), nil
		}
	case key.Matches(msg, m.keys.Delete):
		if current != nil {
			st, err := m.svc.DeleteItem(c.ID, current.ID)
			return m.apply(st, err, "deleted "+current.Text), nil
		}
	case key.Matches(msg, m.keys.Top):
		if current != nil {
			st, err := m.svc.MoveItemToFront(c.ID, current.ID)
			m = m.apply(st, err, "")
			if err == nil {
				m.cursor = 0
			}
			return m, nil
		}
	case key.Matches(msg, m.keys.Clear):
		st, err := m.svc.ClearChecked(c.ID)
		return m.apply(st, err, "cleared done items"), nil
	case key.Matches(msg, m.keys.Add):
		return m.startInput(inputAddItem, "", "")
	case key.Matches(msg, m.keys.NewList):
		return m.startInput(inputNewList, "", "")
	case key.Matches(msg, m.keys.Rename):
		return m.startInput(inputRename, c.Name, "")
	case key.Matches(msg, m.keys.DeleteList):
		m.mode = modeConfirm
	}
	return m, nil
}

func (m Model) handlePlannerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := week.Keys(week.MondayOfWeek(m.now(), m.offset))
	selected := keys[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < week.Length-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevWeek):
		m.offset--
	case key.Matches(msg, m.keys.NextWeek):
		m.offset++
	case key.Matches(msg, m.keys.ThisWeek):
		m.offset = 0
		m.cursor = (int(m.now().Weekday()) + 6) % 7
	case key.Matches(msg, m.keys.NextList):
		return m.cycleList(1), nil
	case key.Matches(msg, m.keys.PrevList):
		return m.cycleList(-1), nil
	case key.Matches(msg, m.keys.NewList):
		return m.startInput(inputNewList, "", "")
	case key.Matches(msg, m.keys.Worked):
		if _, err := m.svc.ToggleWorked(selected); err != nil {
			m.err = err
			return m, nil
		}
		m.refresh()
	case key.Matches(msg, m.keys.EditNote):
		return m.startInput(inputNote, m.days.Get(selected).Note, selected)
	}
	return m, nil
}

func (m Model) startInput(p inputPurpose, value, editKey string) (tea.Model, tea.Cmd) {
	m.mode = modeInput
	m.purpose = p
	m.editKey = editKey
	m.err = nil
	m.status = ""
	switch p {
	case inputAddItem:
		m.input.Placeholder = "new item"
	case inputNewList:
		m.input.Placeholder = "list name"
	case inputRename:
		m.input.Placeholder = "new name"
	case inputNote:
		m.input.Placeholder = "note for " + editKey
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBrowse
		m.input.Blur()
		return m.submit(m.input.Value()), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(value string) Model {
	switch m.purpose {
	case inputAddItem:
		c := m.active()
		if c == nil {
			return m
		}
		st, err := m.svc.AddItem(c.ID, value)
		m = m.apply(st, err, "")
		if err == nil {
			m.cursor = 0
		}
	case inputNewList:
		st, err := m.svc.CreateCategory(value)
		m = m.apply(st, err, "created "+strings.TrimSpace(value))
		m.cursor = 0
	case inputRename:
		c := m.active()
		if c == nil {
			return m
		}
		st, err := m.svc.RenameCategory(c.ID, value)
		m = m.apply(st, err, "renamed")
	case inputNote:
		note := value
		if _, err := m.svc.SetPlannerDay(m.editKey, state.DayPatch{Note: &note}); err != nil {
			m.err = err
			return m
		}
		m.refresh()
	}
	return m
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	m.mode = modeBrowse
	if msg.String() != "y" && msg.String() != "Y" {
		m.status = "kept"
		return m
	}
	c := m.active()
	if c == nil {
		return m
	}
	st, err := m.svc.DeleteCategory(c.ID)
	m = m.apply(st, err, "deleted "+c.Name)
	m.cursor = 0
	return m
}
