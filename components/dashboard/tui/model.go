// Package tui renders a dashboard session in the terminal. The model drives
// the same Session the HTTP transports use; carousel ticks arrive as state
// events from the session's own auto advancer.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-eventdash/components/dashboard"
)

// Options configures the terminal model.
type Options struct {
	Session *dashboard.Session
	// Events is the session's subscription on the broadcast hook.
	Events <-chan dashboard.StateEvent
	// Unmount is called once when the user quits.
	Unmount func(ctx context.Context) error
	Keys    KeyMap
	Theme   dashboard.ThemeOptions
}

// Model is the bubbletea model of one dashboard session.
type Model struct {
	ctx     context.Context
	session *dashboard.Session
	events  <-chan dashboard.StateEvent
	unmount func(ctx context.Context) error
	keys    KeyMap
	themes  dashboard.ThemeOptions

	state  dashboard.UIState
	cursor int
	err    error
	width  int
	height int
	done   bool
}

type stateMsg struct {
	event dashboard.StateEvent
}

// NewModel builds the model from a mounted session.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap
	}
	return Model{
		ctx:     ctx,
		session: opts.Session,
		events:  opts.Events,
		unmount: opts.Unmount,
		keys:    keys,
		themes:  opts.Theme,
		state:   opts.Session.Snapshot(),
	}
}

// Init implements tea.Model. Starts listening for state events when a
// subscription is available.
func (m Model) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return listenForState(m.events)
}

func listenForState(events <-chan dashboard.StateEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return stateMsg{event: event}
	}
}

// State returns the last state the model rendered.
func (m Model) State() dashboard.UIState {
	return m.state
}

// Cursor returns the highlighted table row.
func (m Model) Cursor() int {
	return m.cursor
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case stateMsg:
		if msg.event.Reason == dashboard.ReasonUnmount {
			m.state = msg.event.State
			m.done = true
			return m, tea.Quit
		}
		// Events can arrive out of order; the session snapshot is authoritative.
		m.state = m.session.Snapshot()
		return m, listenForState(m.events)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	rows := m.session.Data().Events
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Close):
		m.state = m.session.CloseDetail(m.ctx)

	case m.state.Selected != nil:
		// Only close and quit reach the page while the modal is open.

	case key.Matches(msg, m.keys.Sidebar):
		m.state = m.session.ToggleSidebar(m.ctx)

	case key.Matches(msg, m.keys.Theme):
		m.state = m.session.ToggleDarkMode(m.ctx)

	case key.Matches(msg, m.keys.Prev):
		m.state = m.session.Retreat(m.ctx)

	case key.Matches(msg, m.keys.Next):
		m.state = m.session.Advance(m.ctx)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(rows) {
			state, err := m.session.SelectEvent(m.ctx, rows[m.cursor].ID)
			if err != nil {
				m.err = err
				break
			}
			m.state = state
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.done && m.unmount != nil {
		if err := m.unmount(m.ctx); err != nil {
			m.err = err
		}
	}
	m.done = true
	return m, tea.Quit
}
