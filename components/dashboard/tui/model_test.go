package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-eventdash/components/dashboard"
)

// idleClock hands out tickers that never fire so tests control every tick.
type idleClock struct{}

func (idleClock) NewTicker(time.Duration) dashboard.Ticker { return idleTicker{} }

type idleTicker struct{}

func (idleTicker) C() <-chan time.Time { return nil }
func (idleTicker) Stop()               {}

type harness struct {
	service  *dashboard.Service
	session  *dashboard.Session
	model    Model
	unmounts int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	broadcast := dashboard.NewBroadcastHook()
	service := dashboard.NewService(dashboard.Options{RefreshHook: broadcast, Clock: idleClock{}})
	t.Cleanup(func() { service.Close(ctx) })

	session, err := service.Mount(ctx)
	require.NoError(t, err)
	events, cancel := broadcast.Subscribe(session.ID())
	t.Cleanup(cancel)

	h := &harness{service: service, session: session}
	h.model = NewModel(ctx, Options{
		Session: session,
		Events:  events,
		Unmount: func(ctx context.Context) error {
			h.unmounts++
			return service.Unmount(ctx, session.ID())
		},
	})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTogglesSidebarAndTheme(t *testing.T) {
	h := newHarness(t)

	h.send(runes("s"))
	assert.True(t, h.model.State().SidebarCollapsed)
	assert.True(t, h.session.Snapshot().SidebarCollapsed)

	h.send(runes("d"))
	h.send(runes("d"))
	assert.False(t, h.model.State().DarkMode)

	h.send(runes("s"))
	assert.Equal(t, dashboard.UIState{}, h.session.Snapshot())
}

func TestModelCarouselKeysWrap(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, h.model.State().CarouselIndex)

	h.send(tea.KeyMsg{Type: tea.KeyRight})
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, h.session.Snapshot().CarouselIndex)
}

func TestModelSelectAndCloseDetail(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, h.model.Cursor())
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	selected := h.model.State().Selected
	require.NotNil(t, selected)
	assert.Equal(t, "AI & ML Conference", selected.Name)
	assert.Contains(t, h.model.View(), "Additional event details and description would go here.")

	h.send(runes("s"))
	assert.False(t, h.session.Snapshot().SidebarCollapsed, "page keys are ignored while the modal is open")

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, h.model.State().Selected)
	assert.NotContains(t, h.model.View(), "Additional event details")
}

func TestModelCursorStaysInTable(t *testing.T) {
	h := newHarness(t)
	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, h.model.Cursor())
	for range 5 {
		h.send(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, h.model.Cursor())
}

func TestModelAppliesStateEvents(t *testing.T) {
	h := newHarness(t)
	cmd := h.model.Init()
	require.NotNil(t, cmd)

	h.session.Advance(context.Background())
	cmd = h.send(cmd())
	assert.Equal(t, 1, h.model.State().CarouselIndex)
	assert.NotNil(t, cmd, "model keeps listening after a state event")

	assert.False(t, isQuit(cmd))
}

func TestModelIgnoresStaleStateEvents(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.session.Advance(ctx)
	h.session.Advance(ctx)

	cmd := h.send(stateMsg{event: dashboard.StateEvent{
		SessionID: h.session.ID(),
		Reason:    dashboard.ReasonCarouselAuto,
		State:     dashboard.UIState{CarouselIndex: 1},
	}})
	assert.Equal(t, 2, h.model.State().CarouselIndex)
	assert.Equal(t, h.session.Snapshot(), h.model.State())
	assert.False(t, isQuit(cmd))
}

func TestModelQuitsOnUnmountEvent(t *testing.T) {
	h := newHarness(t)
	cmd := h.send(stateMsg{event: dashboard.StateEvent{Reason: dashboard.ReasonUnmount}})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 0, h.unmounts)
}

func TestModelQuitUnmountsSession(t *testing.T) {
	h := newHarness(t)
	cmd := h.send(runes("q"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 1, h.unmounts)
	assert.False(t, h.session.Mounted())
	assert.Empty(t, h.service.Sessions())
	assert.Empty(t, h.model.View())
}

func TestModelViewRendersRegions(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 160, Height: 60})
	view := h.model.View()

	for _, want := range []string{"EventDash", "156", "48", "2,845", "$28,450", "Event Statistics",
		"Tech Conference 2024 Registration Open", "Digital Marketing Summit", "Web Dev Workshop"} {
		assert.Contains(t, view, want)
	}
	assert.Less(t, strings.Index(view, "156"), strings.Index(view, "$28,450"))
	assert.Contains(t, view, "[light]")

	h.send(runes("d"))
	assert.Contains(t, h.model.View(), "[dark]")
}
