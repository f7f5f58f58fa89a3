package dashboard

import (
	"context"
	"sync"
	"time"
)

// Session is one mounted dashboard. It exclusively owns its UIState; every
// mutation goes through a Session method and readers get copies.
type Session struct {
	id        string
	data      DashboardData
	hook      RefreshHook
	telemetry Telemetry
	now       func() time.Time
	auto      *AutoAdvancer

	mu       sync.Mutex
	state    UIState
	lastSeen time.Time
	mounted  bool
}

type sessionConfig struct {
	id        string
	data      DashboardData
	hook      RefreshHook
	telemetry Telemetry
	clock     Clock
	interval  time.Duration
	now       func() time.Time
}

func newSession(cfg sessionConfig) *Session {
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.hook == nil {
		cfg.hook = noopRefreshHook{}
	}
	s := &Session{
		id:        cfg.id,
		data:      cfg.data,
		hook:      cfg.hook,
		telemetry: normalizeTelemetry(cfg.telemetry),
		now:       cfg.now,
		lastSeen:  cfg.now(),
	}
	s.auto = NewAutoAdvancer(cfg.clock, cfg.interval, s.autoAdvance)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Data returns the literal datasets rendered by this session.
func (s *Session) Data() DashboardData {
	return s.data
}

// CarouselInterval reports the auto-advance period.
func (s *Session) CarouselInterval() time.Duration {
	return s.auto.Interval()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Mounted reports whether the carousel timer is held by this session.
func (s *Session) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// LastSeen is the time of the last user interaction.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// ToggleSidebar flips the collapsed flag of the navigation region.
func (s *Session) ToggleSidebar(ctx context.Context) UIState {
	state := s.mutate(true, func(st *UIState) { st.SidebarCollapsed = !st.SidebarCollapsed })
	s.emit(ctx, ReasonSidebar, state, map[string]any{"collapsed": state.SidebarCollapsed})
	return state
}

// ToggleDarkMode flips the dark mode flag. The page theme is derived from it.
func (s *Session) ToggleDarkMode(ctx context.Context) UIState {
	state := s.mutate(true, func(st *UIState) { st.DarkMode = !st.DarkMode })
	s.emit(ctx, ReasonTheme, state, map[string]any{"dark_mode": state.DarkMode})
	return state
}

// Advance moves the carousel forward. It never touches the auto-advance schedule.
func (s *Session) Advance(ctx context.Context) UIState {
	count := len(s.data.News)
	state := s.mutate(true, func(st *UIState) { st.CarouselIndex = NextIndex(st.CarouselIndex, count) })
	s.emit(ctx, ReasonCarouselNext, state, map[string]any{"index": state.CarouselIndex, "source": "manual"})
	return state
}

// Retreat moves the carousel back. It never touches the auto-advance schedule.
func (s *Session) Retreat(ctx context.Context) UIState {
	count := len(s.data.News)
	state := s.mutate(true, func(st *UIState) { st.CarouselIndex = PrevIndex(st.CarouselIndex, count) })
	s.emit(ctx, ReasonCarouselPrev, state, map[string]any{"index": state.CarouselIndex, "source": "manual"})
	return state
}

// SelectEvent opens the detail modal for the event with the given id.
func (s *Session) SelectEvent(ctx context.Context, eventID int) (UIState, error) {
	event, ok := s.data.eventByID(eventID)
	if !ok {
		return s.Snapshot(), ErrUnknownEvent
	}
	state := s.mutate(true, func(st *UIState) {
		selected := event
		st.Selected = &selected
	})
	s.emit(ctx, ReasonSelectEvent, state, map[string]any{"event_id": eventID})
	return state, nil
}

// CloseDetail clears the selected event.
func (s *Session) CloseDetail(ctx context.Context) UIState {
	state := s.mutate(true, func(st *UIState) { st.Selected = nil })
	s.emit(ctx, ReasonCloseDetail, state, nil)
	return state
}

func (s *Session) autoAdvance(ctx context.Context) {
	count := len(s.data.News)
	state := s.mutate(false, func(st *UIState) { st.CarouselIndex = NextIndex(st.CarouselIndex, count) })
	s.emit(ctx, ReasonCarouselAuto, state, map[string]any{"index": state.CarouselIndex, "source": "auto"})
}

// mount acquires the carousel timer. The timer outlives the mounting request.
func (s *Session) mount(ctx context.Context) {
	s.mu.Lock()
	s.mounted = true
	s.mu.Unlock()
	s.auto.Start(context.WithoutCancel(ctx))
	s.emit(ctx, ReasonMount, s.Snapshot(), nil)
}

// unmount releases the carousel timer; after it returns no tick can change state.
func (s *Session) unmount(ctx context.Context) {
	s.auto.Stop()
	s.mu.Lock()
	wasMounted := s.mounted
	s.mounted = false
	s.mu.Unlock()
	if wasMounted {
		s.emit(ctx, ReasonUnmount, s.Snapshot(), nil)
	}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

func (s *Session) mutate(interactive bool, fn func(*UIState)) UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	if interactive {
		s.lastSeen = s.now()
	}
	return s.state.clone()
}

func (s *Session) emit(ctx context.Context, reason string, state UIState, payload map[string]any) {
	if err := s.hook.StateChanged(ctx, StateEvent{SessionID: s.id, Reason: reason, State: state}); err != nil {
		s.telemetry.Record(ctx, "eventdash.refresh_hook.error", map[string]any{
			"session_id": s.id,
			"reason":     reason,
			"error":      err.Error(),
		})
	}
	if payload == nil {
		payload = map[string]any{}
	}
	payload["session_id"] = s.id
	s.telemetry.Record(ctx, "eventdash."+reason, payload)
}

type noopRefreshHook struct{}

func (noopRefreshHook) StateChanged(context.Context, StateEvent) error {
	return nil
}
