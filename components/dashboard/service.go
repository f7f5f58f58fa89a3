package dashboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTimeout unmounts sessions nobody has touched or watched for this long.
const DefaultIdleTimeout = 30 * time.Minute

var (
	// ErrSessionNotFound is returned for unknown or already unmounted sessions.
	ErrSessionNotFound = errors.New("eventdash: session not found")

	// ErrUnknownEvent is returned when selecting an event id outside the table.
	ErrUnknownEvent = errors.New("eventdash: unknown event")

	errMissingSession = errors.New("eventdash: session id is required")
)

// Options configures the dashboard Service. Every collaborator is optional.
type Options struct {
	Data             DashboardData
	RefreshHook      RefreshHook
	Telemetry        Telemetry
	Clock            Clock
	CarouselInterval time.Duration
	IdleTimeout      time.Duration
	Theme            ThemeOptions
	Chart            *ChartPanel
	IDGenerator      func() string
	Now              func() time.Time
}

// SubscriberCounter lets the sweeper skip sessions with a live transport attached.
type SubscriberCounter interface {
	Subscribers(sessionID string) int
}

// Service mounts, drives and unmounts dashboard sessions.
type Service struct {
	opts Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	opts.Data = opts.Data.withDefaults()
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.CarouselInterval <= 0 {
		opts.CarouselInterval = DefaultCarouselInterval
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	opts.Theme = opts.Theme.withDefaults()
	if opts.Chart == nil {
		opts.Chart = NewChartPanel(opts.Data.Chart)
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Data returns the datasets shared by every session.
func (s *Service) Data() DashboardData {
	return s.opts.Data
}

// Mount creates a session with default state and starts its carousel timer.
func (s *Service) Mount(ctx context.Context) (*Session, error) {
	session := newSession(sessionConfig{
		id:        s.opts.IDGenerator(),
		data:      s.opts.Data,
		hook:      s.opts.RefreshHook,
		telemetry: s.opts.Telemetry,
		clock:     s.opts.Clock,
		interval:  s.opts.CarouselInterval,
		now:       s.opts.Now,
	})
	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()
	session.mount(ctx)
	return session, nil
}

// Session looks up a mounted session.
func (s *Service) Session(id string) (*Session, error) {
	if id == "" {
		return nil, errMissingSession
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Sessions lists the mounted session ids in sorted order.
func (s *Service) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Unmount stops the session's carousel timer and forgets the session.
func (s *Service) Unmount(ctx context.Context, id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	session.unmount(ctx)
	return nil
}

// Close unmounts every session.
func (s *Service) Close(ctx context.Context) {
	for _, id := range s.Sessions() {
		_ = s.Unmount(ctx, id)
	}
}

// Sweep unmounts sessions idle longer than the idle timeout. Sessions with
// live subscribers are kept regardless of idleness.
func (s *Service) Sweep(ctx context.Context, subscribers SubscriberCounter) int {
	cutoff := s.opts.Now().Add(-s.opts.IdleTimeout)
	var stale []string
	s.mu.RLock()
	for id, session := range s.sessions {
		if subscribers != nil && subscribers.Subscribers(id) > 0 {
			continue
		}
		if session.LastSeen().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()
	removed := 0
	for _, id := range stale {
		if err := s.Unmount(ctx, id); err == nil {
			removed++
		}
	}
	pruned := s.opts.Chart.Prune()
	if removed > 0 || pruned > 0 {
		s.recordTelemetry(ctx, "eventdash.session.sweep", map[string]any{
			"removed":       removed,
			"charts_pruned": pruned,
		})
	}
	return removed
}

// RunSweeper sweeps idle sessions every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, every time.Duration, subscribers SubscriberCounter) {
	if every <= 0 {
		every = s.opts.IdleTimeout / 2
	}
	ticker := s.opts.Clock.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.Sweep(ctx, subscribers)
		}
	}
}

// ToggleSidebar flips the sidebar of a session.
func (s *Service) ToggleSidebar(ctx context.Context, id string) (UIState, error) {
	session, err := s.Session(id)
	if err != nil {
		return UIState{}, err
	}
	return session.ToggleSidebar(ctx), nil
}

// ToggleDarkMode flips the theme of a session.
func (s *Service) ToggleDarkMode(ctx context.Context, id string) (UIState, error) {
	session, err := s.Session(id)
	if err != nil {
		return UIState{}, err
	}
	return session.ToggleDarkMode(ctx), nil
}

// AdvanceCarousel moves a session's carousel forward.
func (s *Service) AdvanceCarousel(ctx context.Context, id string) (UIState, error) {
	session, err := s.Session(id)
	if err != nil {
		return UIState{}, err
	}
	return session.Advance(ctx), nil
}

// RetreatCarousel moves a session's carousel back.
func (s *Service) RetreatCarousel(ctx context.Context, id string) (UIState, error) {
	session, err := s.Session(id)
	if err != nil {
		return UIState{}, err
	}
	return session.Retreat(ctx), nil
}

// SelectEvent opens the detail modal of a session.
func (s *Service) SelectEvent(ctx context.Context, id string, eventID int) (UIState, error) {
	session, err := s.Session(id)
	if err != nil {
		return UIState{}, err
	}
	return session.SelectEvent(ctx, eventID)
}

// CloseDetail closes the detail modal of a session.
func (s *Service) CloseDetail(ctx context.Context, id string) (UIState, error) {
	session, err := s.Session(id)
	if err != nil {
		return UIState{}, err
	}
	return session.CloseDetail(ctx), nil
}

// State returns a snapshot of a session's state.
func (s *Service) State(_ context.Context, id string) (UIState, error) {
	session, err := s.Session(id)
	if err != nil {
		return UIState{}, err
	}
	return session.Snapshot(), nil
}

// Theme resolves the page theme for a state.
func (s *Service) Theme(state UIState) ThemeSelection {
	return ThemeFor(state.DarkMode, s.opts.Theme)
}

// View assembles the full dashboard view of a session.
func (s *Service) View(ctx context.Context, id string, links LinkBuilder) (DashboardView, error) {
	session, err := s.Session(id)
	if err != nil {
		return DashboardView{}, err
	}
	session.touch()
	state := session.Snapshot()
	theme := s.Theme(state)
	chartHTML, err := s.opts.Chart.Render(theme)
	if err != nil {
		s.recordTelemetry(ctx, "eventdash.chart.render_error", map[string]any{
			"session_id": id,
			"error":      err.Error(),
		})
		return DashboardView{}, err
	}
	return BuildView(id, state, session.Data(), theme, chartHTML, links), nil
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
