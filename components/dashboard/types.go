package dashboard

import (
	"context"
	"io"
)

// RefreshHook notifies transports (WebSocket, terminal) about session state changes.
type RefreshHook interface {
	StateChanged(ctx context.Context, event StateEvent) error
}

// Renderer describes the template renderer contract needed by the controller.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// EventStatus is the registration status shown in the events table.
type EventStatus string

const (
	StatusUpcoming EventStatus = "Upcoming"
	StatusOpen     EventStatus = "Open"
)

// ChartPoint is one month of the statistics chart.
type ChartPoint struct {
	Month   string  `json:"month"`
	Events  int     `json:"events"`
	Revenue float64 `json:"revenue"`
}

// NewsItem is a single carousel slide.
type NewsItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Event is a row of the events table.
type Event struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Date      string      `json:"date"`
	Attendees int         `json:"attendees"`
	Status    EventStatus `json:"status"`
}

// StatCard is the input of a stats card: title, headline value and change text.
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// NavItem is an inert sidebar link.
type NavItem struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DashboardData groups the literal datasets rendered by the dashboard.
type DashboardData struct {
	Stats  []StatCard   `json:"stats"`
	Chart  []ChartPoint `json:"chart"`
	News   []NewsItem   `json:"news"`
	Events []Event      `json:"events"`
	Nav    []NavItem    `json:"nav"`
}

// UIState is the local UI state owned by a mounted dashboard session.
type UIState struct {
	SidebarCollapsed bool   `json:"sidebar_collapsed"`
	DarkMode         bool   `json:"dark_mode"`
	CarouselIndex    int    `json:"carousel_index"`
	Selected         *Event `json:"selected_event,omitempty"`
}

func (s UIState) clone() UIState {
	out := s
	if s.Selected != nil {
		selected := *s.Selected
		out.Selected = &selected
	}
	return out
}

// StateEvent describes a state change that transports might care about.
type StateEvent struct {
	SessionID string  `json:"session_id"`
	Reason    string  `json:"reason"`
	State     UIState `json:"state"`
}

// Reasons attached to StateEvent.
const (
	ReasonMount        = "mount"
	ReasonUnmount      = "unmount"
	ReasonSidebar      = "sidebar"
	ReasonTheme        = "theme"
	ReasonCarouselAuto = "carousel.auto"
	ReasonCarouselNext = "carousel.next"
	ReasonCarouselPrev = "carousel.prev"
	ReasonSelectEvent  = "event.select"
	ReasonCloseDetail  = "detail.close"
)
