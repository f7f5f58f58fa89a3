package dashboard

import (
	"strconv"
	"strings"
)

// DefaultDashboardPath is where the dashboard is mounted when no base path is configured.
const DefaultDashboardPath = "/admin/events/dashboard"

// Relative action paths below a session URL.
const (
	ActionState       = "state"
	ActionStream      = "ws"
	ActionEventStream = "sse"
	ActionSidebar     = "sidebar"
	ActionTheme       = "theme"
	ActionNext        = "carousel/next"
	ActionPrev        = "carousel/prev"
	ActionEvents      = "events"
	ActionCloseDetail = "detail/close"
)

// LinkBuilder derives session action URLs from the dashboard root path.
type LinkBuilder struct {
	Root string
}

func (l LinkBuilder) root() string {
	root := strings.TrimRight(l.Root, "/")
	if root == "" {
		return DefaultDashboardPath
	}
	return root
}

// Mount is the URL that mounts a fresh session.
func (l LinkBuilder) Mount() string {
	return l.root()
}

// Session is the URL of an existing session page.
func (l LinkBuilder) Session(id string) string {
	return l.root() + "/" + id
}

// Action is the URL of a session action.
func (l LinkBuilder) Action(id, action string) string {
	return l.Session(id) + "/" + action
}

// SelectEvent is the URL selecting the given event row.
func (l LinkBuilder) SelectEvent(id string, eventID int) string {
	return l.Action(id, ActionEvents) + "/" + strconv.Itoa(eventID)
}

// ActionLinks are the endpoints the page scripts talk to.
type ActionLinks struct {
	Mount   string `json:"mount"`
	Page    string `json:"page"`
	State   string `json:"state"`
	Stream  string `json:"stream"`
	Theme   string `json:"theme"`
	Unmount string `json:"unmount"`
}

// ChartView is the rendered statistics chart.
type ChartView struct {
	Title string `json:"title"`
	HTML  string `json:"-"`
}

// TableView is the rendered events table.
type TableView struct {
	Title   string         `json:"title"`
	Columns []string       `json:"columns"`
	Rows    []EventRowView `json:"rows"`
}

// DashboardView is everything the template needs to render one session.
type DashboardView struct {
	SessionID string         `json:"session_id"`
	Title     string         `json:"title"`
	Theme     ThemeSelection `json:"theme"`
	ThemeVars string         `json:"-"`
	State     UIState        `json:"state"`
	Sidebar   SidebarView    `json:"sidebar"`
	Cards     []StatCardView `json:"cards"`
	Chart     ChartView      `json:"chart"`
	Carousel  CarouselView   `json:"carousel"`
	Table     TableView      `json:"table"`
	Detail    *DetailView    `json:"detail,omitempty"`
	Links     ActionLinks    `json:"links"`
}

// BuildView renders every region from a state snapshot. The theme is passed
// explicitly to each region.
func BuildView(sessionID string, state UIState, data DashboardData, theme ThemeSelection, chartHTML string, links LinkBuilder) DashboardView {
	selectURL := func(eventID int) string {
		return links.SelectEvent(sessionID, eventID)
	}
	return DashboardView{
		SessionID: sessionID,
		Title:     defaultPageTitle,
		Theme:     theme,
		ThemeVars: theme.CSSVariablesInline(),
		State:     state,
		Sidebar:   RenderSidebar(data.Nav, state.SidebarCollapsed, links.Action(sessionID, ActionSidebar)),
		Cards:     RenderStatCards(data.Stats, theme),
		Chart: ChartView{
			Title: defaultChartTitle,
			HTML:  chartHTML,
		},
		Carousel: RenderCarousel(data.News, state.CarouselIndex,
			links.Action(sessionID, ActionPrev),
			links.Action(sessionID, ActionNext),
		),
		Table: TableView{
			Title:   defaultTableTitle,
			Columns: append([]string(nil), defaultTableColumns...),
			Rows:    EventRows(data.Events, selectURL),
		},
		Detail: RenderDetail(state.Selected, links.Action(sessionID, ActionCloseDetail)),
		Links: ActionLinks{
			Mount:   links.Mount(),
			Page:    links.Session(sessionID),
			State:   links.Action(sessionID, ActionState),
			Stream:  links.Action(sessionID, ActionStream),
			Theme:   links.Action(sessionID, ActionTheme),
			Unmount: links.Session(sessionID),
		},
	}
}
