package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatCardsKeepOrder(t *testing.T) {
	theme := ThemeFor(false, ThemeOptions{})
	cards := RenderStatCards(DefaultStatCards(), theme)
	require.Len(t, cards, 4)

	values := make([]string, len(cards))
	for i, card := range cards {
		values[i] = card.Value
		assert.Equal(t, "bg-white", card.SurfaceClass)
	}
	assert.Equal(t, []string{"156", "48", "2,845", "$28,450"}, values)
	assert.Equal(t, "Total Events", cards[0].Title)
	assert.Equal(t, "+15% from last month", cards[3].Change)
}

func TestStatCardFollowsTheme(t *testing.T) {
	card := DefaultStatCards()[1]
	assert.Equal(t, "bg-gray-800", RenderStatCard(card, ThemeFor(true, ThemeOptions{})).SurfaceClass)
	assert.Equal(t, RenderStatCard(card, ThemeFor(true, ThemeOptions{})), RenderStatCard(card, ThemeFor(true, ThemeOptions{})))
}

func TestBadgeForIsTwoWay(t *testing.T) {
	assert.Equal(t, BadgeOpen, BadgeFor(StatusOpen))
	assert.Equal(t, BadgeDefault, BadgeFor(StatusUpcoming))
	assert.Equal(t, BadgeDefault, BadgeFor("Cancelled"))
	assert.Equal(t, BadgeDefault, BadgeFor(""))
	assert.Equal(t, "bg-green-100 text-green-800", BadgeOpen.Class())
	assert.Equal(t, "bg-yellow-100 text-yellow-800", BadgeDefault.Class())
}

func TestEventRows(t *testing.T) {
	rows := EventRows(DefaultEvents(), func(id int) string { return LinkBuilder{}.SelectEvent("s1", id) })
	require.Len(t, rows, 3)

	assert.Equal(t, "Digital Marketing Summit", rows[0].Name)
	assert.Equal(t, "250", rows[0].Attendees)
	assert.Equal(t, BadgeDefault, rows[0].Badge)
	assert.Equal(t, BadgeOpen, rows[1].Badge)
	assert.Equal(t, "Open", rows[1].Status)
	assert.Equal(t, "/admin/events/dashboard/s1/events/2", rows[1].SelectURL)

	assert.Empty(t, EventRows(DefaultEvents(), nil)[0].SelectURL)
}

func TestRenderDetail(t *testing.T) {
	assert.Nil(t, RenderDetail(nil, "/close"))

	event := DefaultEvents()[1]
	detail := RenderDetail(&event, "/close")
	require.NotNil(t, detail)
	assert.Equal(t, DetailView{
		Name:      "AI & ML Conference",
		Date:      "2024-11-20",
		Attendees: "300",
		Status:    "Open",
		Footnote:  "Additional event details and description would go here.",
		CloseURL:  "/close",
	}, *detail)
}

func TestRenderSidebar(t *testing.T) {
	expanded := RenderSidebar(DefaultNavItems(), false, "/toggle")
	assert.Equal(t, "w-64", expanded.WidthClass)
	assert.Equal(t, "chevron-left", expanded.ToggleIcon)
	assert.Equal(t, "EventDash", expanded.Brand)
	require.Len(t, expanded.Items, 3)
	assert.Equal(t, "nav-events", expanded.Items[0].ID)
	assert.True(t, expanded.Items[2].ShowLabel)

	collapsed := RenderSidebar(DefaultNavItems(), true, "/toggle")
	assert.Equal(t, "w-16", collapsed.WidthClass)
	assert.Equal(t, "chevron-right", collapsed.ToggleIcon)
	for _, item := range collapsed.Items {
		assert.False(t, item.ShowLabel)
		assert.NotEmpty(t, item.Icon)
	}
}

func TestRenderCarousel(t *testing.T) {
	view := RenderCarousel(DefaultNewsItems(), 2, "/prev", "/next")
	assert.Equal(t, "Latest News & Updates", view.Title)
	assert.Equal(t, 200, view.Offset)
	assert.Equal(t, "translateX(-200%)", view.Transform)
	assert.Len(t, view.Items, 3)
	assert.Equal(t, "/next", view.NextURL)
}

func TestBuildView(t *testing.T) {
	data := DefaultData()
	theme := ThemeFor(true, ThemeOptions{})
	state := UIState{SidebarCollapsed: true, DarkMode: true, CarouselIndex: 1}
	links := LinkBuilder{Root: "/dash"}

	view := BuildView("s1", state, data, theme, "<div>chart</div>", links)

	assert.Equal(t, "w-16", view.Sidebar.WidthClass)
	assert.Equal(t, "/dash/s1/sidebar", view.Sidebar.ToggleURL)
	assert.Equal(t, "translateX(-100%)", view.Carousel.Transform)
	assert.Equal(t, "/dash/s1/carousel/prev", view.Carousel.PrevURL)
	assert.Equal(t, "Event Statistics", view.Chart.Title)
	assert.Equal(t, "<div>chart</div>", view.Chart.HTML)
	assert.Equal(t, []string{"Event Name", "Date", "Attendees", "Status"}, view.Table.Columns)
	assert.Equal(t, "Upcoming Events", view.Table.Title)
	assert.Nil(t, view.Detail)
	assert.Contains(t, view.ThemeVars, "--ed-page-bg: #111827;")
	assert.Equal(t, ActionLinks{
		Mount:   "/dash",
		Page:    "/dash/s1",
		State:   "/dash/s1/state",
		Stream:  "/dash/s1/ws",
		Theme:   "/dash/s1/theme",
		Unmount: "/dash/s1",
	}, view.Links)
}
