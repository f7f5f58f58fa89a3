package dashboard

const (
	defaultBrand          = "EventDash"
	defaultPageTitle      = "Dashboard Overview"
	defaultChartTitle     = "Event Statistics"
	defaultCarouselTitle  = "Latest News & Updates"
	defaultTableTitle     = "Upcoming Events"
	defaultDetailFootnote = "Additional event details and description would go here."
)

var defaultTableColumns = []string{"Event Name", "Date", "Attendees", "Status"}

// DefaultStatCards returns the four headline cards in display order.
func DefaultStatCards() []StatCard {
	return []StatCard{
		{Title: "Total Events", Value: "156", Change: "+12% from last month"},
		{Title: "Active Speakers", Value: "48", Change: "+5% from last month"},
		{Title: "Total Attendees", Value: "2,845", Change: "+18% from last month"},
		{Title: "Revenue", Value: "$28,450", Change: "+15% from last month"},
	}
}

// DefaultChartPoints returns the six-month sample series.
func DefaultChartPoints() []ChartPoint {
	return []ChartPoint{
		{Month: "Jan", Events: 65, Revenue: 4800},
		{Month: "Feb", Events: 59, Revenue: 5200},
		{Month: "Mar", Events: 80, Revenue: 6100},
		{Month: "Apr", Events: 81, Revenue: 6400},
		{Month: "May", Events: 56, Revenue: 5800},
		{Month: "Jun", Events: 55, Revenue: 5900},
	}
}

// DefaultNewsItems returns the carousel slides.
func DefaultNewsItems() []NewsItem {
	return []NewsItem{
		{ID: 1, Title: "Tech Conference 2024 Registration Open", Date: "2024-10-28"},
		{ID: 2, Title: "New Speaker Series Announced", Date: "2024-10-27"},
		{ID: 3, Title: "Virtual Events Platform Update", Date: "2024-10-26"},
	}
}

// DefaultEvents returns the rows of the events table.
func DefaultEvents() []Event {
	return []Event{
		{ID: 1, Name: "Digital Marketing Summit", Date: "2024-11-15", Attendees: 250, Status: StatusUpcoming},
		{ID: 2, Name: "AI & ML Conference", Date: "2024-11-20", Attendees: 300, Status: StatusOpen},
		{ID: 3, Name: "Web Dev Workshop", Date: "2024-11-25", Attendees: 150, Status: StatusUpcoming},
	}
}

// DefaultNavItems returns the sidebar links.
func DefaultNavItems() []NavItem {
	return []NavItem{
		{Label: "Events", Icon: "calendar"},
		{Label: "Attendees", Icon: "users"},
		{Label: "Speakers", Icon: "speaker"},
	}
}

// DefaultData bundles every literal dataset.
func DefaultData() DashboardData {
	return DashboardData{
		Stats:  DefaultStatCards(),
		Chart:  DefaultChartPoints(),
		News:   DefaultNewsItems(),
		Events: DefaultEvents(),
		Nav:    DefaultNavItems(),
	}
}

func (d DashboardData) eventByID(id int) (Event, bool) {
	for _, event := range d.Events {
		if event.ID == id {
			return event, true
		}
	}
	return Event{}, false
}

func (d DashboardData) withDefaults() DashboardData {
	if d.Stats == nil {
		d.Stats = DefaultStatCards()
	}
	if d.Chart == nil {
		d.Chart = DefaultChartPoints()
	}
	if d.News == nil {
		d.News = DefaultNewsItems()
	}
	if d.Events == nil {
		d.Events = DefaultEvents()
	}
	if d.Nav == nil {
		d.Nav = DefaultNavItems()
	}
	return d
}
