package dashboard

import (
	"strconv"

	"github.com/ettle/strcase"
)

// StatCardView is a rendered stats card.
type StatCardView struct {
	Title        string `json:"title"`
	Value        string `json:"value"`
	Change       string `json:"change"`
	SurfaceClass string `json:"surface_class"`
}

// RenderStatCard is a pure function of the card input and the theme.
func RenderStatCard(card StatCard, theme ThemeSelection) StatCardView {
	return StatCardView{
		Title:        card.Title,
		Value:        card.Value,
		Change:       card.Change,
		SurfaceClass: theme.SurfaceClass,
	}
}

// RenderStatCards renders cards preserving their order.
func RenderStatCards(cards []StatCard, theme ThemeSelection) []StatCardView {
	out := make([]StatCardView, len(cards))
	for i, card := range cards {
		out[i] = RenderStatCard(card, theme)
	}
	return out
}

// Badge is the visual treatment of an event status.
type Badge string

const (
	BadgeOpen    Badge = "open"
	BadgeDefault Badge = "default"
)

// BadgeFor maps Open to the open treatment and every other status to the default one.
func BadgeFor(status EventStatus) Badge {
	if status == StatusOpen {
		return BadgeOpen
	}
	return BadgeDefault
}

// Class returns the CSS classes for the badge.
func (b Badge) Class() string {
	if b == BadgeOpen {
		return "bg-green-100 text-green-800"
	}
	return "bg-yellow-100 text-yellow-800"
}

// EventRowView is a rendered row of the events table.
type EventRowView struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Attendees  string `json:"attendees"`
	Status     string `json:"status"`
	Badge      Badge  `json:"badge"`
	BadgeClass string `json:"badge_class"`
	SelectURL  string `json:"select_url,omitempty"`
}

// EventRows renders every event; selectURL builds the per-row select action.
func EventRows(events []Event, selectURL func(id int) string) []EventRowView {
	rows := make([]EventRowView, len(events))
	for i, event := range events {
		badge := BadgeFor(event.Status)
		row := EventRowView{
			ID:         event.ID,
			Name:       event.Name,
			Date:       event.Date,
			Attendees:  strconv.Itoa(event.Attendees),
			Status:     string(event.Status),
			Badge:      badge,
			BadgeClass: badge.Class(),
		}
		if selectURL != nil {
			row.SelectURL = selectURL(event.ID)
		}
		rows[i] = row
	}
	return rows
}

// DetailView is the modal shown for the selected event.
type DetailView struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Attendees string `json:"attendees"`
	Status    string `json:"status"`
	Footnote  string `json:"footnote"`
	CloseURL  string `json:"close_url,omitempty"`
}

// RenderDetail returns nil when nothing is selected.
func RenderDetail(selected *Event, closeURL string) *DetailView {
	if selected == nil {
		return nil
	}
	return &DetailView{
		Name:      selected.Name,
		Date:      selected.Date,
		Attendees: strconv.Itoa(selected.Attendees),
		Status:    string(selected.Status),
		Footnote:  defaultDetailFootnote,
		CloseURL:  closeURL,
	}
}

// NavItemView is a rendered sidebar link.
type NavItemView struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	ShowLabel bool   `json:"show_label"`
}

// SidebarView is the rendered navigation region.
type SidebarView struct {
	Brand      string        `json:"brand"`
	Collapsed  bool          `json:"collapsed"`
	WidthClass string        `json:"width_class"`
	ToggleIcon string        `json:"toggle_icon"`
	ToggleURL  string        `json:"toggle_url,omitempty"`
	Items      []NavItemView `json:"items"`
}

// RenderSidebar derives width and label visibility from the collapsed flag.
func RenderSidebar(items []NavItem, collapsed bool, toggleURL string) SidebarView {
	view := SidebarView{
		Brand:      defaultBrand,
		Collapsed:  collapsed,
		WidthClass: "w-64",
		ToggleIcon: "chevron-left",
		ToggleURL:  toggleURL,
		Items:      make([]NavItemView, len(items)),
	}
	if collapsed {
		view.WidthClass = "w-16"
		view.ToggleIcon = "chevron-right"
	}
	for i, item := range items {
		view.Items[i] = NavItemView{
			ID:        "nav-" + strcase.ToKebab(item.Label),
			Label:     item.Label,
			Icon:      item.Icon,
			ShowLabel: !collapsed,
		}
	}
	return view
}

// CarouselView is the rendered news carousel.
type CarouselView struct {
	Title     string     `json:"title"`
	Items     []NewsItem `json:"items"`
	Index     int        `json:"index"`
	Offset    int        `json:"offset"`
	Transform string     `json:"transform"`
	PrevURL   string     `json:"prev_url,omitempty"`
	NextURL   string     `json:"next_url,omitempty"`
}

// RenderCarousel derives the slide position from the index alone.
func RenderCarousel(items []NewsItem, index int, prevURL, nextURL string) CarouselView {
	return CarouselView{
		Title:     defaultCarouselTitle,
		Items:     items,
		Index:     index,
		Offset:    SlideOffset(index),
		Transform: SlideTransform(index),
		PrevURL:   prevURL,
		NextURL:   nextURL,
	}
}
