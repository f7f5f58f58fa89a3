package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-eventdash/components/dashboard"
)

const barWidth = 24

type palette struct {
	base    lipgloss.Style
	surface lipgloss.Style
	muted   lipgloss.Style
	title   lipgloss.Style
	cursor  lipgloss.Style
	open    lipgloss.Style
	pending lipgloss.Style
	events  lipgloss.Style
	revenue lipgloss.Style
}

func paletteFor(theme dashboard.ThemeSelection) palette {
	fg := lipgloss.Color(theme.Tokens["text"])
	bg := lipgloss.Color(theme.Tokens["page-bg"])
	surface := lipgloss.Color(theme.Tokens["surface-bg"])
	muted := lipgloss.Color(theme.Tokens["muted"])
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Tokens["border"])).
		Foreground(fg).
		Background(surface).
		Padding(0, 1)
	return palette{
		base:    lipgloss.NewStyle().Foreground(fg).Background(bg),
		surface: border,
		muted:   lipgloss.NewStyle().Foreground(muted),
		title:   lipgloss.NewStyle().Bold(true).Foreground(fg),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8884d8")),
		open:    lipgloss.NewStyle().Foreground(lipgloss.Color("#166534")).Background(lipgloss.Color("#dcfce7")).Padding(0, 1),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("#854d0e")).Background(lipgloss.Color("#fef9c3")).Padding(0, 1),
		events:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8884d8")),
		revenue: lipgloss.NewStyle().Foreground(lipgloss.Color("#82ca9d")),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	theme := dashboard.ThemeFor(m.state.DarkMode, m.themes)
	p := paletteFor(theme)
	data := m.session.Data()

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(p, theme),
		m.renderCards(p, data.Stats, theme),
		m.renderChart(p, data.Chart),
		m.renderCarousel(p, data.News),
		m.renderTable(p, data.Events),
	)
	if detail := dashboard.RenderDetail(m.state.Selected, ""); detail != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.renderDetail(p, detail))
	}
	page := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(p, data.Nav), content)

	var b strings.Builder
	b.WriteString(p.base.Render(page))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(p.muted.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp(p))
	return b.String()
}

func (m Model) renderSidebar(p palette, items []dashboard.NavItem) string {
	view := dashboard.RenderSidebar(items, m.state.SidebarCollapsed, "")
	var lines []string
	if view.Collapsed {
		lines = append(lines, p.title.Render(view.Brand[:1]))
	} else {
		lines = append(lines, p.title.Render(view.Brand))
	}
	for _, item := range view.Items {
		if item.ShowLabel {
			lines = append(lines, "• "+item.Label)
			continue
		}
		lines = append(lines, "•")
	}
	width := 16
	if view.Collapsed {
		width = 3
	}
	return p.surface.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHeader(p palette, theme dashboard.ThemeSelection) string {
	mode := "light"
	if theme.Dark {
		mode = "dark"
	}
	return p.title.Render("Dashboard Overview") + "  " + p.muted.Render("["+mode+"]")
}

func (m Model) renderCards(p palette, stats []dashboard.StatCard, theme dashboard.ThemeSelection) string {
	cards := make([]string, 0, len(stats))
	for _, card := range dashboard.RenderStatCards(stats, theme) {
		cards = append(cards, p.surface.Render(lipgloss.JoinVertical(lipgloss.Left,
			p.muted.Render(card.Title),
			p.title.Render(card.Value),
			p.muted.Render(card.Change),
		)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderChart draws the two series as horizontal bars scaled to their maxima.
func (m Model) renderChart(p palette, points []dashboard.ChartPoint) string {
	maxEvents, maxRevenue := 0, 0.0
	for _, point := range points {
		maxEvents = max(maxEvents, point.Events)
		maxRevenue = max(maxRevenue, point.Revenue)
	}
	lines := []string{p.title.Render("Event Statistics")}
	for _, point := range points {
		events, revenue := 0, 0
		if maxEvents > 0 {
			events = point.Events * barWidth / maxEvents
		}
		if maxRevenue > 0 {
			revenue = int(point.Revenue * barWidth / maxRevenue)
		}
		lines = append(lines,
			fmt.Sprintf("%-3s %s %d", point.Month, p.events.Render(strings.Repeat("█", events)), point.Events),
			fmt.Sprintf("    %s %.0f", p.revenue.Render(strings.Repeat("▒", revenue)), point.Revenue),
		)
	}
	lines = append(lines, p.events.Render("█ events")+"  "+p.revenue.Render("▒ revenue"))
	return p.surface.Render(strings.Join(lines, "\n"))
}

func (m Model) renderCarousel(p palette, news []dashboard.NewsItem) string {
	view := dashboard.RenderCarousel(news, m.state.CarouselIndex, "", "")
	lines := []string{p.title.Render(view.Title)}
	if view.Index >= 0 && view.Index < len(view.Items) {
		slide := view.Items[view.Index]
		lines = append(lines, "‹ "+slide.Title+" ›", p.muted.Render(slide.Date))
		dots := make([]string, len(view.Items))
		for i := range view.Items {
			dots[i] = "○"
			if i == view.Index {
				dots[i] = "●"
			}
		}
		lines = append(lines, strings.Join(dots, " "))
	}
	return p.surface.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTable(p palette, events []dashboard.Event) string {
	lines := []string{p.title.Render("Upcoming Events")}
	for i, row := range dashboard.EventRows(events, nil) {
		marker := "  "
		name := row.Name
		if i == m.cursor {
			marker = p.cursor.Render("› ")
			name = p.cursor.Render(name)
		}
		badge := p.pending.Render(row.Status)
		if row.Badge == dashboard.BadgeOpen {
			badge = p.open.Render(row.Status)
		}
		lines = append(lines, fmt.Sprintf("%s%-28s %s %6s %s", marker, name, row.Date, row.Attendees, badge))
	}
	return p.surface.Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetail(p palette, detail *dashboard.DetailView) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		p.title.Render(detail.Name),
		"Date: "+detail.Date,
		"Attendees: "+detail.Attendees,
		"Status: "+detail.Status,
		p.muted.Render(detail.Footnote),
		p.muted.Render("esc to close"),
	)
	return p.surface.BorderForeground(lipgloss.Color("#8884d8")).Render(body)
}

func (m Model) renderHelp(p palette) string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return p.muted.Render(strings.Join(parts, " · "))
}
