package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
)

// ViewInput identifies the session to render and where its actions live.
type ViewInput struct {
	SessionID string
	Links     dashboard.LinkBuilder
}

type viewService interface {
	View(ctx context.Context, sessionID string, links dashboard.LinkBuilder) (dashboard.DashboardView, error)
}

// ViewQuery assembles every rendered region of a session.
type ViewQuery struct {
	service viewService
}

// NewViewQuery builds the query.
func NewViewQuery(service viewService) *ViewQuery {
	return &ViewQuery{service: service}
}

var _ gocommand.Querier[ViewInput, dashboard.DashboardView] = (*ViewQuery)(nil)

// Query resolves the dashboard view.
func (q *ViewQuery) Query(ctx context.Context, input ViewInput) (dashboard.DashboardView, error) {
	if q.service == nil {
		return dashboard.DashboardView{}, errors.New("view query requires service")
	}
	return q.service.View(ctx, input.SessionID, input.Links)
}
