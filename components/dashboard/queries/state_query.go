package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
)

type stateService interface {
	State(ctx context.Context, sessionID string) (dashboard.UIState, error)
}

// StateQuery reads the UI state of a session without touching it.
type StateQuery struct {
	service stateService
}

// NewStateQuery builds the query.
func NewStateQuery(service stateService) *StateQuery {
	return &StateQuery{service: service}
}

var _ gocommand.Querier[string, dashboard.UIState] = (*StateQuery)(nil)

// Query returns a snapshot of the session state.
func (q *StateQuery) Query(ctx context.Context, sessionID string) (dashboard.UIState, error) {
	if q.service == nil {
		return dashboard.UIState{}, errors.New("state query requires service")
	}
	return q.service.State(ctx, sessionID)
}
