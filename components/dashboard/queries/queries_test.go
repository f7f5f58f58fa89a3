package queries

import (
	"context"
	"testing"

	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStateService struct {
	calls int
}

func (s *stubStateService) State(context.Context, string) (dashboard.UIState, error) {
	s.calls++
	return dashboard.UIState{DarkMode: true}, nil
}

type stubViewService struct {
	calls int
	links dashboard.LinkBuilder
}

func (s *stubViewService) View(_ context.Context, id string, links dashboard.LinkBuilder) (dashboard.DashboardView, error) {
	s.calls++
	s.links = links
	return dashboard.DashboardView{SessionID: id}, nil
}

func TestStateQuery(t *testing.T) {
	service := &stubStateService{}
	query := NewStateQuery(service)
	state, err := query.Query(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if service.calls != 1 {
		t.Fatalf("expected 1 call, got %d", service.calls)
	}
	assert.True(t, state.DarkMode)
}

func TestViewQuery(t *testing.T) {
	service := &stubViewService{}
	query := NewViewQuery(service)
	view, err := query.Query(context.Background(), ViewInput{
		SessionID: "s1",
		Links:     dashboard.LinkBuilder{Root: "/dash"},
	})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	assert.Equal(t, "s1", view.SessionID)
	assert.Equal(t, "/dash", service.links.Root)
}

func TestQueriesAgainstService(t *testing.T) {
	ctx := context.Background()
	service := dashboard.NewService(dashboard.Options{})
	defer service.Close(ctx)

	session, err := service.Mount(ctx)
	require.NoError(t, err)

	state, err := NewStateQuery(service).Query(ctx, session.ID())
	require.NoError(t, err)
	assert.Equal(t, dashboard.UIState{}, state)

	view, err := NewViewQuery(service).Query(ctx, ViewInput{SessionID: session.ID()})
	require.NoError(t, err)
	require.Len(t, view.Cards, 4)
	assert.Contains(t, view.Chart.HTML, "echarts")

	_, err = NewStateQuery(service).Query(ctx, "missing")
	assert.ErrorIs(t, err, dashboard.ErrSessionNotFound)
}
