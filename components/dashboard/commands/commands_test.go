package commands

import (
	"context"
	"errors"
	"testing"

	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSidebarCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewToggleSidebarCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), SessionInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.sidebarCalls != 1 {
		t.Fatalf("expected sidebar call")
	}
	require.Len(t, telemetry.events, 1)
	assert.Equal(t, "eventdash.command.sidebar", telemetry.events[0])
}

func TestToggleThemeCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewToggleThemeCommand(service, nil)
	if err := cmd.Execute(context.Background(), SessionInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.themeCalls != 1 {
		t.Fatalf("expected theme call")
	}
}

func TestMoveCarouselCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewMoveCarouselCommand(service, nil)
	ctx := context.Background()

	require.NoError(t, cmd.Execute(ctx, CarouselInput{SessionID: "s1", Direction: CarouselNext}))
	require.NoError(t, cmd.Execute(ctx, CarouselInput{SessionID: "s1", Direction: CarouselPrev}))
	assert.Equal(t, 1, service.nextCalls)
	assert.Equal(t, 1, service.prevCalls)

	err := cmd.Execute(ctx, CarouselInput{SessionID: "s1", Direction: "sideways"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "sideways")
}

func TestSelectEventCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSelectEventCommand(service, nil)
	if err := cmd.Execute(context.Background(), SelectEventInput{SessionID: "s1", EventID: 2}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	assert.Equal(t, 2, service.selected)
}

func TestCloseDetailCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewCloseDetailCommand(service, nil)
	if err := cmd.Execute(context.Background(), SessionInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.closeCalls != 1 {
		t.Fatalf("expected close call")
	}
}

func TestUnmountCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewUnmountCommand(service, nil)
	if err := cmd.Execute(context.Background(), SessionInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.unmountCalls != 1 {
		t.Fatalf("expected unmount call")
	}
}

func TestCommandsRequireSessionID(t *testing.T) {
	service := &stubService{}
	ctx := context.Background()
	assert.ErrorIs(t, NewToggleSidebarCommand(service, nil).Execute(ctx, SessionInput{}), errMissingSessionID)
	assert.ErrorIs(t, NewToggleThemeCommand(service, nil).Execute(ctx, SessionInput{}), errMissingSessionID)
	assert.ErrorIs(t, NewMoveCarouselCommand(service, nil).Execute(ctx, CarouselInput{Direction: CarouselNext}), errMissingSessionID)
	assert.ErrorIs(t, NewSelectEventCommand(service, nil).Execute(ctx, SelectEventInput{EventID: 1}), errMissingSessionID)
	assert.ErrorIs(t, NewCloseDetailCommand(service, nil).Execute(ctx, SessionInput{}), errMissingSessionID)
	assert.ErrorIs(t, NewUnmountCommand(service, nil).Execute(ctx, SessionInput{}), errMissingSessionID)
	assert.Zero(t, service.total())
}

func TestCommandsRequireService(t *testing.T) {
	err := NewToggleSidebarCommand(nil, nil).Execute(context.Background(), SessionInput{SessionID: "s1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires service")
}

func TestCommandsPropagateServiceErrors(t *testing.T) {
	service := &stubService{err: dashboard.ErrSessionNotFound}
	telemetry := &stubTelemetry{}
	err := NewToggleThemeCommand(service, telemetry).Execute(context.Background(), SessionInput{SessionID: "gone"})
	assert.True(t, errors.Is(err, dashboard.ErrSessionNotFound))
	assert.Empty(t, telemetry.events)
}

func TestCommandsAgainstService(t *testing.T) {
	ctx := context.Background()
	service := dashboard.NewService(dashboard.Options{})
	defer service.Close(ctx)

	session, err := service.Mount(ctx)
	require.NoError(t, err)
	id := session.ID()

	require.NoError(t, NewSelectEventCommand(service, nil).Execute(ctx, SelectEventInput{SessionID: id, EventID: 2}))
	state := session.Snapshot()
	require.NotNil(t, state.Selected)
	assert.Equal(t, "AI & ML Conference", state.Selected.Name)

	err = NewSelectEventCommand(service, nil).Execute(ctx, SelectEventInput{SessionID: id, EventID: 99})
	assert.ErrorIs(t, err, dashboard.ErrUnknownEvent)

	require.NoError(t, NewCloseDetailCommand(service, nil).Execute(ctx, SessionInput{SessionID: id}))
	assert.Nil(t, session.Snapshot().Selected)

	require.NoError(t, NewUnmountCommand(service, nil).Execute(ctx, SessionInput{SessionID: id}))
	assert.False(t, session.Mounted())
	assert.ErrorIs(t, NewUnmountCommand(service, nil).Execute(ctx, SessionInput{SessionID: id}), dashboard.ErrSessionNotFound)
}

type stubService struct {
	err          error
	sidebarCalls int
	themeCalls   int
	nextCalls    int
	prevCalls    int
	closeCalls   int
	unmountCalls int
	selected     int
}

func (s *stubService) total() int {
	return s.sidebarCalls + s.themeCalls + s.nextCalls + s.prevCalls + s.closeCalls + s.unmountCalls + s.selected
}

func (s *stubService) ToggleSidebar(context.Context, string) (dashboard.UIState, error) {
	s.sidebarCalls++
	return dashboard.UIState{SidebarCollapsed: true}, s.err
}

func (s *stubService) ToggleDarkMode(context.Context, string) (dashboard.UIState, error) {
	s.themeCalls++
	return dashboard.UIState{DarkMode: true}, s.err
}

func (s *stubService) AdvanceCarousel(context.Context, string) (dashboard.UIState, error) {
	s.nextCalls++
	return dashboard.UIState{CarouselIndex: 1}, s.err
}

func (s *stubService) RetreatCarousel(context.Context, string) (dashboard.UIState, error) {
	s.prevCalls++
	return dashboard.UIState{}, s.err
}

func (s *stubService) SelectEvent(_ context.Context, _ string, eventID int) (dashboard.UIState, error) {
	s.selected = eventID
	return dashboard.UIState{}, s.err
}

func (s *stubService) CloseDetail(context.Context, string) (dashboard.UIState, error) {
	s.closeCalls++
	return dashboard.UIState{}, s.err
}

func (s *stubService) Unmount(context.Context, string) error {
	s.unmountCalls++
	return s.err
}

type stubTelemetry struct {
	events []string
}

func (s *stubTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	s.events = append(s.events, event)
}
