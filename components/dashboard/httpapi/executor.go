package httpapi

import (
	"context"
	"errors"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-eventdash/components/dashboard"
	"github.com/goliatone/go-eventdash/components/dashboard/commands"
)

var errCommandUnavailable = errors.New("eventdash: command not configured")

// Executor runs the session actions exposed over HTTP. Both the net/http
// handlers and the go-router adapter dispatch through it.
type Executor interface {
	ToggleSidebar(ctx context.Context, input commands.SessionInput) error
	ToggleTheme(ctx context.Context, input commands.SessionInput) error
	MoveCarousel(ctx context.Context, input commands.CarouselInput) error
	SelectEvent(ctx context.Context, input commands.SelectEventInput) error
	CloseDetail(ctx context.Context, input commands.SessionInput) error
	Unmount(ctx context.Context, input commands.SessionInput) error
}

// CommandExecutor adapts go-command commanders to Executor.
type CommandExecutor struct {
	Sidebar  gocommand.Commander[commands.SessionInput]
	Theme    gocommand.Commander[commands.SessionInput]
	Carousel gocommand.Commander[commands.CarouselInput]
	Select   gocommand.Commander[commands.SelectEventInput]
	Close    gocommand.Commander[commands.SessionInput]
	Remove   gocommand.Commander[commands.SessionInput]
}

var _ Executor = (*CommandExecutor)(nil)

// NewCommandExecutor wires every session command against the service.
func NewCommandExecutor(service *dashboard.Service, telemetry commands.Telemetry) *CommandExecutor {
	return &CommandExecutor{
		Sidebar:  commands.NewToggleSidebarCommand(service, telemetry),
		Theme:    commands.NewToggleThemeCommand(service, telemetry),
		Carousel: commands.NewMoveCarouselCommand(service, telemetry),
		Select:   commands.NewSelectEventCommand(service, telemetry),
		Close:    commands.NewCloseDetailCommand(service, telemetry),
		Remove:   commands.NewUnmountCommand(service, telemetry),
	}
}

func (e *CommandExecutor) ToggleSidebar(ctx context.Context, input commands.SessionInput) error {
	return execute(ctx, e.Sidebar, input)
}

func (e *CommandExecutor) ToggleTheme(ctx context.Context, input commands.SessionInput) error {
	return execute(ctx, e.Theme, input)
}

func (e *CommandExecutor) MoveCarousel(ctx context.Context, input commands.CarouselInput) error {
	return execute(ctx, e.Carousel, input)
}

func (e *CommandExecutor) SelectEvent(ctx context.Context, input commands.SelectEventInput) error {
	return execute(ctx, e.Select, input)
}

func (e *CommandExecutor) CloseDetail(ctx context.Context, input commands.SessionInput) error {
	return execute(ctx, e.Close, input)
}

func (e *CommandExecutor) Unmount(ctx context.Context, input commands.SessionInput) error {
	return execute(ctx, e.Remove, input)
}

func execute[T any](ctx context.Context, cmd gocommand.Commander[T], msg T) error {
	if cmd == nil {
		return errCommandUnavailable
	}
	return cmd.Execute(ctx, msg)
}

// StatusFor maps service and command errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dashboard.ErrSessionNotFound), errors.Is(err, dashboard.ErrUnknownEvent):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
