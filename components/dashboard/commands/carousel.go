package commands

import (
	"context"
	"errors"
	"fmt"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
)

type carouselService interface {
	AdvanceCarousel(ctx context.Context, sessionID string) (dashboard.UIState, error)
	RetreatCarousel(ctx context.Context, sessionID string) (dashboard.UIState, error)
}

// MoveCarouselCommand performs a manual carousel transition. The automatic
// schedule of the session is left untouched.
type MoveCarouselCommand struct {
	service   carouselService
	telemetry Telemetry
}

// NewMoveCarouselCommand creates the command.
func NewMoveCarouselCommand(service carouselService, telemetry Telemetry) *MoveCarouselCommand {
	return &MoveCarouselCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CarouselInput] = (*MoveCarouselCommand)(nil)

// Execute advances or retreats the carousel.
func (c *MoveCarouselCommand) Execute(ctx context.Context, msg CarouselInput) error {
	if c.service == nil {
		return errors.New("carousel command requires service")
	}
	if msg.SessionID == "" {
		return errMissingSessionID
	}
	var (
		state dashboard.UIState
		err   error
	)
	switch msg.Direction {
	case CarouselNext:
		state, err = c.service.AdvanceCarousel(ctx, msg.SessionID)
	case CarouselPrev:
		state, err = c.service.RetreatCarousel(ctx, msg.SessionID)
	default:
		return fmt.Errorf("%w: unsupported carousel direction %q", ErrInvalidInput, msg.Direction)
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "eventdash.command.carousel", map[string]any{
		"session_id": msg.SessionID,
		"direction":  string(msg.Direction),
		"index":      state.CarouselIndex,
	})
	return nil
}
