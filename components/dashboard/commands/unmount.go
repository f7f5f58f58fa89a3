package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

type unmountService interface {
	Unmount(ctx context.Context, sessionID string) error
}

// UnmountCommand tears down a session and releases its carousel timer.
type UnmountCommand struct {
	service   unmountService
	telemetry Telemetry
}

// NewUnmountCommand creates the command.
func NewUnmountCommand(service unmountService, telemetry Telemetry) *UnmountCommand {
	return &UnmountCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SessionInput] = (*UnmountCommand)(nil)

// Execute unmounts the session.
func (c *UnmountCommand) Execute(ctx context.Context, msg SessionInput) error {
	if c.service == nil {
		return errors.New("unmount command requires service")
	}
	if err := msg.validate(); err != nil {
		return err
	}
	if err := c.service.Unmount(ctx, msg.SessionID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "eventdash.command.unmount", map[string]any{
		"session_id": msg.SessionID,
	})
	return nil
}
