package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
)

type detailService interface {
	SelectEvent(ctx context.Context, sessionID string, eventID int) (dashboard.UIState, error)
	CloseDetail(ctx context.Context, sessionID string) (dashboard.UIState, error)
}

// SelectEventCommand opens the detail modal for a table row.
type SelectEventCommand struct {
	service   detailService
	telemetry Telemetry
}

// NewSelectEventCommand creates the command.
func NewSelectEventCommand(service detailService, telemetry Telemetry) *SelectEventCommand {
	return &SelectEventCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectEventInput] = (*SelectEventCommand)(nil)

// Execute selects the event.
func (c *SelectEventCommand) Execute(ctx context.Context, msg SelectEventInput) error {
	if c.service == nil {
		return errors.New("select command requires service")
	}
	if msg.SessionID == "" {
		return errMissingSessionID
	}
	if _, err := c.service.SelectEvent(ctx, msg.SessionID, msg.EventID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "eventdash.command.select", map[string]any{
		"session_id": msg.SessionID,
		"event_id":   msg.EventID,
	})
	return nil
}

// CloseDetailCommand dismisses the detail modal.
type CloseDetailCommand struct {
	service   detailService
	telemetry Telemetry
}

// NewCloseDetailCommand creates the command.
func NewCloseDetailCommand(service detailService, telemetry Telemetry) *CloseDetailCommand {
	return &CloseDetailCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SessionInput] = (*CloseDetailCommand)(nil)

// Execute clears the selection.
func (c *CloseDetailCommand) Execute(ctx context.Context, msg SessionInput) error {
	if c.service == nil {
		return errors.New("close command requires service")
	}
	if err := msg.validate(); err != nil {
		return err
	}
	if _, err := c.service.CloseDetail(ctx, msg.SessionID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "eventdash.command.close_detail", map[string]any{
		"session_id": msg.SessionID,
	})
	return nil
}
