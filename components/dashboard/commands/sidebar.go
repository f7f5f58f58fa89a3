package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
)

type sidebarService interface {
	ToggleSidebar(ctx context.Context, sessionID string) (dashboard.UIState, error)
}

// ToggleSidebarCommand collapses or expands the navigation region.
type ToggleSidebarCommand struct {
	service   sidebarService
	telemetry Telemetry
}

// NewToggleSidebarCommand creates the command.
func NewToggleSidebarCommand(service sidebarService, telemetry Telemetry) *ToggleSidebarCommand {
	return &ToggleSidebarCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SessionInput] = (*ToggleSidebarCommand)(nil)

// Execute flips the sidebar flag of the session.
func (c *ToggleSidebarCommand) Execute(ctx context.Context, msg SessionInput) error {
	if c.service == nil {
		return errors.New("sidebar command requires service")
	}
	if err := msg.validate(); err != nil {
		return err
	}
	state, err := c.service.ToggleSidebar(ctx, msg.SessionID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "eventdash.command.sidebar", map[string]any{
		"session_id": msg.SessionID,
		"collapsed":  state.SidebarCollapsed,
	})
	return nil
}
