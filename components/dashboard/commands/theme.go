package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-eventdash/components/dashboard"
)

type themeService interface {
	ToggleDarkMode(ctx context.Context, sessionID string) (dashboard.UIState, error)
}

// ToggleThemeCommand switches the session between light and dark mode.
type ToggleThemeCommand struct {
	service   themeService
	telemetry Telemetry
}

// NewToggleThemeCommand creates the command.
func NewToggleThemeCommand(service themeService, telemetry Telemetry) *ToggleThemeCommand {
	return &ToggleThemeCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SessionInput] = (*ToggleThemeCommand)(nil)

// Execute flips the dark mode flag of the session.
func (c *ToggleThemeCommand) Execute(ctx context.Context, msg SessionInput) error {
	if c.service == nil {
		return errors.New("theme command requires service")
	}
	if err := msg.validate(); err != nil {
		return err
	}
	state, err := c.service.ToggleDarkMode(ctx, msg.SessionID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "eventdash.command.theme", map[string]any{
		"session_id": msg.SessionID,
		"dark_mode":  state.DarkMode,
	})
	return nil
}
