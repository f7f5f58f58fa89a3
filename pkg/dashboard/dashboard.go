// Package dashboard is the public entry point for embedding the event
// dashboard in another application.
package dashboard

import (
	"context"

	core "github.com/goliatone/go-eventdash/components/dashboard"
)

// Service exposes the underlying components/dashboard.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Session is one mounted dashboard.
type Session = core.Session

// UIState is the state of a session.
type UIState = core.UIState

// Config is the application configuration.
type Config = core.Config

// BroadcastHook fans state events out to live transports.
type BroadcastHook = core.BroadcastHook

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewBroadcastHook proxies to the internal constructor.
func NewBroadcastHook() *BroadcastHook {
	return core.NewBroadcastHook()
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	return core.LoadConfig(path)
}

// NewLiveService builds a service from cfg whose state events are published
// on the returned hook.
func NewLiveService(cfg *Config) (*Service, *BroadcastHook) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	hook := core.NewBroadcastHook()
	opts := cfg.ServiceOptions()
	opts.RefreshHook = hook
	return core.NewService(opts), hook
}

// Mount starts a session on the service.
func Mount(ctx context.Context, service *Service) (*Session, error) {
	return service.Mount(ctx)
}
