package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-eventdash/components/dashboard"
	"github.com/goliatone/go-eventdash/components/dashboard/gorouter"
	"github.com/goliatone/go-eventdash/components/dashboard/httpapi"
	"github.com/goliatone/go-eventdash/components/dashboard/queries"
	"github.com/goliatone/go-eventdash/components/dashboard/tui"
)

const shutdownTimeout = 5 * time.Second

type globals struct {
	Config    string `short:"c" type:"path" env:"EVENTDASH_CONFIG" help:"Path to the YAML config file."`
	LogLevel  string `default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	LogFormat string `default:"text" enum:"text,json" help:"Log output format."`
}

type cli struct {
	globals

	Serve  serveCmd  `cmd:"" help:"Serve the dashboard over HTTP with live updates."`
	TUI    tuiCmd    `cmd:"" name:"tui" help:"Open a dashboard session in the terminal."`
	Config configCmd `cmd:"" help:"Manage the configuration file."`
}

type serveCmd struct {
	Listen  string `help:"Override the listen address from the config."`
	NetHTTP bool   `name:"net-http" help:"Serve with net/http instead of the fiber router."`
}

type tuiCmd struct {
	Interval time.Duration `help:"Override the carousel interval."`
}

type configCmd struct {
	Init configInitCmd `cmd:"" help:"Write the default configuration."`
}

type configInitCmd struct {
	Path      string `arg:"" type:"path" default:"eventdash.yaml" help:"Destination file."`
	Overwrite bool   `help:"Replace an existing file."`
}

func main() {
	var app cli
	ctx := kong.Parse(&app,
		kong.Name("eventdash"),
		kong.Description("Event management dashboard."),
		kong.UsageOnError(),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.Bind(&app.globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (g *globals) load() (*dashboard.Config, error) {
	if g.Config == "" {
		return dashboard.DefaultConfig(), nil
	}
	return dashboard.LoadConfig(g.Config)
}

func (g *globals) logger(out io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if g.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(out, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(out, handlerOpts))
}

func (cmd *serveCmd) Run(ctx context.Context, g *globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Listen != "" {
		cfg.Listen = cmd.Listen
	}
	logger := g.logger(os.Stderr)
	telemetry := dashboard.NewSlogTelemetry(logger)
	broadcast := dashboard.NewBroadcastHook()

	opts := cfg.ServiceOptions()
	opts.RefreshHook = broadcast
	opts.Telemetry = telemetry
	service := dashboard.NewService(opts)

	renderer, err := dashboard.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("eventdash: templates: %w", err)
	}
	controller := dashboard.NewController(dashboard.ControllerOptions{
		Service:  service,
		Renderer: renderer,
		Links:    dashboard.LinkBuilder{Root: cfg.BasePath},
	})
	executor := httpapi.NewCommandExecutor(service, telemetry)
	state := queries.NewStateQuery(service)
	view := queries.NewViewQuery(service)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go service.RunSweeper(ctx, 0, broadcast)

	var (
		serve    func() error
		shutdown func(context.Context) error
	)
	if cmd.NetHTTP {
		mux := http.NewServeMux()
		handlers := &httpapi.Handlers{Controller: controller, API: executor, State: state, View: view, Broadcast: broadcast}
		handlers.Routes(mux)
		srv := &http.Server{Addr: cfg.Listen, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		serve = func() error {
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
		shutdown = srv.Shutdown
	} else {
		server := router.NewFiberAdapter()
		if err := gorouter.Register(gorouter.Config[*fiber.App]{
			Router:     server.Router(),
			Controller: controller,
			API:        executor,
			State:      state,
			View:       view,
			Broadcast:  broadcast,
			BasePath:   "/",
			Routes:     gorouter.RouteConfig{Page: cfg.BasePath},
		}); err != nil {
			return fmt.Errorf("eventdash: register routes: %w", err)
		}
		serve = func() error { return server.Serve(cfg.Listen) }
		shutdown = server.Shutdown
	}

	errCh := make(chan error, 1)
	go func() { errCh <- serve() }()
	logger.Info("eventdash listening",
		slog.String("addr", cfg.Listen),
		slog.String("path", cfg.BasePath),
		slog.Duration("carousel_interval", cfg.CarouselInterval.Duration),
	)

	select {
	case err := <-errCh:
		service.Close(context.WithoutCancel(ctx))
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	service.Close(shutdownCtx)
	if err := shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("eventdash: shutdown: %w", err)
	}
	logger.Info("eventdash stopped")
	return nil
}

func (cmd *tuiCmd) Run(ctx context.Context, g *globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Interval > 0 {
		cfg.CarouselInterval = dashboard.Duration{Duration: cmd.Interval}
	}
	// The terminal owns stdout, so logs are discarded unless debugging.
	logOut := io.Discard
	if g.LogLevel == "debug" {
		logOut = os.Stderr
	}
	broadcast := dashboard.NewBroadcastHook()
	opts := cfg.ServiceOptions()
	opts.RefreshHook = broadcast
	opts.Telemetry = dashboard.NewSlogTelemetry(g.logger(logOut))
	service := dashboard.NewService(opts)
	defer service.Close(context.WithoutCancel(ctx))

	session, err := service.Mount(ctx)
	if err != nil {
		return err
	}
	events, cancel := broadcast.Subscribe(session.ID())
	defer cancel()

	model := tui.NewModel(ctx, tui.Options{
		Session: session,
		Events:  events,
		Unmount: func(ctx context.Context) error {
			return service.Unmount(ctx, session.ID())
		},
		Theme: opts.Theme,
	})
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (cmd *configInitCmd) Run(_ context.Context) error {
	if !cmd.Overwrite {
		if _, err := os.Stat(cmd.Path); err == nil {
			return fmt.Errorf("eventdash: %s already exists (use --overwrite to replace)", cmd.Path)
		}
	}
	if err := dashboard.WriteConfig(cmd.Path, dashboard.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Wrote %s\n", cmd.Path)
	return nil
}
