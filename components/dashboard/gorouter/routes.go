package gorouter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-eventdash/components/dashboard"
	"github.com/goliatone/go-eventdash/components/dashboard/commands"
	"github.com/goliatone/go-eventdash/components/dashboard/httpapi"
)

// Config wires go-router with the dashboard controller, actions and live stream.
type Config[T any] struct {
	Router     router.Router[T]
	Controller *dashboard.Controller
	API        httpapi.Executor
	State      gocommand.Querier[string, dashboard.UIState]
	View       httpapi.ViewQuerier
	Broadcast  *dashboard.BroadcastHook
	BasePath   string
	Routes     RouteConfig
}

// RouteConfig customizes the relative paths used for dashboard endpoints.
type RouteConfig struct {
	Page        string
	Session     string
	State       string
	Sidebar     string
	Theme       string
	Carousel    string
	SelectEvent string
	CloseDetail string
	WebSocket   string
}

// Register mounts the dashboard routes (HTML, JSON actions, WebSocket) on a
// go-router router. A BasePath of "/" registers the routes without a group.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	group := cfg.Router
	if base != "/" {
		group = cfg.Router.Group(base)
	}

	group.Get(routes.Page, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		id, err := cfg.Controller.Mount(ctx.Context(), &buf)
		if err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader(httpapi.SessionHeader, id)
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.Session, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Controller.RenderTemplate(ctx.Context(), ctx.Param("session"), &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.State, router.WrapHandler(func(ctx router.Context) error {
		view, err := httpapi.QueryView(ctx.Context(), cfg.View, cfg.Controller, ctx.Param("session"))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, view)
	}))

	if cfg.API != nil {
		registerActions(group, cfg.API, cfg.State, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, cfg.API, routes.WebSocket)
	}

	return nil
}

func registerActions[T any](r router.Router[T], api httpapi.Executor, state gocommand.Querier[string, dashboard.UIState], routes RouteConfig) {
	respond := func(ctx router.Context, id string, err error) error {
		if err != nil {
			return respondError(ctx, err)
		}
		if state == nil {
			return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
		}
		snapshot, err := state.Query(ctx.Context(), id)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, snapshot)
	}

	r.Post(routes.Sidebar, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("session")
		return respond(ctx, id, api.ToggleSidebar(ctx.Context(), commands.SessionInput{SessionID: id}))
	}))

	r.Post(routes.Theme, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("session")
		return respond(ctx, id, api.ToggleTheme(ctx.Context(), commands.SessionInput{SessionID: id}))
	}))

	r.Post(routes.Carousel, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("session")
		return respond(ctx, id, api.MoveCarousel(ctx.Context(), commands.CarouselInput{
			SessionID: id,
			Direction: commands.CarouselDirection(ctx.Param("direction")),
		}))
	}))

	r.Post(routes.SelectEvent, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("session")
		eventID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			return respondError(ctx, fmt.Errorf("%w: event id %q", commands.ErrInvalidInput, ctx.Param("id")))
		}
		return respond(ctx, id, api.SelectEvent(ctx.Context(), commands.SelectEventInput{SessionID: id, EventID: eventID}))
	}))

	r.Post(routes.CloseDetail, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("session")
		return respond(ctx, id, api.CloseDetail(ctx.Context(), commands.SessionInput{SessionID: id}))
	}))

	r.Delete(routes.Session, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Unmount(ctx.Context(), commands.SessionInput{SessionID: ctx.Param("session")}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "unmounted"})
	}))
}

// registerWebSocket streams state events of one session. When the socket goes
// away the session is unmounted so its carousel timer is released.
func registerWebSocket[T any](r router.Router[T], hook *dashboard.BroadcastHook, api httpapi.Executor, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		id := ws.Param("session")
		events, cancel := hook.Subscribe(id)
		defer cancel()
		defer func() {
			if api != nil {
				_ = api.Unmount(context.WithoutCancel(ws.Context()), commands.SessionInput{SessionID: id})
			}
		}()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
				if event.Reason == dashboard.ReasonUnmount {
					return ws.Close()
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func respondError(ctx router.Context, err error) error {
	return ctx.JSON(httpapi.StatusFor(err), map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Page == "" {
		routes.Page = "/events/dashboard"
	}
	if routes.Session == "" {
		routes.Session = routes.Page + "/:session"
	}
	if routes.State == "" {
		routes.State = routes.Session + "/" + dashboard.ActionState
	}
	if routes.Sidebar == "" {
		routes.Sidebar = routes.Session + "/" + dashboard.ActionSidebar
	}
	if routes.Theme == "" {
		routes.Theme = routes.Session + "/" + dashboard.ActionTheme
	}
	if routes.Carousel == "" {
		routes.Carousel = routes.Session + "/carousel/:direction"
	}
	if routes.SelectEvent == "" {
		routes.SelectEvent = routes.Session + "/" + dashboard.ActionEvents + "/:id"
	}
	if routes.CloseDetail == "" {
		routes.CloseDetail = routes.Session + "/" + dashboard.ActionCloseDetail
	}
	if routes.WebSocket == "" {
		routes.WebSocket = routes.Session + "/" + dashboard.ActionStream
	}
	return routes
}
