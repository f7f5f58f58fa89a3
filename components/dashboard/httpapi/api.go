package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-eventdash/components/dashboard"
	"github.com/goliatone/go-eventdash/components/dashboard/commands"
	"github.com/goliatone/go-eventdash/components/dashboard/queries"
)

// SessionHeader carries the id of a freshly mounted session.
const SessionHeader = "X-Eventdash-Session"

// Handlers exposes the dashboard over net/http.
type Handlers struct {
	Controller *dashboard.Controller
	API        Executor
	State      gocommand.Querier[string, dashboard.UIState]
	View       ViewQuerier
	Broadcast  *dashboard.BroadcastHook
}

// ViewQuerier resolves the rendered view of a session.
type ViewQuerier = gocommand.Querier[queries.ViewInput, dashboard.DashboardView]

// QueryView resolves a session view through the query when one is wired,
// falling back to the controller. Action links always come from the controller.
func QueryView(ctx context.Context, query ViewQuerier, controller *dashboard.Controller, sessionID string) (dashboard.DashboardView, error) {
	if query == nil {
		return controller.View(ctx, sessionID)
	}
	return query.Query(ctx, queries.ViewInput{SessionID: sessionID, Links: controller.Links()})
}

// Routes registers every endpoint below the controller's root path.
func (h *Handlers) Routes(mux *http.ServeMux) {
	root := h.Controller.Links().Mount()
	session := root + "/{session}"

	mux.HandleFunc("GET "+root, h.HandleMount)
	mux.HandleFunc("GET "+session, h.HandlePage)
	mux.HandleFunc("DELETE "+session, h.HandleUnmount)
	mux.HandleFunc("GET "+session+"/"+dashboard.ActionState, h.HandleState)
	mux.HandleFunc("GET "+session+"/"+dashboard.ActionStream, h.HandleStream)
	mux.HandleFunc("GET "+session+"/"+dashboard.ActionEventStream, h.HandleEventStream)
	mux.HandleFunc("POST "+session+"/"+dashboard.ActionSidebar, h.HandleSidebar)
	mux.HandleFunc("POST "+session+"/"+dashboard.ActionTheme, h.HandleTheme)
	mux.HandleFunc("POST "+session+"/carousel/{direction}", h.HandleCarousel)
	mux.HandleFunc("POST "+session+"/"+dashboard.ActionEvents+"/{id}", h.HandleSelectEvent)
	mux.HandleFunc("POST "+session+"/"+dashboard.ActionCloseDetail, h.HandleCloseDetail)
}

// HandleMount mounts a new session and renders its page. Every load of the
// mount URL starts from the default state.
func (h *Handlers) HandleMount(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	id, err := h.Controller.Mount(r.Context(), &buf)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set(SessionHeader, id)
	writeHTML(w, buf.Bytes())
}

// HandlePage re-renders an existing session.
func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Controller.RenderTemplate(r.Context(), r.PathValue("session"), &buf); err != nil {
		writeError(w, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// HandleState returns the JSON view of a session.
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	view, err := QueryView(r.Context(), h.View, h.Controller, r.PathValue("session"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) HandleSidebar(w http.ResponseWriter, r *http.Request) {
	input := commands.SessionInput{SessionID: r.PathValue("session")}
	h.run(w, r, input.SessionID, func(ctx context.Context) error {
		return h.API.ToggleSidebar(ctx, input)
	})
}

func (h *Handlers) HandleTheme(w http.ResponseWriter, r *http.Request) {
	input := commands.SessionInput{SessionID: r.PathValue("session")}
	h.run(w, r, input.SessionID, func(ctx context.Context) error {
		return h.API.ToggleTheme(ctx, input)
	})
}

func (h *Handlers) HandleCarousel(w http.ResponseWriter, r *http.Request) {
	input := commands.CarouselInput{
		SessionID: r.PathValue("session"),
		Direction: commands.CarouselDirection(r.PathValue("direction")),
	}
	h.run(w, r, input.SessionID, func(ctx context.Context) error {
		return h.API.MoveCarousel(ctx, input)
	})
}

func (h *Handlers) HandleSelectEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: event id %q", commands.ErrInvalidInput, r.PathValue("id")))
		return
	}
	input := commands.SelectEventInput{SessionID: r.PathValue("session"), EventID: eventID}
	h.run(w, r, input.SessionID, func(ctx context.Context) error {
		return h.API.SelectEvent(ctx, input)
	})
}

func (h *Handlers) HandleCloseDetail(w http.ResponseWriter, r *http.Request) {
	input := commands.SessionInput{SessionID: r.PathValue("session")}
	h.run(w, r, input.SessionID, func(ctx context.Context) error {
		return h.API.CloseDetail(ctx, input)
	})
}

// HandleUnmount stops the session's carousel and forgets it.
func (h *Handlers) HandleUnmount(w http.ResponseWriter, r *http.Request) {
	if h.API == nil {
		writeError(w, errCommandUnavailable)
		return
	}
	if err := h.API.Unmount(r.Context(), commands.SessionInput{SessionID: r.PathValue("session")}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleStream pushes the session's state events over a WebSocket. Closing the
// socket unmounts the session.
func (h *Handlers) HandleStream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session")
	if h.Broadcast == nil {
		writeError(w, errors.New("eventdash: live updates are disabled"))
		return
	}
	if h.State != nil {
		if _, err := h.State.Query(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
	}
	h.Broadcast.ServeWebSocket(w, r, id)
	if h.API != nil {
		// The session may already be gone when the stream ended on unmount.
		_ = h.API.Unmount(context.WithoutCancel(r.Context()), commands.SessionInput{SessionID: id})
	}
}

// HandleEventStream pushes the session's state events as Server-Sent Events.
// Unlike the WebSocket stream it leaves the session mounted when the client
// goes away.
func (h *Handlers) HandleEventStream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session")
	if h.Broadcast == nil {
		writeError(w, errors.New("eventdash: live updates are disabled"))
		return
	}
	if h.State != nil {
		if _, err := h.State.Query(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
	}
	h.Broadcast.ServeSSE(w, r, id)
}

func (h *Handlers) run(w http.ResponseWriter, r *http.Request, sessionID string, action func(context.Context) error) {
	if h.API == nil {
		writeError(w, errCommandUnavailable)
		return
	}
	if err := action(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	if h.State == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	state, err := h.State.Query(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}
