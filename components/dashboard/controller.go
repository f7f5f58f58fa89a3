package dashboard

import (
	"context"
	"errors"
	"io"
)

const defaultTemplate = "dashboard"

type pageService interface {
	Mount(ctx context.Context) (*Session, error)
	Unmount(ctx context.Context, id string) error
	View(ctx context.Context, id string, links LinkBuilder) (DashboardView, error)
}

// ControllerOptions wires the controller collaborators.
type ControllerOptions struct {
	Service  pageService
	Renderer Renderer
	Template string
	Links    LinkBuilder
}

// Controller orchestrates page rendering for the HTTP transports.
type Controller struct {
	service  pageService
	renderer Renderer
	template string
	links    LinkBuilder
}

// NewController wires the service and renderer into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = defaultTemplate
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		template: opts.Template,
		links:    opts.Links,
	}
}

// Links exposes the URL builder used for rendered actions.
func (c *Controller) Links() LinkBuilder {
	return c.links
}

// Mount creates a new session and renders its page. A session whose page
// fails to render is unmounted before the error is returned.
func (c *Controller) Mount(ctx context.Context, out io.Writer) (string, error) {
	if c.service == nil {
		return "", errors.New("eventdash: controller requires service")
	}
	session, err := c.service.Mount(ctx)
	if err != nil {
		return "", err
	}
	if err := c.RenderTemplate(ctx, session.ID(), out); err != nil {
		if unmountErr := c.service.Unmount(context.WithoutCancel(ctx), session.ID()); unmountErr != nil {
			return "", errors.Join(err, unmountErr)
		}
		return "", err
	}
	return session.ID(), nil
}

// RenderTemplate renders the page of an existing session.
func (c *Controller) RenderTemplate(ctx context.Context, sessionID string, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("eventdash: controller requires renderer")
	}
	view, err := c.View(ctx, sessionID)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(c.template, TemplatePayload(view), out)
	return err
}

// View resolves the view of a session.
func (c *Controller) View(ctx context.Context, sessionID string) (DashboardView, error) {
	if c.service == nil {
		return DashboardView{}, errors.New("eventdash: controller requires service")
	}
	return c.service.View(ctx, sessionID, c.links)
}

// TemplatePayload is the data handed to the template renderer.
func TemplatePayload(view DashboardView) map[string]any {
	return map[string]any{
		"view":       view,
		"title":      view.Title,
		"session_id": view.SessionID,
		"theme":      view.Theme,
	}
}
