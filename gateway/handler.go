package gateway

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/cairn/http/resp"
	"github.com/xy-planning-network/cairn/logger"
	"github.com/xy-planning-network/cairn/route"
)

// DefaultEndpointPrefix seeds the endpoint prefix of every request.
const DefaultEndpointPrefix = "/"

// A Handler serves HTTP requests by delegating them to the entry Service of a Registry.
type Handler struct {
	registry  *Registry
	entry     string
	ep        string
	responder *resp.Responder
}

// NewHandler constructs a *Handler delegating to the Service registered under RouterName.
func NewHandler(reg *Registry, opts ...HandlerOptFn) *Handler {
	h := &Handler{registry: reg, entry: RouterName, ep: DefaultEndpointPrefix}
	for _, opt := range opts {
		opt(h)
	}

	if h.responder == nil {
		h.responder = resp.NewResponder(resp.WithLogger(logger.New()))
	}

	return h
}

// ServeHTTP implements http.Handler.
//
// The path handed to the entry Service is relative to the endpoint prefix.
// Errors returned by the Service are written with the status StatusFor reports.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rc := route.NewRequestContext(relPath(r.URL.Path, h.ep), h.ep, r.URL.Query())

	if err := h.registry.Delegate(h.entry, w, r, rc); err != nil {
		h.responder.Err(w, r, err,
			resp.Code(StatusFor(err)),
			resp.Data(map[string]any{"path": rc.Path, "endpoint": rc.EndpointPrefix}),
		)
	}
}

// relPath strips ep from p, only at a segment boundary.
func relPath(p, ep string) string {
	base := strings.TrimRight(ep, "/")
	switch {
	case base == "":
	case p == base:
		p = "/"
	case strings.HasPrefix(p, base+"/"):
		p = strings.TrimPrefix(p, base)
	}

	return "/" + strings.TrimLeft(p, "/")
}

// A HandlerOptFn configures a *Handler when constructing it.
type HandlerOptFn func(*Handler)

// WithEndpointPrefix sets the endpoint prefix every request starts from.
func WithEndpointPrefix(ep string) HandlerOptFn {
	return func(h *Handler) {
		if ep != "" {
			h.ep = ep
		}
	}
}

// WithEntry sets the name of the Service every request is delegated to first.
func WithEntry(name string) HandlerOptFn {
	return func(h *Handler) {
		if name != "" {
			h.entry = name
		}
	}
}

// WithHandlerResponder sets the *resp.Responder writing errors.
func WithHandlerResponder(d *resp.Responder) HandlerOptFn {
	return func(h *Handler) { h.responder = d }
}
