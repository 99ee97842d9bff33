package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/content"
	"github.com/xy-planning-network/cairn/http/resp"
	"github.com/xy-planning-network/cairn/http/session"
	"github.com/xy-planning-network/cairn/locale"
	"github.com/xy-planning-network/cairn/logger"
	"github.com/xy-planning-network/cairn/render"
	"github.com/xy-planning-network/cairn/route"
)

const (
	// RouterName is the name a Router registers itself under.
	RouterName = "router"

	// LangQueryParam picks the language of a single request.
	LangQueryParam = "lang"

	defaultHome = "/home"
)

var _ Service = (*Router)(nil)

// A Router is the Service applying routing rules and rendering content.
// A Router is never mutated after construction.
type Router struct {
	table       route.Table
	maxRewrites int
	home        string

	resolver *content.Resolver
	pipeline *render.Pipeline
	locale   *locale.Locale

	registry  *Registry
	auth      Authenticator
	responder *resp.Responder
	logger    logger.Logger
}

// NewRouter constructs a *Router routing with table, resolving content with res
// and rendering it with pl.
func NewRouter(table route.Table, res *content.Resolver, pl *render.Pipeline, opts ...RouterOptFn) (*Router, error) {
	if res == nil || pl == nil {
		return nil, fmt.Errorf("%w: a router requires a resolver and a pipeline", cairn.ErrMissingData)
	}

	rt := &Router{
		table:       table,
		maxRewrites: route.DefaultMaxRewrites,
		home:        defaultHome,
		resolver:    res,
		pipeline:    pl,
	}

	for _, opt := range opts {
		opt(rt)
	}

	if rt.locale == nil {
		l, err := locale.New("", nil, false)
		if err != nil {
			return nil, err
		}
		rt.locale = l
	}

	if rt.registry == nil {
		rt.registry = NewRegistry()
	}

	if rt.auth == nil {
		rt.auth = SessionAuthenticator{}
	}

	if rt.logger == nil {
		rt.logger = logger.New()
	}

	if rt.responder == nil {
		rt.responder = resp.NewResponder(resp.WithLogger(rt.logger))
	}

	return rt, nil
}

// Registry returns the *Registry r delegates to.
func (rt *Router) Registry() *Registry { return rt.registry }

// Main implements Service.
//
// Main expands the startup template, routes rc through the rules
// and then redirects, delegates or renders the content rc.Path resolves to.
// The startup template is expanded only for a request that has not been delegated yet.
// Delegations are capped by the same limit as rewrites.
func (rt *Router) Main(w http.ResponseWriter, r *http.Request, rc *route.RequestContext) error {
	ctx := r.Context()
	if rc.Hops == 0 {
		if err := rt.pipeline.Startup(ctx); err != nil {
			return fmt.Errorf("startup template: %w", err)
		}
	}

	out, err := rt.table.Route(rc, rt.maxRewrites, rt.trace(r))
	if err != nil {
		return err
	}

	switch out.Kind {
	case route.ActionRedirect:
		return rt.responder.Redirect(w, r, resp.Url(out.URL))

	case route.ActionDelegate:
		if rc.Hops >= rt.maxRewrites {
			return fmt.Errorf("%w: %d delegations reached at %q", route.ErrRewriteLoop, rc.Hops, rc.Path)
		}

		rc.Hops++
		if err := rt.registry.Delegate(out.Service, w, r, rc); err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				rt.logger.Error(err.Error(), &logger.LogContext{Request: r, Error: err})
			}
			return err
		}

		return nil
	}

	target := rc.Path
	if target == "" || target == "/" {
		target = rt.home
	}

	sel, err := rt.resolver.Resolve(target, rt.auth.Authenticated(r))
	if err != nil {
		return err
	}

	if sel.Fallback() {
		rt.logger.Debug("content fell back", &logger.LogContext{
			Request: r,
			Data:    map[string]any{"source": sel.Source, "target": sel.Target},
		})
	}

	lang := rt.locale.Detect(rc.Query[LangQueryParam], sessionLang(r), r.Header.Get("Accept-Language"))
	b, err := rt.pipeline.Render(ctx, render.Page{
		Selection:      sel,
		EndpointPrefix: rc.EndpointPrefix,
		Lang:           lang.String(),
		LangSegment:    rt.locale.Segment(lang),
		Query:          rc.Query,
	})
	if err != nil {
		return err
	}

	return rt.responder.Html(w, r, resp.Body(b))
}

// trace logs every rule applied to r.
func (rt *Router) trace(r *http.Request) route.Tracer {
	return func(rule route.Rule, m route.Match, out route.Outcome) {
		data := map[string]any{
			"pattern": rule.Pattern,
			"action":  out.Kind.String(),
			"matched": m.Prefix,
		}

		switch out.Kind {
		case route.ActionDelegate:
			data["service"] = out.Service
			data["path"] = out.Path
		case route.ActionRedirect:
			data["url"] = out.URL
		default:
			data["path"] = out.Path
		}

		rt.logger.Debug("rule applied", &logger.LogContext{Request: r, Data: data})
	}
}

func sessionLang(r *http.Request) string {
	s, ok := r.Context().Value(cairn.SessionKey).(session.Session)
	if !ok {
		return ""
	}

	return s.Lang()
}

// A RouterOptFn configures a *Router when constructing it.
type RouterOptFn func(*Router)

// WithAuthenticator sets how a Router tells authenticated requests apart.
// Without it, a SessionAuthenticator is used.
func WithAuthenticator(a Authenticator) RouterOptFn {
	return func(rt *Router) { rt.auth = a }
}

// WithHome sets the path an empty request path resolves to.
func WithHome(home string) RouterOptFn {
	return func(rt *Router) {
		if home != "" {
			rt.home = home
		}
	}
}

// WithLocale sets the languages a Router detects.
func WithLocale(l *locale.Locale) RouterOptFn {
	return func(rt *Router) { rt.locale = l }
}

// WithLogger sets the logger.Logger a Router logs through.
func WithLogger(l logger.Logger) RouterOptFn {
	return func(rt *Router) { rt.logger = l }
}

// WithMaxRewrites bounds chained rewrites.
func WithMaxRewrites(n int) RouterOptFn {
	return func(rt *Router) {
		if n > 0 {
			rt.maxRewrites = n
		}
	}
}

// WithRegistry sets the *Registry a Router delegates to.
func WithRegistry(reg *Registry) RouterOptFn {
	return func(rt *Router) { rt.registry = reg }
}

// WithResponder sets the *resp.Responder writing redirects and content.
func WithResponder(d *resp.Responder) RouterOptFn {
	return func(rt *Router) { rt.responder = d }
}
