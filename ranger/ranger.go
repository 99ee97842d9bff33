package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/config"
	"github.com/xy-planning-network/cairn/gateway"
	"github.com/xy-planning-network/cairn/http/resp"
	"github.com/xy-planning-network/cairn/http/router"
	"github.com/xy-planning-network/cairn/http/session"
	"github.com/xy-planning-network/cairn/logger"
	"github.com/xy-planning-network/cairn/render"
)

// A Ranger manages and exposes all components of a cairn app to one another.
type Ranger struct {
	*router.Router

	ctx    context.Context
	cancel context.CancelFunc

	cfg        *config.Config
	cfgFile    string
	contentDir string
	port       string
	site       fs.FS

	cache     render.FolderCache
	env       cairn.Environment
	l         logger.Logger
	registry  *gateway.Registry
	responder *resp.Responder
	sessions  session.SessionStorer
	srv       *http.Server
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// Once every option ran, New loads the routing configuration,
// builds the gateway Router, registers it under [gateway.RouterName]
// and mounts it behind the middleware stack.
func New(opts ...RangerOption) (*Ranger, error) {
	r := &Ranger{registry: gateway.NewRegistry()}
	followups := make([]OptFollowup, 0)

	// NOTE: some options require data from others,
	// such as a Service needing the Router it may shadow to be registered first.
	// Those return an OptFollowup called once the *Ranger is otherwise complete.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.assemble(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	return r, nil
}

func (r *Ranger) EmitConfig() config.Config               { return *r.cfg }
func (r *Ranger) EmitLogger() logger.Logger               { return r.l }
func (r *Ranger) EmitRegistry() *gateway.Registry         { return r.registry }
func (r *Ranger) EmitSessionStore() session.SessionStorer { return r.sessions }

// Handler is the http.Handler the web server uses.
func (r *Ranger) Handler() http.Handler { return r.srv.Handler }

// Cancel exposes the context.CancelFunc stopping Guide.
func (r *Ranger) Cancel() context.CancelFunc { return r.cancel }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			r.cancel()
		}
	}()

	<-r.ctx.Done()
	return r.Shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		r.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

// assemble fills in every component no option supplied
// and wires them into the Router and http.Server.
func (r *Ranger) assemble() error {
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.l == nil {
		r.l = defaultLogger(r.env)
	}

	if r.cfg == nil {
		cfg, err := config.Load(r.cfgFile)
		if err != nil {
			return err
		}
		r.cfg = &cfg
	}
	r.l.Debug(fmt.Sprintf("using config with %d rules", len(r.cfg.Router.Rules)), nil)

	if r.sessions == nil {
		store, err := defaultSessionStore(r.env, cairn.EnvVarOrString(appTitleEnvVar, defaultAppTitle))
		if err != nil {
			return err
		}
		r.sessions = store
	}

	if r.cache == nil {
		cache, err := defaultFolderCache()
		if err != nil {
			return err
		}
		r.cache = cache
	}

	if r.responder == nil {
		r.responder = defaultResponder(r.l)
	}

	rt, err := defaultGatewayRouter(r)
	if err != nil {
		return err
	}

	if err := r.registry.Register(gateway.RouterName, rt); err != nil {
		return err
	}

	r.Router = defaultRouter(r)
	if r.srv == nil {
		r.srv = defaultServer(r.ctx, r.port)
	}
	r.srv.Handler = handlers.ProxyHeaders(r.Router)

	return nil
}
