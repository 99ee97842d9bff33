package ranger

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/content"
	"github.com/xy-planning-network/cairn/gateway"
	"github.com/xy-planning-network/cairn/http/middleware"
	"github.com/xy-planning-network/cairn/http/resp"
	"github.com/xy-planning-network/cairn/http/router"
	"github.com/xy-planning-network/cairn/http/session"
	"github.com/xy-planning-network/cairn/locale"
	"github.com/xy-planning-network/cairn/logger"
	"github.com/xy-planning-network/cairn/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// App metadata
	appTitleEnvVar  = "APP_TITLE"
	defaultAppTitle = "cairn"
	BaseURLEnvVar   = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Routing defaults
	ConfigFileEnvVar      = "ROUTER_CONFIG"
	DefaultConfigFile     = "router.yaml"
	ContentDirEnvVar      = "CONTENT_DIR"
	DefaultContentDir     = "resources/content"
	siteDirEnvVar         = "SITE_DIR"
	defaultSiteDir        = "."
	endpointPrefixEnvVar  = "ENDPOINT_PREFIX"
	assetsPathEnvVar      = "ASSETS_PATH"
	assetsDirEnvVar       = "ASSETS_DIR"
	corsOriginEnvVar      = "CORS_ORIGIN"
	jwtKeyEnvVar          = "JWT_KEY"
	folderCacheEnvVar     = "FOLDER_CACHE"
	folderCacheTTLEnvVar  = "FOLDER_CACHE_TTL"
	defaultFolderCacheTTL = 5 * time.Minute
	folderCacheMemory     = "memory"
	folderCacheRedis      = "redis"

	// Redis defaults
	redisAddrEnvVar = "REDIS_ADDR"
	redisPassEnvVar = "REDIS_PASSWORD"

	// Web server defaults
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
	sessionMaxAge           = 3600 * 24 * 7
)

// defaultOpts are the options New applies before any passed in.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithContext(context.Background()),
		WithEnv(""),
		WithConfigFile(""),
		WithContentDir(""),
		WithSite(nil),
	}
}

// defaultLogger constructs a [logger.Logger] configured for use in the application.
func defaultLogger(env cairn.Environment) logger.Logger {
	l := logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(logger.NewLogLevel(os.Getenv(logLevelEnvVar))),
	)
	l.Debug("setting up app logger", nil)

	return l
}

// defaultSessionStore constructs a SessionStorer to be used for storing session data.
//
// defaultSessionStore relies on these env vars:
//   - APP_TITLE
//   - SESSION_AUTH_KEY
//   - SESSION_ENCRYPTION_KEY
//   - REDIS_ADDR & REDIS_PASSWORD, when sessions are kept in Redis
//
// Both KEY env vars be valid hex encoded values; cf. [encoding/hex].
func defaultSessionStore(env cairn.Environment, appName string) (session.SessionStorer, error) {
	appName = cases.Lower(language.English).String(appName)
	appName = regexp.MustCompile(`[,':]`).ReplaceAllString(appName, "")
	appName = regexp.MustCompile(`\s`).ReplaceAllString(appName, "-")

	cfg := session.Config{
		AuthKey:     os.Getenv(SessionAuthKeyEnvVar),
		EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
		Env:         env,
		SessionName: "cairn-" + appName,
	}

	args := []session.ServiceOpt{session.WithMaxAge(sessionMaxAge)}
	if addr := os.Getenv(redisAddrEnvVar); addr != "" {
		args = append(args, session.WithRedis(addr, os.Getenv(redisPassEnvVar)))
	} else {
		args = append(args, session.WithCookie())
	}

	return session.NewStoreService(cfg, args...)
}

// defaultFolderCache constructs the [render.FolderCache] FOLDER_CACHE names.
// By default, folder.conf files are read on every render.
func defaultFolderCache() (render.FolderCache, error) {
	switch kind := strings.ToLower(os.Getenv(folderCacheEnvVar)); kind {
	case "":
		return nil, nil
	case folderCacheMemory:
		return render.NewMapFolderCache(), nil
	case folderCacheRedis:
		addr := os.Getenv(redisAddrEnvVar)
		if addr == "" {
			return nil, fmt.Errorf("%w: %s requires %s", ErrNotValid, folderCacheEnvVar, redisAddrEnvVar)
		}

		opts := &redis.Options{Addr: addr, Password: os.Getenv(redisPassEnvVar)}
		ttl := cairn.EnvVarOrDuration(folderCacheTTLEnvVar, defaultFolderCacheTTL)
		return render.NewRedisFolderCache(opts, ttl), nil
	default:
		return nil, fmt.Errorf("%w: %s %q", ErrNotValid, folderCacheEnvVar, kind)
	}
}

// defaultResponder configures the [*resp.Responder] shared by the gateway.
func defaultResponder(l logger.Logger) *resp.Responder {
	return resp.NewResponder(
		resp.WithLogger(l),
		resp.WithRootUrl(cairn.EnvVarOrString(BaseURLEnvVar, "/")),
	)
}

// defaultParser constructs a *render.Parser reading templates from the site.
//
// defaultParser makes available these functions in a template:
//
//   - "env"
//   - "nonce"
//   - "isDevelopment"
//   - "isStaging"
//   - "isProduction"
func defaultParser(r *Ranger) *render.Parser {
	d := r.cfg.Router.Delims
	p := render.NewParser(r.site, render.WithDelims(d[0], d[1]))
	p.AddFn(render.Env(r.env))
	p.AddFn(render.Nonce())
	p.AddFn("isDevelopment", r.env.IsDevelopment)
	p.AddFn("isStaging", r.env.IsStaging)
	p.AddFn("isProduction", r.env.IsProduction)

	return p
}

// defaultAuthenticator accepts a session holding a user
// or, when JWT_KEY is set, a bearer token signed with that hex-encoded key.
func defaultAuthenticator() (gateway.Authenticator, error) {
	auth := gateway.AnyAuthenticator{gateway.SessionAuthenticator{}}
	if raw := os.Getenv(jwtKeyEnvVar); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not valid hex: %s", ErrNotValid, jwtKeyEnvVar, err)
		}
		auth = append(auth, gateway.NewJWTAuthenticator(key))
	}

	return auth, nil
}

// defaultGatewayRouter builds the [*gateway.Router] applying the routing configuration.
func defaultGatewayRouter(r *Ranger) (*gateway.Router, error) {
	rs := r.cfg.Router
	table, err := rs.Table()
	if err != nil {
		return nil, err
	}

	loc, err := locale.New(r.cfg.Locale.Lang, r.cfg.Locale.Supported, rs.ShowDefaultLang)
	if err != nil {
		return nil, err
	}

	popts := []render.PipelineOptFn{render.WithParser(defaultParser(r))}
	if r.cache != nil {
		popts = append(popts, render.WithFolderCache(r.cache))
	}
	pl := render.NewPipeline(r.site, r.contentDir, popts...)

	cfs, err := pl.Content()
	if err != nil {
		return nil, err
	}
	res := content.NewResolver(cfs,
		content.WithLoginPath(rs.LoginPath),
		content.WithNotFoundPath(rs.NotFoundPath),
	)

	auth, err := defaultAuthenticator()
	if err != nil {
		return nil, err
	}

	return gateway.NewRouter(table, res, pl,
		gateway.WithAuthenticator(auth),
		gateway.WithHome(rs.Home),
		gateway.WithLocale(loc),
		gateway.WithLogger(r.l),
		gateway.WithMaxRewrites(rs.MaxRewrites),
		gateway.WithRegistry(r.registry),
		gateway.WithResponder(r.responder),
	)
}

// defaultRouter constructs a [*router.Router] serving assets
// and funneling every other request through the middleware stack into the gateway.
func defaultRouter(r *Ranger) *router.Router {
	route := router.New(r.env)
	route.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.LogRequest(r.l),
		middleware.CORS(os.Getenv(corsOriginEnvVar)),
		middleware.InjectSession(r.sessions),
	)
	route.Assets(os.Getenv(assetsPathEnvVar), os.Getenv(assetsDirEnvVar))
	route.CatchAll(gateway.NewHandler(r.registry,
		gateway.WithEndpointPrefix(os.Getenv(endpointPrefixEnvVar)),
		gateway.WithHandlerResponder(r.responder),
	))

	return route
}

// defaultServer constructs a default [*http.Server] listening on port,
// or, the PORT environment variable.
func defaultServer(ctx context.Context, port string) *http.Server {
	if port == "" {
		port = cairn.EnvVarOrString(portEnvVar, DefaultPort)
	}
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  cairn.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  cairn.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: cairn.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
