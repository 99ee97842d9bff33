/*
Package ranger initializes and manages a cairn app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].
[New] loads the routing configuration, builds the [gateway.Router] applying it,
registers that Router under [gateway.RouterName] and mounts it behind
the default middleware stack on a [router.Router].

[*Ranger.Guide] begins a cairn app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000).
Stop that web server with [*Ranger.Shutdown],
call the context.CancelFunc returned by [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a cairn app through environment variables and [RangerOption]s.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: a short title for the application, used to name the session cookie; default: cairn
  - ASSETS_DIR: the directory static assets are served from; default: resources/assets
  - ASSETS_PATH: the path prefix static assets are served under; default: /assets/
  - BASE_URL: the URL redirects fall back to; default: /
  - CONTENT_DIR: the directory, relative to SITE_DIR, holding content; default: resources/content
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENDPOINT_PREFIX: the base URL the router is served under; default: /
  - ENVIRONMENT: the environment the application is running in; cf. [cairn.Environment]
  - FOLDER_CACHE: "memory" or "redis" to cache folder.conf files; default: no cache
  - FOLDER_CACHE_TTL: how long, as understood by [time.ParseDuration], Redis keeps a folder.conf; default: 5m
  - JWT_KEY: a hex-encoded HMAC key; when set, bearer tokens signed with it authenticate requests
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - REDIS_ADDR: the host:port of a Redis server; when set, sessions are kept in Redis
  - REDIS_PASSWORD: the password for authenticating to REDIS_ADDR
  - ROUTER_CONFIG: the routing configuration file; default: router.yaml
  - SENTRY_DSN: when set, warnings and errors are reported to Sentry
  - SERVER_IDLE_TIMEOUT: the timeout for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
  - SITE_DIR: the directory layouts and content are read from; default: the working directory
*/
package ranger
