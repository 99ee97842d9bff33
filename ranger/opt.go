package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/config"
	"github.com/xy-planning-network/cairn/gateway"
	"github.com/xy-planning-network/cairn/http/session"
	"github.com/xy-planning-network/cairn/logger"
	"github.com/xy-planning-network/cairn/render"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithService is an example of the second.
// The Service is registered only when the closure it returns is called,
// after the gateway Router is registered.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithConfig uses cfg instead of loading the routing configuration from a file.
func WithConfig(cfg config.Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.cfg = &cfg
		return nil, nil
	}
}

// WithConfigFile sets the path of the routing configuration file,
// or, reads it from the ROUTER_CONFIG environment variable.
//
// If both are empty, DefaultConfigFile is used.
func WithConfigFile(fp string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if fp == "" {
			fp = cairn.EnvVarOrString(ConfigFileEnvVar, DefaultConfigFile)
		}

		rng.cfgFile = fp
		return nil, nil
	}
}

// WithContentDir sets the directory, relative to the site, holding content,
// or, reads it from the CONTENT_DIR environment variable.
//
// If both are empty, DefaultContentDir is used.
func WithContentDir(dir string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if dir == "" {
			dir = cairn.EnvVarOrString(ContentDirEnvVar, DefaultContentDir)
		}

		rng.contentDir = strings.Trim(dir, "/")
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the cairn app.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", ErrNotValid)
		}

		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := cairn.Environment(strings.ToUpper(envVar))
		if err := e.Valid(); err != nil {
			e = cairn.EnvVarOrEnv(environmentEnvVar, cairn.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithFolderCache caches the folder.conf files read when rendering in c.
func WithFolderCache(c render.FolderCache) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.cache = c
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the cairn app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		l.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithPort sets the port the default web server listens on.
// WithServer overrides it.
func WithPort(port string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.port = port
		return nil, nil
	}
}

// WithServer exposes the *http.Server to the cairn app.
// Its Handler is replaced by the Ranger's.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.srv = s
		return nil, nil
	}
}

// WithService constructs a followup option that, when called,
// registers s under name so routing rules can delegate to it.
func WithService(name string, s gateway.Service) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if err := rng.registry.Register(name, s); err != nil {
				return err
			}

			rng.l.Debug(fmt.Sprintf("registered service %q %T", name, s), nil)
			return nil
		}, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the cairn app.
func WithSessionStore(store session.SessionStorer) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.sessions = store
		return nil, nil
	}
}

// WithSite sets the file system templates, layouts and content are read from,
// or, opens the directory the SITE_DIR environment variable names.
//
// If both are empty, the working directory is used.
func WithSite(fsys fs.FS) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if fsys == nil {
			fsys = os.DirFS(cairn.EnvVarOrString(siteDirEnvVar, defaultSiteDir))
		}

		rng.site = fsys
		return nil, nil
	}
}
