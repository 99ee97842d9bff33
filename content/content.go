// Package content selects the file a routed path renders,
// given whether the request is authenticated.
//
// Every content directory holds up to three variants:
// private.html for authenticated requests, public.html for anonymous ones,
// and index.html for both.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

const (
	PrivateFile = "private.html"
	PublicFile  = "public.html"
	GeneralFile = "index.html"

	DefaultLoginPath    = "/login"
	DefaultNotFoundPath = "/404"
)

var (
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
)

// A Selection is the file chosen for a request.
type Selection struct {
	// File is the path of the chosen file, relative to the content root.
	File string

	// Target is the path File was resolved from.
	Target string

	// Source is the path originally requested.
	// Source differs from Target only when resolution fell back to the login or not found path.
	Source string
}

// Fallback reports whether s was resolved from a fallback path.
func (s Selection) Fallback() bool { return s.Source != s.Target }

type verdict int

const (
	found verdict = iota
	missing
	needsLogin
	denied
)

// A Resolver selects content files from a content root.
type Resolver struct {
	fsys     fs.FS
	login    string
	notFound string
}

// A ResolverOptFn configures a *Resolver when constructing it.
type ResolverOptFn func(*Resolver)

// WithLoginPath sets the path resolved when an anonymous request reaches private-only content.
func WithLoginPath(p string) ResolverOptFn {
	return func(res *Resolver) { res.login = p }
}

// WithNotFoundPath sets the path resolved when no variant is viewable.
func WithNotFoundPath(p string) ResolverOptFn {
	return func(res *Resolver) { res.notFound = p }
}

// NewResolver constructs a *Resolver reading from fsys.
func NewResolver(fsys fs.FS, opts ...ResolverOptFn) *Resolver {
	res := &Resolver{fsys: fsys, login: DefaultLoginPath, notFound: DefaultNotFoundPath}
	for _, opt := range opts {
		opt(res)
	}

	return res
}

// Resolve selects the variant for target.
//
// When target has no viewable variant, Resolve falls back once to the login path,
// if target is private-only and the request is anonymous, and then once to the not found path.
// When the not found path cannot be resolved either,
// Resolve returns ErrNotFound, or ErrAccessDenied for an authenticated request with no viewable variant,
// naming target.
func (res *Resolver) Resolve(target string, authed bool) (Selection, error) {
	var (
		source         string
		triedNotFound  bool
		deniedOriginal bool
	)

	cur := target
	for {
		file, v := res.variant(cur, authed)
		if v == found {
			if source == "" {
				source = cur
			}

			return Selection{File: file, Target: cur, Source: source}, nil
		}

		first := source == ""
		if first {
			source = target
			deniedOriginal = v == denied
		}

		switch {
		case first && v == needsLogin && cur != res.login:
			cur = res.login
		case !triedNotFound && cur != res.notFound:
			triedNotFound = true
			cur = res.notFound
		default:
			if deniedOriginal {
				return Selection{}, fmt.Errorf("%w: %s", ErrAccessDenied, source)
			}

			return Selection{}, fmt.Errorf("%w: %s", ErrNotFound, source)
		}
	}
}

// variant applies the selection policy to the directory named by target.
func (res *Resolver) variant(target string, authed bool) (string, verdict) {
	dir := strings.Trim(target, "/")
	if dir == "" {
		dir = "."
	}

	private := res.exists(dir, PrivateFile)
	public := res.exists(dir, PublicFile)
	general := res.exists(dir, GeneralFile)

	if authed {
		switch {
		case private:
			return join(dir, PrivateFile), found
		case general:
			return join(dir, GeneralFile), found
		default:
			return "", denied
		}
	}

	switch {
	case public:
		return join(dir, PublicFile), found
	case general:
		return join(dir, GeneralFile), found
	case private:
		return "", needsLogin
	default:
		return "", missing
	}
}

func (res *Resolver) exists(dir, name string) bool {
	info, err := fs.Stat(res.fsys, join(dir, name))
	return err == nil && !info.IsDir()
}

func join(dir, name string) string { return path.Join(dir, name) }
