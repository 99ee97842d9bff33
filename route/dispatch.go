package route

import (
	"fmt"
	"strings"
)

// DefaultMaxRewrites bounds chained rewrites when a Table is routed with a non-positive limit.
const DefaultMaxRewrites = 16

// An Outcome is the result of applying a Rule to a RequestContext.
type Outcome struct {
	Kind ActionKind

	// Service is the name of the service to delegate to.
	Service string

	// URL is the redirect destination.
	URL string

	// Path is the rewritten path.
	Path string
}

// Dispatch applies rule to rc, whose Path m was matched against.
//
// Redirects return the expanded expression untouched.
// Delegations and rewrites merge the query of the expanded expression into rc.Query.
// A delegation moves rc.Path below the service name and extends rc.EndpointPrefix by the match.
// A rewrite replaces rc.Path.
func Dispatch(rc *RequestContext, rule Rule, m Match) Outcome {
	remainder := strings.TrimPrefix(rc.Path, m.Prefix)
	value := rule.Action.Expr.Eval(m, remainder)

	if rule.Action.Kind == ActionRedirect {
		return Outcome{Kind: ActionRedirect, URL: value}
	}

	path, query, _ := strings.Cut(value, "?")
	rc.MergeQuery(query)

	if rule.Action.Kind == ActionDelegate {
		name, rel, _ := strings.Cut(strings.TrimLeft(path, "/"), "/")
		if !rule.Action.Expr.UsesRemainder() {
			rel += remainder
		}

		rc.Path = "/" + strings.TrimLeft(rel, "/")
		rc.EndpointPrefix = JoinPrefix(rc.EndpointPrefix, m.Prefix)
		return Outcome{Kind: ActionDelegate, Service: name, Path: rc.Path}
	}

	rc.Path = TrimTrailingSlash(path)
	return Outcome{Kind: ActionRewrite, Path: rc.Path}
}

// A Tracer observes every Rule applied while routing.
type Tracer func(rule Rule, m Match, out Outcome)

// Route strips trailing slashes from rc.Path and applies the first Rule matching it.
// Rewrites route again from the top of t, at most maxRewrites times.
//
// Route returns an Outcome with Kind ActionNone when no Rule matches the final path,
// meaning rc.Path is ready to be resolved to content.
func (t Table) Route(rc *RequestContext, maxRewrites int, trace Tracer) (Outcome, error) {
	if maxRewrites <= 0 {
		maxRewrites = DefaultMaxRewrites
	}

	rc.Path = TrimTrailingSlash(rc.Path)
	for rewrites := 0; ; rewrites++ {
		rule, m, ok := t.Match(rc.Path)
		if !ok {
			return Outcome{Kind: ActionNone, Path: rc.Path}, nil
		}

		if rule.Action.Kind == ActionRewrite && rewrites == maxRewrites {
			return Outcome{}, fmt.Errorf("%w: %d rewrites reached at %q", ErrRewriteLoop, rewrites, rc.Path)
		}

		out := Dispatch(rc, rule, m)
		if trace != nil {
			trace(rule, m, out)
		}

		if out.Kind != ActionRewrite {
			return out, nil
		}
	}
}
