package route

import (
	"net/url"
	"strings"
)

// A RequestContext is the state of one request as it moves through routing.
// It is never shared between requests.
type RequestContext struct {
	// Path is the path left to route, relative to EndpointPrefix.
	Path string

	// EndpointPrefix is the base URL of the service handling the request,
	// extended by every delegation.
	EndpointPrefix string

	// Query holds the request's query arguments.
	Query map[string]string

	// Hops counts the delegations the request went through.
	Hops int
}

// NewRequestContext seeds a RequestContext with the first value of every query argument.
func NewRequestContext(path, endpointPrefix string, query url.Values) *RequestContext {
	rc := &RequestContext{
		Path:           path,
		EndpointPrefix: endpointPrefix,
		Query:          make(map[string]string, len(query)),
	}

	for k, vs := range query {
		if len(vs) > 0 {
			rc.Query[k] = vs[0]
		}
	}

	return rc
}

// MergeQuery parses raw as a query string and sets each argument on rc,
// replacing any argument of the same name.
// Pairs that cannot be decoded are skipped.
func (rc *RequestContext) MergeQuery(raw string) {
	if raw == "" {
		return
	}

	if rc.Query == nil {
		rc.Query = make(map[string]string)
	}

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		k, v, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(k)
		if err != nil || k == "" {
			continue
		}

		v, err = url.QueryUnescape(v)
		if err != nil {
			continue
		}

		rc.Query[k] = v
	}
}

// Values returns Query as url.Values.
func (rc *RequestContext) Values() url.Values {
	vs := make(url.Values, len(rc.Query))
	for k, v := range rc.Query {
		vs.Set(k, v)
	}

	return vs
}

// TrimTrailingSlash strips every trailing slash from path.
func TrimTrailingSlash(path string) string { return strings.TrimRight(path, "/") }

// JoinPrefix appends the matched prefix to the endpoint prefix
// so the result has exactly one slash at the seam and ends with a slash.
func JoinPrefix(ep, prefix string) string {
	joined := strings.TrimRight(ep, "/") + "/" + strings.Trim(prefix, "/")
	if !strings.HasSuffix(joined, "/") {
		joined += "/"
	}

	return joined
}
