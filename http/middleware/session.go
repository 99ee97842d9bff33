package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/session"
)

// InjectSession stores the session associated with the *http.Request in *http.Request.Context
// under cairn.SessionKey.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := store.GetSession(r)
			if err != nil {
				// NOTE: a cookie the store cannot decode still yields a fresh session
				h.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), cairn.SessionKey, s)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
