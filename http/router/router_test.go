package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/middleware"
	"github.com/xy-planning-network/cairn/http/router"
)

func TestRouter(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644))

	tagged := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Tagged", "yes")
			h.ServeHTTP(w, r)
		})
	}

	r := router.New(cairn.Testing)
	r.OnEveryRequest(tagged)
	r.Assets("/static", dir)
	r.Handle(router.Route{
		Path:   "/health",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	})
	r.CatchAll(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("caught " + req.URL.Path))
	}))

	for _, tc := range []struct {
		name   string
		path   string
		code   int
		body   string
		tagged bool
		cached bool
	}{
		{"Asset", "/static/site.css", http.StatusOK, "body{}", false, true},
		{"Route", "/health", http.StatusNoContent, "", true, false},
		{"Catch-All", "/docs/intro", http.StatusOK, "caught /docs/intro", true, false},
		{"Catch-All-Root", "/", http.StatusOK, "caught /", true, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			// Act
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
			require.Equal(t, tc.tagged, w.Header().Get("X-Tagged") == "yes")
			require.Equal(t, tc.cached, w.Header().Get("Cache-Control") != "")
		})
	}
}

func TestRouterSubrouter(t *testing.T) {
	// Arrange
	r := router.New(cairn.Testing)
	r.OnEveryRequest(middleware.NoopAdapter)
	sub := r.Subrouter("/api")
	sub.Handle(router.Route{
		Path:    "/ping",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("pong")) }),
	})
	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}
