package resp_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/resp"
	"github.com/xy-planning-network/cairn/http/session"
	"github.com/xy-planning-network/cairn/logger"
)

func TestResponderDo(t *testing.T) {
	t.Run("Cancelled", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		r = r.Clone(ctx)

		w := httptest.NewRecorder()
		w.WriteHeader(http.StatusPaymentRequired)

		cancel()

		d := resp.NewResponder(resp.WithLogger(logger.NewTestLogger(new(bytes.Buffer))))

		// Act
		err := d.Html(w, r, resp.Code(http.StatusTeapot))

		// Assert
		require.ErrorIs(t, err, resp.ErrDone)
		require.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestResponderHtml(t *testing.T) {
	tcs := []struct {
		name string
		opts []resp.Fn
		code int
		body string
	}{
		{"Default", []resp.Fn{resp.Body([]byte("<p>hi</p>"))}, http.StatusOK, "<p>hi</p>"},
		{"Code", []resp.Fn{resp.Code(http.StatusNotFound), resp.Body([]byte("gone"))}, http.StatusNotFound, "gone"},
		{"Empty", nil, http.StatusOK, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := resp.NewResponder(resp.WithLogger(logger.NewTestLogger(new(bytes.Buffer))))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			// Act
			err := d.Html(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestResponderRedirect(t *testing.T) {
	tcs := []struct {
		name     string
		root     string
		opts     []resp.Fn
		code     int
		location string
	}{
		{"To-Root", "", nil, http.StatusFound, "/"},
		{"To-Configured-Root", "https://example.com/app/", nil, http.StatusFound, "https://example.com/app/"},
		{"Url", "", []resp.Fn{resp.Url("/new/page")}, http.StatusFound, "/new/page"},
		{"Absolute", "", []resp.Fn{resp.Url("https://example.org/x?y=1")}, http.StatusFound, "https://example.org/x?y=1"},
		{"Param", "", []resp.Fn{resp.Url("/search"), resp.Param("q", "a b")}, http.StatusFound, "/search?q=a+b"},
		{"Permanent", "", []resp.Fn{resp.Url("/new"), resp.Code(http.StatusMovedPermanently)}, http.StatusMovedPermanently, "/new"},
		{"Client-Error", "", []resp.Fn{resp.Url("/new"), resp.Code(http.StatusBadRequest)}, http.StatusSeeOther, "/new"},
		{"Server-Error", "", []resp.Fn{resp.Url("/new"), resp.Code(http.StatusBadGateway)}, http.StatusTemporaryRedirect, "/new"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			opts := []resp.ResponderOptFn{resp.WithLogger(logger.NewTestLogger(new(bytes.Buffer)))}
			if tc.root != "" {
				opts = append(opts, resp.WithRootUrl(tc.root))
			}

			d := resp.NewResponder(opts...)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/old", nil)

			// Act
			err := d.Redirect(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}

	t.Run("Bad-Url", func(t *testing.T) {
		d := resp.NewResponder(resp.WithLogger(logger.NewTestLogger(new(bytes.Buffer))))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/old", nil)

		err := d.Redirect(w, r, resp.Url("http://[::1"))

		require.ErrorIs(t, err, resp.ErrInvalid)
	})
}

func TestResponderErr(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		d := resp.NewResponder(resp.WithLogger(logger.NewTestLogger(b)))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		d.Err(w, r, errors.New("boom"))

		// Assert
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "boom")
		require.Contains(t, b.String(), "[ERROR]")
	})

	t.Run("Code", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		d := resp.NewResponder(resp.WithLogger(logger.NewTestLogger(b)))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		d.Err(w, r, errors.New("not found: /x"), resp.Code(http.StatusNotFound), resp.Data(map[string]any{"path": "/x"}))

		// Assert
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "not found: /x")
		require.Contains(t, b.String(), "[WARN]")
		require.Contains(t, b.String(), `"path":"/x"`)
	})
}

func TestResponderSession(t *testing.T) {
	d := resp.NewResponder(resp.WithLogger(logger.NewTestLogger(new(bytes.Buffer))))

	_, err := d.Session(context.Background())
	require.ErrorIs(t, err, resp.ErrNotFound)

	_, err = d.Session(context.WithValue(context.Background(), cairn.SessionKey, "nope"))
	require.ErrorIs(t, err, resp.ErrInvalid)

	s, err := session.NewStub(true).GetSession(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Nil(t, err)

	actual, err := d.Session(context.WithValue(context.Background(), cairn.SessionKey, s))
	require.Nil(t, err)
	require.Equal(t, s, actual)
}
