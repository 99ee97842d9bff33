package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn/gateway"
	"github.com/xy-planning-network/cairn/http/middleware"
	"github.com/xy-planning-network/cairn/http/session"
)

var jwtKey = []byte("0123456789abcdef0123456789abcdef")

func sign(t *testing.T, method jwt.SigningMethod, key any, exp time.Time) string {
	t.Helper()

	tok, err := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString(key)
	require.Nil(t, err)

	return tok
}

func TestSessionAuthenticator(t *testing.T) {
	for _, tc := range []struct {
		name     string
		store    session.SessionStorer
		expected bool
	}{
		{"No-Session", nil, false},
		{"Anonymous", session.NewStub(false), false},
		{"Logged-In", session.NewStub(true), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var actual bool
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				actual = gateway.SessionAuthenticator{}.Authenticated(r)
			})

			// Act
			middleware.InjectSession(tc.store)(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestJWTAuthenticator(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, jwtKey, time.Now().Add(time.Hour))
	expired := sign(t, jwt.SigningMethodHS256, jwtKey, time.Now().Add(-time.Hour))
	otherKey := sign(t, jwt.SigningMethodHS256, []byte("another key entirely, not ours!!"), time.Now().Add(time.Hour))
	none := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, time.Now().Add(time.Hour))

	tcs := []struct {
		name     string
		header   string
		query    string
		expected bool
	}{
		{"Nothing", "", "", false},
		{"Bearer", "Bearer " + valid, "", true},
		{"Bearer-Lowercase", "bearer " + valid, "", true},
		{"Basic", "Basic " + valid, "", false},
		{"Query", "", valid, true},
		{"Expired", "Bearer " + expired, "", false},
		{"Other-Key", "Bearer " + otherKey, "", false},
		{"Alg-None", "Bearer " + none, "", false},
		{"Garbage", "Bearer garbage", "", false},
	}

	a := gateway.NewJWTAuthenticator(jwtKey)
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			target := "/"
			if tc.query != "" {
				target += "?" + gateway.JWTQueryParam + "=" + tc.query
			}

			r := httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			// Act + Assert
			require.Equal(t, tc.expected, a.Authenticated(r))
		})
	}

	t.Run("No-Key", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+valid)

		require.False(t, gateway.NewJWTAuthenticator(nil).Authenticated(r))
	})
}

func TestAnyAuthenticator(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, jwtKey, time.Now().Add(time.Hour)))

	require.False(t, gateway.AnyAuthenticator{}.Authenticated(r))
	require.False(t, gateway.AnyAuthenticator{nil, gateway.SessionAuthenticator{}}.Authenticated(r))
	require.True(t, gateway.AnyAuthenticator{gateway.SessionAuthenticator{}, gateway.NewJWTAuthenticator(jwtKey)}.Authenticated(r))
}
