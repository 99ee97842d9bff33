package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/session"
)

func TestNewStoreService(t *testing.T) {
	notHex := "😅"
	hex := "ABCD"

	tcs := []struct {
		name string
		cfg  session.Config
	}{
		{"Bad-Env", session.Config{Env: "nope", SessionName: "s", AuthKey: hex, EncryptKey: hex}},
		{"No-Name", session.Config{Env: cairn.Testing, AuthKey: hex, EncryptKey: hex}},
		{"Bad-Auth-Key", session.Config{Env: cairn.Testing, SessionName: "s", AuthKey: notHex, EncryptKey: hex}},
		{"Bad-Encrypt-Key", session.Config{Env: cairn.Testing, SessionName: "s", AuthKey: hex, EncryptKey: notHex}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			svc, err := session.NewStoreService(tc.cfg)

			// Assert
			require.NotNil(t, err)
			require.Zero(t, svc)
		})
	}

	t.Run("Cookie", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		cfg := session.Config{Env: cairn.Testing, SessionName: "s", AuthKey: hex, EncryptKey: hex}

		// Act
		svc, err := session.NewStoreService(cfg, session.WithMaxAge(60))

		// Assert
		require.Nil(t, err)
		require.NotZero(t, svc)
		require.NotPanics(t, func() { svc.GetSession(r) })
	})
}

func TestSession(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	s, err := session.NewStub(false).GetSession(r)
	require.Nil(t, err)

	// Act + Assert
	_, err = s.UserID()
	require.ErrorIs(t, err, session.ErrNoUser)

	require.Nil(t, s.RegisterUser(w, r, 7))
	id, err := s.UserID()
	require.Nil(t, err)
	require.Equal(t, uint(7), id)

	require.Nil(t, s.Set(w, r, session.LangKey, "fr"))
	require.Equal(t, "fr", s.Lang())
	require.Equal(t, "fr", s.Get(session.LangKey))

	require.Nil(t, s.DeregisterUser(w, r))
	_, err = s.UserID()
	require.ErrorIs(t, err, session.ErrNoUser)

	require.Nil(t, s.Set(w, r, "cairn-session-user", "seven"))
	_, err = s.UserID()
	require.ErrorIs(t, err, session.ErrNotValid)
}

func TestStubLoggedIn(t *testing.T) {
	s, err := session.NewStub(true).GetSession(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Nil(t, err)

	id, err := s.UserID()

	require.Nil(t, err)
	require.Equal(t, uint(1), id)
}
