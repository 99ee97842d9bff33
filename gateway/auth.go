package gateway

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/session"
)

// JWTQueryParam carries a token when no Authorization header is sent.
const JWTQueryParam = "jwt"

// An Authenticator reports whether a request comes from an authenticated visitor.
type Authenticator interface {
	Authenticated(r *http.Request) bool
}

// A SessionAuthenticator authenticates requests whose session, stored under cairn.SessionKey, holds a user.
type SessionAuthenticator struct{}

// Authenticated implements Authenticator.
func (SessionAuthenticator) Authenticated(r *http.Request) bool {
	s, ok := r.Context().Value(cairn.SessionKey).(session.Session)
	if !ok {
		return false
	}

	_, err := s.UserID()
	return err == nil
}

// A JWTAuthenticator authenticates requests bearing an HMAC signed token.
type JWTAuthenticator struct {
	key []byte
}

// NewJWTAuthenticator constructs a JWTAuthenticator verifying tokens with key.
func NewJWTAuthenticator(key []byte) JWTAuthenticator { return JWTAuthenticator{key: key} }

// Authenticated implements Authenticator.
//
// The token is read from the Authorization header as a Bearer token,
// or else from the jwt query parameter.
// Tokens must be unexpired and signed with an HMAC method.
func (a JWTAuthenticator) Authenticated(r *http.Request) bool {
	if len(a.key) == 0 {
		return false
	}

	raw := bearer(r.Header.Get("Authorization"))
	if raw == "" {
		raw = r.URL.Query().Get(JWTQueryParam)
	}

	if raw == "" {
		return false
	}

	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: signing method %s", ErrNotValid, t.Header["alg"])
		}

		return a.key, nil
	})

	return err == nil && tok.Valid
}

func bearer(header string) string {
	scheme, tok, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(tok)
}

// AnyAuthenticator authenticates a request when any one of its Authenticators does.
type AnyAuthenticator []Authenticator

// Authenticated implements Authenticator.
func (as AnyAuthenticator) Authenticated(r *http.Request) bool {
	for _, a := range as {
		if a != nil && a.Authenticated(r) {
			return true
		}
	}

	return false
}
