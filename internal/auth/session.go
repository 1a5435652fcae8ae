package auth

import (
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims describes the bearer token payload the backend issues. The
// console never verifies the signature; the token is opaque credential
// material and the claims are read for display and expiry only.
type Claims struct {
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session holds the bearer token attached to every backend request.
type Session struct {
	token  string
	claims *Claims
}

// NewSession wraps a bearer token, parsing claims when possible.
func NewSession(token string) *Session {
	session := &Session{token: strings.TrimSpace(token)}
	if session.token == "" {
		return session
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(session.token, claims); err == nil {
		session.claims = claims
	}
	return session
}

// Token returns the raw bearer token.
func (s *Session) Token() string {
	return s.token
}

// BearerHeader returns the Authorization header value, or empty when no
// token is configured.
func (s *Session) BearerHeader() string {
	if s.token == "" {
		return ""
	}
	return "Bearer " + s.token
}

// Fullname returns the display name claim when present.
func (s *Session) Fullname() string {
	if s.claims == nil {
		return ""
	}
	return s.claims.Fullname
}

// Role returns the role claim when present.
func (s *Session) Role() string {
	if s.claims == nil {
		return ""
	}
	return s.claims.Role
}

// Expired reports whether the token carries an expiry in the past. A
// token without claims is never reported expired; the backend is the
// authority.
func (s *Session) Expired(now time.Time) bool {
	if s.claims == nil || s.claims.ExpiresAt == nil {
		return false
	}
	return s.claims.ExpiresAt.Before(now)
}
