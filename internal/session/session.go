// Package session models the admin's login as an explicit value handed to every
// backend call, instead of a cookie read at the call site.
package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthCookie = "auth"
	RoleCookie = "role"
	// TokenHeader carries the token on every backend request.
	TokenHeader = "auth-token"
)

type Session struct {
	Token     string
	Role      string
	ExpiresAt *time.Time
}

// New builds a session for token. When the token is a JWT its exp claim becomes
// ExpiresAt; signature checks are left to the backend that issued it.
func New(token, role string) Session {
	s := Session{Token: token, Role: role}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		s.ExpiresAt = &t
	}
	if s.Role == "" {
		for _, key := range []string{"role", "user_role", "Role"} {
			if r, ok := claims[key].(string); ok && r != "" {
				s.Role = r
				break
			}
		}
	}
	return s
}

// FromRequest reads the auth and role cookies. ok is false when there is no token.
func FromRequest(r *http.Request) (Session, bool) {
	c, err := r.Cookie(AuthCookie)
	if err != nil || strings.TrimSpace(c.Value) == "" {
		return Session{}, false
	}

	var role string
	if rc, err := r.Cookie(RoleCookie); err == nil {
		role = rc.Value
	}
	return New(c.Value, role), true
}

func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// Actor names the session owner for audit records.
func (s Session) Actor() string {
	if s.Role != "" {
		return s.Role
	}
	return "admin"
}

// Apply sets the token header on an outgoing backend request.
func (s Session) Apply(req *http.Request) {
	if s.Token != "" {
		req.Header.Set(TokenHeader, s.Token)
	}
}

// Cookies returns the cookies that establish s in the browser.
func (s Session) Cookies(secure bool) []*http.Cookie {
	cookies := []*http.Cookie{newCookie(AuthCookie, s.Token, s.ExpiresAt, secure)}
	if s.Role != "" {
		cookies = append(cookies, newCookie(RoleCookie, s.Role, s.ExpiresAt, secure))
	}
	return cookies
}

// ClearCookies expires both session cookies.
func ClearCookies(secure bool) []*http.Cookie {
	var out []*http.Cookie
	for _, name := range []string{AuthCookie, RoleCookie} {
		c := newCookie(name, "", nil, secure)
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
		out = append(out, c)
	}
	return out
}

func newCookie(name, value string, expires *time.Time, secure bool) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if expires != nil {
		c.Expires = *expires
	}
	return c
}

type ctxKey struct{}

func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
