package middleware

import (
	"net/http"
	"time"

	"github.com/Eursukkul/club-admin/internal/session"
	"github.com/labstack/echo/v4"
)

const sessionKey = "session"

// RequireSession rejects requests without a live auth cookie with 401. The
// session is stored on the echo context and on the request context.
func RequireSession(now func() time.Time) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := session.FromRequest(c.Request())
			if !ok || s.Expired(now()) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please log in again")
			}

			c.Set(sessionKey, s)
			c.SetRequest(c.Request().WithContext(session.WithContext(c.Request().Context(), s)))
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c echo.Context) session.Session {
	if s, ok := c.Get(sessionKey).(session.Session); ok {
		return s
	}
	s, _ := session.FromContext(c.Request().Context())
	return s
}
