package handler

import (
	"net/http"
	"time"

	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/Eursukkul/club-admin/internal/session"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc          service.AuthService
	cookieSecure bool
}

func NewAuthHandler(svc service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieSecure: cookieSecure}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
}

type loginResponse struct {
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	s, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	for _, ck := range s.Cookies(h.cookieSecure) {
		c.SetCookie(ck)
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Logged in", loginResponse{Role: s.Role, ExpiresAt: s.ExpiresAt}))
}

// Logout clears the session cookies and sends the browser back to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	for _, ck := range session.ClearCookies(h.cookieSecure) {
		c.SetCookie(ck)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
