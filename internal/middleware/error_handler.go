package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/lifecycle"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every failure as {"success":false,"error":...}.
// Field errors become 422 with an errors map; backend messages pass through verbatim.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, resp := render(err)
	if code >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, resp)
}

func render(err error) (int, dto.ErrorResponse) {
	resp := dto.ErrorResponse{Success: false}

	if fe, ok := lifecycle.AsFieldErrors(err); ok {
		resp.Error = "Please fix the highlighted fields"
		resp.Errors = fe
		return http.StatusUnprocessableEntity, resp
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp.Error = http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			resp.Error = m
		}
		return he.Code, resp
	}

	var se *backend.ServerError
	if errors.As(err, &se) {
		code := se.Status
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		resp.Error = se.Message
		return code, resp
	}

	if errors.Is(err, backend.ErrTransport) {
		resp.Error = backend.GenericMessage
		return http.StatusBadGateway, resp
	}

	resp.Error = backend.GenericMessage
	return http.StatusInternalServerError, resp
}
