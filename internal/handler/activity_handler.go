package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/repository"
	"github.com/labstack/echo/v4"
)

// ActivityHandler serves the stored admin activity from the worker.
type ActivityHandler struct {
	repo repository.ActivityRepository
}

func NewActivityHandler(repo repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

func (h *ActivityHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListActivity)
}

func (h *ActivityHandler) ListActivity(c echo.Context) error {
	f := repository.ActivityFilter{Resource: c.QueryParam("resource")}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		f.Limit = n
	}

	items, err := h.repo.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(items))
}
