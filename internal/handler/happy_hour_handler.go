package handler

import (
	"net/http"

	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type HappyHourHandler struct {
	svc service.HappyHourService
}

func NewHappyHourHandler(svc service.HappyHourService) *HappyHourHandler {
	return &HappyHourHandler{svc: svc}
}

func (h *HappyHourHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetHappyHour)
	g.PUT("", h.SaveHappyHour)
}

// GetHappyHour responds with data null when nothing is configured.
func (h *HappyHourHandler) GetHappyHour(c echo.Context) error {
	hh, err := h.svc.GetHappyHour(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(hh))
}

func (h *HappyHourHandler) SaveHappyHour(c echo.Context) error {
	var req dto.HappyHourRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	hh, err := h.svc.SaveHappyHour(c.Request().Context(), middleware.SessionFrom(c), models.HappyHour{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Image:     req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Happy hour saved", hh))
}
