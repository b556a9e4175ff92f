package handler

import (
	"net/http"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type OfferHandler struct {
	svc service.OfferService
}

func NewOfferHandler(svc service.OfferService) *OfferHandler {
	return &OfferHandler{svc: svc}
}

func (h *OfferHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListOffers)
	g.POST("", h.CreateOffer)
	g.PUT("/:id", h.UpdateOffer)
	g.POST("/:id/toggle", h.ToggleOffer)
	g.DELETE("/:id", h.DeleteOffer)
}

func (h *OfferHandler) ListOffers(c echo.Context) error {
	offers, err := h.svc.ListOffers(c.Request().Context(), middleware.SessionFrom(c), listQuery(c, "createdAt", listing.Desc))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(offers))
}

func toOfferInput(req dto.OfferRequest) backend.OfferInput {
	return backend.OfferInput{Offer: req.Offer, Description: req.Description, IsLive: req.IsLive}
}

func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req dto.OfferRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	offers, err := h.svc.CreateOffer(c.Request().Context(), middleware.SessionFrom(c), toOfferInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Offer created", offers))
}

func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	var req dto.OfferRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	offers, err := h.svc.UpdateOffer(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"), toOfferInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Offer updated", offers))
}

func (h *OfferHandler) ToggleOffer(c echo.Context) error {
	offer, err := h.svc.ToggleOffer(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		return mapErr(err)
	}
	msg := "Offer is now hidden"
	if offer.IsLive {
		msg = "Offer is now live"
	}
	return c.JSON(http.StatusOK, dto.OKMessage(msg, offer))
}

func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	offers, err := h.svc.DeleteOffer(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Offer deleted", offers))
}
