package handler

import (
	"net/http"

	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type GalleryHandler struct {
	svc service.GalleryService
}

func NewGalleryHandler(svc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

func (h *GalleryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListImages)
	g.POST("", h.AddImage)
	g.POST("/bulk-delete", h.BulkDelete)
	g.DELETE("/:id", h.DeleteImage)
}

func toGalleryResponse(p service.GalleryPage) dto.GalleryResponse {
	return dto.GalleryResponse{Images: p.Images, Counts: p.Counts}
}

func (h *GalleryHandler) ListImages(c echo.Context) error {
	page, err := h.svc.ListImages(c.Request().Context(), middleware.SessionFrom(c), c.QueryParam("tag"), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(toGalleryResponse(page)))
}

func (h *GalleryHandler) AddImage(c echo.Context) error {
	var req dto.GalleryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	page, err := h.svc.AddImage(c.Request().Context(), middleware.SessionFrom(c), models.GalleryImage{
		ImageURL: req.ImageURL,
		Tag:      models.GalleryTag(req.Tag),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Image added", toGalleryResponse(page)))
}

func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	page, err := h.svc.DeleteImage(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Image deleted", toGalleryResponse(page)))
}

// BulkDelete reports per-id outcomes; it is 200 even when some deletes failed.
func (h *GalleryHandler) BulkDelete(c echo.Context) error {
	var req dto.BulkDeleteRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.BulkDelete(c.Request().Context(), middleware.SessionFrom(c), req.IDs)
	if err != nil {
		return err
	}

	resp := dto.BulkDeleteResponse{Deleted: res.Deleted, Failed: res.Failed, Gallery: toGalleryResponse(res.Page)}
	msg := "Images deleted"
	if len(res.Failed) > 0 {
		msg = "Some images could not be deleted"
	}
	return c.JSON(http.StatusOK, dto.OKMessage(msg, resp))
}
