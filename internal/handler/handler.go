package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/labstack/echo/v4"
)

// bind decodes the body into req and runs the registered validator.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

// mapErr turns service sentinels into HTTP errors; everything else goes to the error handler as is.
func mapErr(err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	return err
}

// listQuery reads search/sort/order. Without a sort key the screen's default key and
// order apply; an explicit key defaults to ascending.
func listQuery(c echo.Context, defaultSort string, defaultOrder listing.Order) listing.Query {
	q := listing.Query{
		Search:  c.QueryParam("search"),
		SortKey: strings.TrimSpace(c.QueryParam("sort")),
		Order:   listing.ParseOrder(c.QueryParam("order"), listing.Asc),
	}
	if q.SortKey == "" {
		q.SortKey = defaultSort
		q.Order = listing.ParseOrder(c.QueryParam("order"), defaultOrder)
	}
	return q
}
