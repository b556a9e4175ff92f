package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivity_Handler(t *testing.T) {
	var got repository.ActivityFilter
	repo := &mockActivityRepo{
		listFn: func(ctx context.Context, f repository.ActivityFilter) ([]models.Activity, error) {
			got = f
			return []models.Activity{{ID: "a1", Resource: "offer", Action: models.ActionToggled}}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/v1/activity?resource=offer&limit=10", "")

	require.NoError(t, NewActivityHandler(repo).ListActivity(c))
	assert.Equal(t, repository.ActivityFilter{Resource: "offer", Limit: 10}, got)
	assert.Contains(t, rec.Body.String(), `"action":"toggled"`)
}

func TestListActivity_Handler_BadLimit(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/api/v1/activity?limit=lots", "")

	err := NewActivityHandler(&mockActivityRepo{}).ListActivity(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
