package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubActivityRepo struct{}

func (stubActivityRepo) Create(ctx context.Context, a *models.Activity) error { return nil }

func (stubActivityRepo) List(ctx context.Context, f repository.ActivityFilter) ([]models.Activity, error) {
	return []models.Activity{{ID: "a1", Resource: models.ResourceMenuCategory, Action: models.ActionCreated}}, nil
}

func health(t *testing.T, done <-chan struct{}) (int, map[string]string) {
	t.Helper()
	rec := httptest.NewRecorder()
	newServer(stubActivityRepo{}, done).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth_ConsumerRunning(t *testing.T) {
	code, body := health(t, make(chan struct{}))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "running", body["consumer"])
}

func TestHealth_ConsumerStopped(t *testing.T) {
	done := make(chan struct{})
	close(done)

	code, body := health(t, done)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "stopped", body["consumer"])
}

func TestActivityFeed_FiltersByResource(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(stubActivityRepo{}, make(chan struct{})).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/activity?resource=menu_category", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"resource":"menu_category"`)
}
