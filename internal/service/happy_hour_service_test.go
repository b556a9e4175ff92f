package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notFoundHappyHour() backend.Result[*models.HappyHour] {
	return backend.Failure[*models.HappyHour](&backend.ServerError{Status: http.StatusNotFound, Message: "No happy hour"})
}

func TestGetHappyHour_AbsentIsNil(t *testing.T) {
	api := &mockHappyHourAPI{
		getFn: func(ctx context.Context, s session.Session) backend.Result[*models.HappyHour] {
			return notFoundHappyHour()
		},
	}
	svc := NewHappyHourService(api, nil, clock)

	h, err := svc.GetHappyHour(context.Background(), admin)

	assert.NoError(t, err)
	assert.Nil(t, h)
}

func TestSaveHappyHour_CreatesWhenAbsent(t *testing.T) {
	var stored *models.HappyHour
	api := &mockHappyHourAPI{
		getFn: func(ctx context.Context, s session.Session) backend.Result[*models.HappyHour] {
			if stored == nil {
				return notFoundHappyHour()
			}
			return backend.Success(stored)
		},
		createFn: func(ctx context.Context, s session.Session, h models.HappyHour) backend.Result[*models.HappyHour] {
			h.ID = "hh1"
			stored = &h
			return backend.Success(stored)
		},
	}
	pub := &mockPublisher{}
	svc := NewHappyHourService(api, pub, clock)

	got, err := svc.SaveHappyHour(context.Background(), admin, models.HappyHour{StartTime: "17:00", EndTime: "19:00", Image: "https://cdn.example.com/hh.png"})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hh1", got.ID)
	assert.Equal(t, []string{"admin.happy_hour.created"}, pub.keys())
}

func TestSaveHappyHour_ReplacesExisting(t *testing.T) {
	stored := &models.HappyHour{ID: "hh1", StartTime: "17:00", EndTime: "19:00"}
	var replacedID string
	api := &mockHappyHourAPI{
		getFn: func(ctx context.Context, s session.Session) backend.Result[*models.HappyHour] {
			return backend.Success(stored)
		},
		replaceFn: func(ctx context.Context, s session.Session, id string, h models.HappyHour) backend.Result[*models.HappyHour] {
			replacedID = id
			h.ID = id
			stored = &h
			return backend.Success(stored)
		},
	}
	svc := NewHappyHourService(api, nil, clock)

	got, err := svc.SaveHappyHour(context.Background(), admin, models.HappyHour{StartTime: "18:00", EndTime: "20:00", Image: "https://cdn.example.com/hh.png"})

	require.NoError(t, err)
	assert.Equal(t, "hh1", replacedID)
	assert.Equal(t, "18:00", got.StartTime)
}
