package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

type HappyHourService interface {
	// GetHappyHour returns nil when no happy hour has been configured.
	GetHappyHour(ctx context.Context, s session.Session) (*models.HappyHour, error)
	// SaveHappyHour creates the record or replaces the existing one.
	SaveHappyHour(ctx context.Context, s session.Session, h models.HappyHour) (*models.HappyHour, error)
}

type happyHourService struct {
	api backend.HappyHourAPI
	rec recorder
}

func NewHappyHourService(api backend.HappyHourAPI, pub ActivityPublisher, now Clock) HappyHourService {
	return &happyHourService{api: api, rec: recorder{pub: pub, now: orNow(now)}}
}

func (s *happyHourService) GetHappyHour(ctx context.Context, sess session.Session) (*models.HappyHour, error) {
	h, err := s.api.GetHappyHour(ctx, sess).Unpack()
	if backend.NotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get happy hour: %w", err)
	}
	if h != nil && h.ID == "" && h.StartTime == "" && h.EndTime == "" {
		return nil, nil
	}
	return h, nil
}

func (s *happyHourService) SaveHappyHour(ctx context.Context, sess session.Session, h models.HappyHour) (*models.HappyHour, error) {
	current, err := s.GetHappyHour(ctx, sess)
	if err != nil {
		return nil, err
	}

	h.ID = ""
	action := models.ActionCreated
	if current == nil {
		err = s.api.CreateHappyHour(ctx, sess, h).Err()
	} else {
		action = models.ActionUpdated
		err = s.api.ReplaceHappyHour(ctx, sess, current.ID, h).Err()
	}
	if err != nil {
		return nil, fmt.Errorf("save happy hour: %w", err)
	}

	saved, err := s.GetHappyHour(ctx, sess)
	if err != nil {
		return nil, err
	}
	var target string
	if saved != nil {
		target = saved.ID
	}
	s.rec.record(sess, models.ResourceHappyHour, action, target)
	return saved, nil
}
