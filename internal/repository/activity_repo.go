package repository

import (
	"context"

	"github.com/Eursukkul/club-admin/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

type ActivityFilter struct {
	Resource string
	Limit    int
}

type ActivityRepository interface {
	Create(ctx context.Context, a *models.Activity) error
	List(ctx context.Context, f ActivityFilter) ([]models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create is idempotent on ID so redelivered messages are not stored twice.
func (r *activityRepository) Create(ctx context.Context, a *models.Activity) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(a).Error
}

// List returns the newest activity first.
func (r *activityRepository) List(ctx context.Context, f ActivityFilter) ([]models.Activity, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	q := r.db.WithContext(ctx).Order("occurred_at DESC").Limit(limit)
	if f.Resource != "" {
		q = q.Where("resource = ?", f.Resource)
	}

	var out []models.Activity
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
