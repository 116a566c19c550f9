// Package repository provides the data access layer for the match module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/match/model"
)

// Repository defines match data access operations.
type Repository interface {
	// List returns every match, ordered by date, time, id.
	List(ctx context.Context) ([]model.Match, error)

	// GetByID finds a match by id.
	GetByID(ctx context.Context, id int64) (*model.Match, error)

	// Create inserts a new match and assigns its id.
	Create(ctx context.Context, m *model.Match) error

	// Update replaces the full record.
	Update(ctx context.Context, m *model.Match) error

	// Delete removes a match by id.
	Delete(ctx context.Context, id int64) error

	// DeleteBefore removes every match dated strictly before date and
	// returns how many were removed. Used by the daily cleanup job.
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new match repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns every match, ordered by date, time, id.
func (r *repository) List(ctx context.Context) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Order("date ASC, time ASC, id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		return []model.Match{}, nil
	}
	return matches, nil
}

// GetByID finds a match by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*model.Match, error) {
	var m model.Match
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a new match and assigns its id.
func (r *repository) Create(ctx context.Context, m *model.Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update replaces the full record. Last write wins; there is no optimistic
// locking for the single-operator admin panel.
func (r *repository) Update(ctx context.Context, m *model.Match) error {
	res := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("id = ?", m.ID).
		Select("sport", "league", "team1", "team2", "date", "time", "updated_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// Delete removes a match by id.
func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Match{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// DeleteBefore removes every match dated strictly before date.
func (r *repository) DeleteBefore(ctx context.Context, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("date < ?", date).
		Delete(&model.Match{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
