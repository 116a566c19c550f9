// Package repository provides the data access layer for the band module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/band/model"
)

// Repository defines band data access operations.
type Repository interface {
	// List returns every performance, ordered by date, time, id.
	List(ctx context.Context) ([]model.Band, error)

	// GetByID finds a performance by id.
	GetByID(ctx context.Context, id int64) (*model.Band, error)

	// Create inserts a new performance and assigns its id.
	Create(ctx context.Context, b *model.Band) error

	// Update replaces the full record.
	Update(ctx context.Context, b *model.Band) error

	// Delete removes a performance by id.
	Delete(ctx context.Context, id int64) error

	// DeleteBefore removes every performance dated strictly before date and
	// returns how many were removed. Used by the daily cleanup job.
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new band repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns every performance, ordered by date, time, id.
func (r *repository) List(ctx context.Context) ([]model.Band, error) {
	var bands []model.Band
	err := r.db.WithContext(ctx).
		Order("date ASC, time ASC, id ASC").
		Find(&bands).Error
	if err != nil {
		return nil, err
	}
	if bands == nil {
		return []model.Band{}, nil
	}
	return bands, nil
}

// GetByID finds a performance by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*model.Band, error) {
	var b model.Band
	err := r.db.WithContext(ctx).First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrBandNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a new performance and assigns its id.
func (r *repository) Create(ctx context.Context, b *model.Band) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Update replaces the full record. Last write wins.
func (r *repository) Update(ctx context.Context, b *model.Band) error {
	res := r.db.WithContext(ctx).
		Model(&model.Band{}).
		Where("id = ?", b.ID).
		Select("name", "genre", "date", "time", "updated_at").
		Updates(b)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrBandNotFound
	}
	return nil
}

// Delete removes a performance by id.
func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Band{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrBandNotFound
	}
	return nil
}

// DeleteBefore removes every performance dated strictly before date.
func (r *repository) DeleteBefore(ctx context.Context, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("date < ?", date).
		Delete(&model.Band{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
