// Package repository provides the data access layer for operator accounts.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/auth/model"
)

// Repository defines operator account access operations.
type Repository interface {
	// GetByEmail finds an operator by email, or returns
	// model.ErrInvalidCredentials if none exists.
	GetByEmail(ctx context.Context, email string) (*model.Operator, error)

	// Count returns how many operator accounts exist.
	Count(ctx context.Context) (int64, error)

	// Create inserts a new operator account.
	Create(ctx context.Context, op *model.Operator) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new auth repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByEmail finds an operator by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*model.Operator, error) {
	var op model.Operator
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&op).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}
	return &op, nil
}

// Count returns how many operator accounts exist.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Operator{}).Count(&n).Error
	return n, err
}

// Create inserts a new operator account.
func (r *repository) Create(ctx context.Context, op *model.Operator) error {
	return r.db.WithContext(ctx).Create(op).Error
}
