// Package repository provides the data access layer for the menu module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/menu/model"
)

// Repository defines menu metadata access operations.
type Repository interface {
	// List returns every menu document, newest upload first. The order is
	// pinned (upload_date DESC, id ASC) so that "first active of a type" is
	// deterministic across calls.
	List(ctx context.Context) ([]model.MenuDocument, error)

	// GetByID finds a menu document by id.
	GetByID(ctx context.Context, id int64) (*model.MenuDocument, error)

	// Create inserts menu metadata and assigns its id.
	Create(ctx context.Context, doc *model.MenuDocument) error

	// UpdateMeta replaces a document's name and type.
	UpdateMeta(ctx context.Context, id int64, name string, menuType model.MenuType) error

	// SetActive toggles the is_active flag.
	SetActive(ctx context.Context, id int64, active bool) error

	// Delete removes the metadata row.
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new menu repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns every menu document, newest upload first.
func (r *repository) List(ctx context.Context) ([]model.MenuDocument, error) {
	var docs []model.MenuDocument
	err := r.db.WithContext(ctx).
		Order("upload_date DESC, id ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	if docs == nil {
		return []model.MenuDocument{}, nil
	}
	return docs, nil
}

// GetByID finds a menu document by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*model.MenuDocument, error) {
	var doc model.MenuDocument
	err := r.db.WithContext(ctx).First(&doc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMenuNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Create inserts menu metadata and assigns its id.
func (r *repository) Create(ctx context.Context, doc *model.MenuDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// UpdateMeta replaces a document's name and type.
func (r *repository) UpdateMeta(ctx context.Context, id int64, name string, menuType model.MenuType) error {
	res := r.db.WithContext(ctx).
		Model(&model.MenuDocument{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "type": menuType})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMenuNotFound
	}
	return nil
}

// SetActive toggles the is_active flag.
func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.MenuDocument{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMenuNotFound
	}
	return nil
}

// Delete removes the metadata row.
func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuDocument{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMenuNotFound
	}
	return nil
}
