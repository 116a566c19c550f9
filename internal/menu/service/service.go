// Package service provides the business logic layer for the menu module.
package service

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/declanmoran/omahonys-pub/internal/menu/model"
	"github.com/declanmoran/omahonys-pub/internal/menu/repository"
	"github.com/declanmoran/omahonys-pub/internal/storage"
)

// UploadInput carries a new menu document and its file.
type UploadInput struct {
	Name     string
	Type     model.MenuType
	FileName string
	File     io.Reader
}

// Service defines menu business logic operations.
type Service interface {
	// List returns every menu document, newest upload first.
	List(ctx context.Context) ([]model.MenuDocument, error)

	// ActiveDocument returns the first active document of the given type in
	// list order, or ErrNoActiveMenu.
	ActiveDocument(ctx context.Context, menuType model.MenuType) (*model.MenuDocument, error)

	// Upload stores the file then inserts its metadata row; a failed insert
	// triggers a compensating blob delete before the error is returned.
	Upload(ctx context.Context, in *UploadInput) (*model.MenuDocument, error)

	// Update replaces a document's name and type.
	Update(ctx context.Context, id int64, req *model.UpdateMenuRequest) error

	// SetActive toggles the is_active flag.
	SetActive(ctx context.Context, id int64, active bool) error

	// Delete removes the metadata row, then the blob.
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	blobs  storage.BlobStore
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new menu service instance.
func New(repo repository.Repository, blobs storage.BlobStore, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
		now:    time.Now,
	}
}

// List returns every menu document, newest upload first.
func (s *service) List(ctx context.Context) ([]model.MenuDocument, error) {
	return s.repo.List(ctx)
}

// PickActive returns the first document in docs with the given type and
// is_active set, or nil. Uniqueness of the active flag is not enforced by
// the model; list order is the documented tiebreak.
func PickActive(docs []model.MenuDocument, menuType model.MenuType) *model.MenuDocument {
	for i := range docs {
		if docs[i].Type == menuType && docs[i].IsActive {
			return &docs[i]
		}
	}
	return nil
}

// ActiveDocument returns the first active document of the given type in list
// order, or ErrNoActiveMenu.
func (s *service) ActiveDocument(ctx context.Context, menuType model.MenuType) (*model.MenuDocument, error) {
	if !model.ValidMenuType(menuType) {
		return nil, &model.ValidationError{Field: "type", Message: "type must be one of: food, drinks, seasonal"}
	}
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	doc := PickActive(docs, menuType)
	if doc == nil {
		return nil, model.ErrNoActiveMenu
	}
	return doc, nil
}

// Upload stores the file then inserts its metadata row. Blob first, row
// second; if the row insert fails the orphaned blob is deleted before the
// error propagates, so a visible document always has both halves.
func (s *service) Upload(ctx context.Context, in *UploadInput) (*model.MenuDocument, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &model.ValidationError{Field: "name", Message: "name is required"}
	}
	if !model.ValidMenuType(in.Type) {
		return nil, &model.ValidationError{Field: "type", Message: "type must be one of: food, drinks, seasonal"}
	}
	if strings.TrimSpace(in.FileName) == "" {
		return nil, &model.ValidationError{Field: "file", Message: "file is required"}
	}

	blobPath := "menus/" + uuid.NewString() + strings.ToLower(path.Ext(in.FileName))
	url, err := s.blobs.Upload(ctx, blobPath, in.File)
	if err != nil {
		return nil, err
	}

	doc := &model.MenuDocument{
		Name:       in.Name,
		Type:       in.Type,
		FileURL:    url,
		FileName:   in.FileName,
		FilePath:   blobPath,
		IsActive:   false,
		UploadDate: s.now(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if delErr := s.blobs.Delete(ctx, blobPath); delErr != nil {
			s.logger.Errorw("orphaned blob after failed metadata insert",
				"path", blobPath, "error", delErr)
		}
		return nil, err
	}

	return doc, nil
}

// Update replaces a document's name and type.
func (s *service) Update(ctx context.Context, id int64, req *model.UpdateMenuRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &model.ValidationError{Field: "name", Message: "name is required"}
	}
	if !model.ValidMenuType(req.Type) {
		return &model.ValidationError{Field: "type", Message: "type must be one of: food, drinks, seasonal"}
	}
	return s.repo.UpdateMeta(ctx, id, req.Name, req.Type)
}

// SetActive toggles the is_active flag.
func (s *service) SetActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Delete removes the metadata row, then the blob. Once the row is gone the
// document is no longer visible; a failed blob delete leaves an orphaned
// file, which is logged rather than surfaced.
func (s *service) Delete(ctx context.Context, id int64) error {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, doc.FilePath); err != nil {
		s.logger.Warnw("orphaned blob after menu delete",
			"menu_id", id, "path", doc.FilePath, "error", err)
	}
	return nil
}
