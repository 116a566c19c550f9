package model

// UpdateMenuRequest is the payload for editing a menu document's metadata.
// The file itself is immutable; replace it by uploading a new document.
type UpdateMenuRequest struct {
	Name string   `json:"name" binding:"required"`
	Type MenuType `json:"type" binding:"required"`
}

// SetActiveRequest toggles a document's is_active flag.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
