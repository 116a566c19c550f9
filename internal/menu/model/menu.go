// Package model provides domain models and DTOs for the menu module.
package model

import "time"

// MenuType is the closed set of menu document categories.
type MenuType string

const (
	MenuTypeFood   MenuType = "food"
	MenuTypeDrinks MenuType = "drinks"
	// MenuTypeSeasonal survives from an earlier schema version.
	MenuTypeSeasonal MenuType = "seasonal"
)

// ValidMenuType reports whether t is one of the allowed menu types.
func ValidMenuType(t MenuType) bool {
	switch t {
	case MenuTypeFood, MenuTypeDrinks, MenuTypeSeasonal:
		return true
	}
	return false
}

// MenuDocument represents an uploaded PDF menu. The file bytes live in blob
// storage; this row is only the metadata. The two are written in separate,
// non-atomic steps.
// Matches the menus table schema.
type MenuDocument struct {
	ID         int64     `gorm:"primaryKey;column:id" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Type       MenuType  `gorm:"column:type;type:varchar(16);not null" json:"type"`
	FileURL    string    `gorm:"column:file_url;type:text;not null" json:"file_url"`
	FileName   string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	FilePath   string    `gorm:"column:file_path;type:text;not null" json:"-"`
	IsActive   bool      `gorm:"column:is_active;not null;default:false" json:"is_active"`
	UploadDate time.Time `gorm:"column:upload_date;type:timestamptz;not null;default:now()" json:"upload_date"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (MenuDocument) TableName() string {
	return "menus"
}
