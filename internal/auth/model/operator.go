// Package model provides domain models and DTOs for operator authentication.
package model

import "time"

// Operator is a staff account allowed into the admin panel.
// Matches the operators table schema.
type Operator struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Operator) TableName() string {
	return "operators"
}
