// Package model provides domain models and DTOs for the band module.
package model

import "time"

// NoMusicSentinel is the name and genre of the placeholder record operators
// create to positively mark a night with no live music. It is ordinary data:
// it sorts, groups and lists exactly like a real performance.
const NoMusicSentinel = "No Music"

// Band represents a scheduled live-music performance.
// Matches the bands table schema.
type Band struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Genre     string    `gorm:"column:genre;type:varchar(128);not null" json:"genre"`
	Date      string    `gorm:"column:date;type:varchar(10);not null;index" json:"date"`
	Time      string    `gorm:"column:time;type:varchar(5);not null" json:"time"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Band) TableName() string {
	return "bands"
}

// EventDate returns the performance's ISO calendar date.
func (b Band) EventDate() string { return b.Date }

// EventTime returns the performance's local start time.
func (b Band) EventTime() string { return b.Time }
