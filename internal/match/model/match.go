// Package model provides domain models and DTOs for the match module.
package model

import "time"

// DefaultSport backfills records written before the sport column existed.
const DefaultSport = "Football"

// Match represents a scheduled sports broadcast shown at the pub.
// Matches the matches table schema.
type Match struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Sport     string    `gorm:"column:sport;type:varchar(64);not null;default:'Football'" json:"sport"`
	League    string    `gorm:"column:league;type:varchar(255);not null" json:"league"`
	Team1     string    `gorm:"column:team1;type:varchar(255);not null" json:"team1"`
	Team2     string    `gorm:"column:team2;type:varchar(255);not null" json:"team2"`
	Date      string    `gorm:"column:date;type:varchar(10);not null;index" json:"date"`
	Time      string    `gorm:"column:time;type:varchar(5);not null" json:"time"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// EventDate returns the match's ISO calendar date.
func (m Match) EventDate() string { return m.Date }

// EventTime returns the match's local kick-off time.
func (m Match) EventTime() string { return m.Time }
