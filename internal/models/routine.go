package models

import "time"

// Routine is a recurring care task for a profile. AlarmTime is an optional
// HH:MM string in the server's location.
type Routine struct {
	ID         uint   `gorm:"primaryKey"`
	ProfileID  uint   `gorm:"not null;index"`
	Name       string `gorm:"not null"`
	AlarmTime  string
	IsFavorite bool `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
