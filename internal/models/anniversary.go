package models

import "time"

// Anniversary is a dated milestone for a profile (birthday, adoption day).
// The reminder sweep reads these; delivery happens outside this service.
type Anniversary struct {
	ID        uint      `gorm:"primaryKey"`
	ProfileID uint      `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
}
