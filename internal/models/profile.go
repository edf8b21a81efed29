package models

import "time"

// Profile is a pet profile. Rows are created by the onboarding subsystem;
// this service only reads them to scope requests to the token's user.
type Profile struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Species   string
	BirthDate *time.Time `gorm:"type:date"`
	CreatedAt time.Time
}
