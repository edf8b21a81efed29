package models

import "time"

// Schedule holds one day's planned activities for a profile. A profile has
// at most one schedule row per calendar date.
type Schedule struct {
	ID         uint      `gorm:"primaryKey"`
	ProfileID  uint      `gorm:"not null;uniqueIndex:uidx_profile_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_profile_date"`
	IsFavorite bool      `gorm:"not null;default:false"`
	Alias      *string
	Icon       *int
	Items      []ScheduleItem `gorm:"foreignKey:ScheduleID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ScheduleItem stores the owning main category next to the sub-category id
// because sub-category ids repeat across main categories.
type ScheduleItem struct {
	ID            uint         `gorm:"primaryKey"`
	ScheduleID    uint         `gorm:"not null;index"`
	MainCategory  MainCategory `gorm:"not null"`
	SubCategoryID int          `gorm:"not null"`
	StartAt       time.Time    `gorm:"not null"`
	CreatedAt     time.Time
}

// FavoriteSubCategory marks a sub-category a profile wants pre-selected when
// building future schedules. At most one row per (profile, main, sub).
type FavoriteSubCategory struct {
	ID            uint         `gorm:"primaryKey"`
	ProfileID     uint         `gorm:"not null;uniqueIndex:uidx_fav_profile_sub"`
	MainCategory  MainCategory `gorm:"not null;uniqueIndex:uidx_fav_profile_sub"`
	SubCategoryID int          `gorm:"not null;uniqueIndex:uidx_fav_profile_sub"`
	CreatedAt     time.Time
}

// FavoriteIcons is the closed icon set a starred schedule may reference.
// Icon values persisted on a schedule are indexes into this slice.
var FavoriteIcons = []string{"🐶", "🐱", "🦴", "🎾", "💊", "🎂", "✈️", "🌳"}

func IsValidFavoriteIcon(index int) bool {
	return index >= 0 && index < len(FavoriteIcons)
}
