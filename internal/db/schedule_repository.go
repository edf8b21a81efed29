package db

import (
	"time"

	"github.com/petmily/petmily/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleRepository struct {
	database *gorm.DB
}

func NewScheduleRepository(database *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{database: database}
}

// CreateWithItems persists the schedule header, its items and the favorite
// sub-category changes in one transaction. Any failure rolls back the whole
// batch.
func (repo *ScheduleRepository) CreateWithItems(schedule *models.Schedule, favor []models.FavoriteSubCategory, unfavor []models.FavoriteSubCategory) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}

		for index := range favor {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&favor[index]).Error; err != nil {
				return err
			}
		}

		for _, pair := range unfavor {
			if err := tx.
				Where("profile_id = ? AND main_category = ? AND sub_category_id = ?", pair.ProfileID, pair.MainCategory, pair.SubCategoryID).
				Delete(&models.FavoriteSubCategory{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (repo *ScheduleRepository) FindByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) (models.Schedule, bool, error) {
	schedule := models.Schedule{}
	result := repo.database.
		Preload("Items").
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&schedule)
	if result.Error != nil {
		return models.Schedule{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Schedule{}, false, nil
	}
	return schedule, true, nil
}

func (repo *ScheduleRepository) ExistsByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Schedule{}).
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByIDForUser loads a schedule only when its profile belongs to the
// given user, so a stale or foreign id reads as not-found.
func (repo *ScheduleRepository) FindByIDForUser(scheduleID uint, userID uint) (models.Schedule, error) {
	schedule := models.Schedule{}
	if err := repo.database.
		Joins("JOIN profiles ON profiles.id = schedules.profile_id").
		Where("schedules.id = ? AND profiles.user_id = ?", scheduleID, userID).
		First(&schedule).Error; err != nil {
		return models.Schedule{}, err
	}
	return schedule, nil
}

// UpdateFavorite writes the three favorite fields together in one statement.
func (repo *ScheduleRepository) UpdateFavorite(schedule *models.Schedule) error {
	return repo.database.Model(schedule).Select("is_favorite", "alias", "icon").Updates(schedule).Error
}
