package db

import (
	"github.com/petmily/petmily/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByIDForUser(profileID uint, userID uint) (models.Profile, error) {
	profile := models.Profile{}
	if err := repo.database.Where("id = ? AND user_id = ?", profileID, userID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) ListByUser(userID uint) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
