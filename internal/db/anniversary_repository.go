package db

import (
	"github.com/petmily/petmily/internal/models"
	"gorm.io/gorm"
)

type AnniversaryRepository struct {
	database *gorm.DB
}

func NewAnniversaryRepository(database *gorm.DB) *AnniversaryRepository {
	return &AnniversaryRepository{database: database}
}

func (repo *AnniversaryRepository) ListAll() ([]models.Anniversary, error) {
	anniversaries := make([]models.Anniversary, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&anniversaries).Error; err != nil {
		return nil, err
	}
	return anniversaries, nil
}

func (repo *AnniversaryRepository) ListByProfile(profileID uint) ([]models.Anniversary, error) {
	anniversaries := make([]models.Anniversary, 0)
	if err := repo.database.
		Where("profile_id = ?", profileID).
		Order("date ASC, id ASC").
		Find(&anniversaries).Error; err != nil {
		return nil, err
	}
	return anniversaries, nil
}

func (repo *AnniversaryRepository) Create(anniversary *models.Anniversary) error {
	return repo.database.Create(anniversary).Error
}
