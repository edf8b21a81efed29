package db

import (
	"github.com/petmily/petmily/internal/models"
	"gorm.io/gorm"
)

type FavoriteSubCategoryRepository struct {
	database *gorm.DB
}

func NewFavoriteSubCategoryRepository(database *gorm.DB) *FavoriteSubCategoryRepository {
	return &FavoriteSubCategoryRepository{database: database}
}

func (repo *FavoriteSubCategoryRepository) ListByProfile(profileID uint) ([]models.FavoriteSubCategory, error) {
	favorites := make([]models.FavoriteSubCategory, 0)
	if err := repo.database.
		Where("profile_id = ?", profileID).
		Order("main_category ASC, sub_category_id ASC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}
