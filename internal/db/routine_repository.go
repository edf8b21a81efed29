package db

import (
	"github.com/petmily/petmily/internal/models"
	"gorm.io/gorm"
)

type RoutineRepository struct {
	database *gorm.DB
}

func NewRoutineRepository(database *gorm.DB) *RoutineRepository {
	return &RoutineRepository{database: database}
}

func (repo *RoutineRepository) ListByProfile(profileID uint) ([]models.Routine, error) {
	routines := make([]models.Routine, 0)
	if err := repo.database.Where("profile_id = ?", profileID).Order("id ASC").Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (repo *RoutineRepository) Create(routine *models.Routine) error {
	return repo.database.Create(routine).Error
}

func (repo *RoutineRepository) FindByIDForProfile(routineID uint, profileID uint) (models.Routine, error) {
	routine := models.Routine{}
	if err := repo.database.Where("id = ? AND profile_id = ?", routineID, profileID).First(&routine).Error; err != nil {
		return models.Routine{}, err
	}
	return routine, nil
}

func (repo *RoutineRepository) UpdateFavorite(routine *models.Routine) error {
	return repo.database.Model(routine).Select("is_favorite").Updates(routine).Error
}
