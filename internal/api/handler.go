package api

import (
	"time"

	"github.com/petmily/petmily/internal/db"
	"github.com/petmily/petmily/internal/models"
	"github.com/petmily/petmily/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	location      *time.Location
	registry      *services.CategoryRegistry
	profiles      *db.ProfileRepository
	anniversaries *db.AnniversaryRepository
	schedules     *services.ScheduleService
	favorites     *services.FavoriteService
	routines      *services.RoutineService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	registry, err := services.NewCategoryRegistry(models.DefaultTaxonomy())
	if err != nil {
		return nil, err
	}

	repos := db.NewRepositories(database)

	return &Handler{
		db:            database,
		secretKey:     []byte(secret),
		location:      location,
		registry:      registry,
		profiles:      repos.Profiles,
		anniversaries: repos.Anniversaries,
		schedules:     services.NewScheduleService(repos.Schedules, registry, location),
		favorites:     services.NewFavoriteService(repos.Schedules, repos.Favorites, registry),
		routines:      services.NewRoutineService(repos.Routines),
	}, nil
}
