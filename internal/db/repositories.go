package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles      *ProfileRepository
	Schedules     *ScheduleRepository
	Favorites     *FavoriteSubCategoryRepository
	Routines      *RoutineRepository
	Anniversaries *AnniversaryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:      NewProfileRepository(database),
		Schedules:     NewScheduleRepository(database),
		Favorites:     NewFavoriteSubCategoryRepository(database),
		Routines:      NewRoutineRepository(database),
		Anniversaries: NewAnniversaryRepository(database),
	}
}
