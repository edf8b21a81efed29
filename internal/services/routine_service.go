package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/petmily/petmily/internal/models"
)

var (
	ErrRoutineNotFound     = errors.New("routine not found")
	ErrInvalidRoutineName  = errors.New("invalid routine name")
	ErrInvalidAlarmTime    = errors.New("invalid alarm time")
	ErrCreateRoutineFailed = errors.New("create routine failed")
	ErrUpdateRoutineFailed = errors.New("update routine failed")
)

const maxRoutineNameLength = 80

var alarmTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type RoutineRepository interface {
	ListByProfile(profileID uint) ([]models.Routine, error)
	Create(routine *models.Routine) error
	FindByIDForProfile(routineID uint, profileID uint) (models.Routine, error)
	UpdateFavorite(routine *models.Routine) error
}

type RoutineService struct {
	routines RoutineRepository
}

func NewRoutineService(routines RoutineRepository) *RoutineService {
	return &RoutineService{routines: routines}
}

func (service *RoutineService) CreateRoutine(profileID uint, name string, alarmTime string) (models.Routine, error) {
	name = strings.TrimSpace(name)
	alarmTime = strings.TrimSpace(alarmTime)

	if name == "" || len([]rune(name)) > maxRoutineNameLength {
		return models.Routine{}, ErrInvalidRoutineName
	}
	if alarmTime != "" && !alarmTimePattern.MatchString(alarmTime) {
		return models.Routine{}, ErrInvalidAlarmTime
	}

	routine := models.Routine{
		ProfileID: profileID,
		Name:      name,
		AlarmTime: alarmTime,
	}
	if err := service.routines.Create(&routine); err != nil {
		return models.Routine{}, fmt.Errorf("%w: %v", ErrCreateRoutineFailed, err)
	}
	return routine, nil
}

func (service *RoutineService) ListRoutines(profileID uint) ([]models.Routine, error) {
	return service.routines.ListByProfile(profileID)
}

// ToggleRoutineFavorite flips the boolean on the scoped row. Unlike the
// schedule toggle there is no dependent metadata to keep consistent.
func (service *RoutineService) ToggleRoutineFavorite(routineID uint, profileID uint) (bool, error) {
	routine, err := service.routines.FindByIDForProfile(routineID, profileID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRoutineNotFound, err)
	}

	routine.IsFavorite = !routine.IsFavorite
	if err := service.routines.UpdateFavorite(&routine); err != nil {
		return false, fmt.Errorf("%w: %v", ErrUpdateRoutineFailed, err)
	}
	return routine.IsFavorite, nil
}
