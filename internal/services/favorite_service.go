package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/petmily/petmily/internal/models"
)

var (
	ErrScheduleNotFound        = errors.New("schedule not found")
	ErrMissingFavoriteMetadata = errors.New("missing favorite metadata")
	ErrInvalidFavoriteIcon     = errors.New("invalid favorite icon")
	ErrScheduleNotFavorite     = errors.New("schedule is not favorite")
	ErrUpdateFavoriteFailed    = errors.New("update favorite failed")
)

const maxFavoriteAliasLength = 40

type FavoriteScheduleRepository interface {
	FindByIDForUser(scheduleID uint, userID uint) (models.Schedule, error)
	UpdateFavorite(schedule *models.Schedule) error
}

type FavoriteSubCategoryRepository interface {
	ListByProfile(profileID uint) ([]models.FavoriteSubCategory, error)
}

// FavoriteScheduleState is the three-field projection the toggle maintains:
// favorite rows always carry alias+icon, non-favorite rows carry neither.
type FavoriteScheduleState struct {
	ScheduleID uint    `json:"schedule_id"`
	IsFavorite bool    `json:"is_favorite"`
	Alias      *string `json:"alias"`
	Icon       *int    `json:"icon"`
}

type FavoriteService struct {
	schedules FavoriteScheduleRepository
	favorites FavoriteSubCategoryRepository
	registry  *CategoryRegistry
}

func NewFavoriteService(schedules FavoriteScheduleRepository, favorites FavoriteSubCategoryRepository, registry *CategoryRegistry) *FavoriteService {
	return &FavoriteService{
		schedules: schedules,
		favorites: favorites,
		registry:  registry,
	}
}

// ToggleScheduleFavorite flips the starred state of one schedule. Activating
// requires a non-empty alias and a valid icon index; deactivating clears
// both and ignores any arguments. The three fields are always written
// together so concurrent toggles cannot leave a mixed state behind.
func (service *FavoriteService) ToggleScheduleFavorite(scheduleID uint, userID uint, alias *string, icon *int) (FavoriteScheduleState, error) {
	schedule, err := service.schedules.FindByIDForUser(scheduleID, userID)
	if err != nil {
		return FavoriteScheduleState{}, fmt.Errorf("%w: %v", ErrScheduleNotFound, err)
	}

	if schedule.IsFavorite {
		schedule.IsFavorite = false
		schedule.Alias = nil
		schedule.Icon = nil
	} else {
		trimmedAlias, validatedIcon, err := validateFavoriteMetadata(alias, icon)
		if err != nil {
			return FavoriteScheduleState{}, err
		}
		schedule.IsFavorite = true
		schedule.Alias = &trimmedAlias
		schedule.Icon = &validatedIcon
	}

	if err := service.schedules.UpdateFavorite(&schedule); err != nil {
		return FavoriteScheduleState{}, fmt.Errorf("%w: %v", ErrUpdateFavoriteFailed, err)
	}
	return favoriteStateOf(schedule), nil
}

// UpdateFavoriteMeta changes alias/icon on an already-starred schedule
// without touching the flag.
func (service *FavoriteService) UpdateFavoriteMeta(scheduleID uint, userID uint, alias string, icon int) (FavoriteScheduleState, error) {
	schedule, err := service.schedules.FindByIDForUser(scheduleID, userID)
	if err != nil {
		return FavoriteScheduleState{}, fmt.Errorf("%w: %v", ErrScheduleNotFound, err)
	}
	if !schedule.IsFavorite {
		return FavoriteScheduleState{}, ErrScheduleNotFavorite
	}

	trimmedAlias, validatedIcon, err := validateFavoriteMetadata(&alias, &icon)
	if err != nil {
		return FavoriteScheduleState{}, err
	}

	schedule.Alias = &trimmedAlias
	schedule.Icon = &validatedIcon
	if err := service.schedules.UpdateFavorite(&schedule); err != nil {
		return FavoriteScheduleState{}, fmt.Errorf("%w: %v", ErrUpdateFavoriteFailed, err)
	}
	return favoriteStateOf(schedule), nil
}

// ListFavoriteSubCategories intersects the requested sub-category names with
// the profile's favorited set, preserving request order. Names outside the
// taxonomy cannot be favorites and simply drop out of the result.
func (service *FavoriteService) ListFavoriteSubCategories(profileID uint, subCategoryNames []string) ([]string, error) {
	rows, err := service.favorites.ListByProfile(profileID)
	if err != nil {
		return nil, err
	}

	favorited := make(map[ResolvedSubCategory]struct{}, len(rows))
	for _, row := range rows {
		favorited[ResolvedSubCategory{Main: row.MainCategory, ID: row.SubCategoryID}] = struct{}{}
	}

	result := make([]string, 0, len(subCategoryNames))
	seen := make(map[string]struct{}, len(subCategoryNames))
	for _, name := range subCategoryNames {
		resolved, err := service.registry.ResolveByName(name)
		if err != nil {
			continue
		}
		key := ResolvedSubCategory{Main: resolved.Main, ID: resolved.ID}
		if _, ok := favorited[key]; !ok {
			continue
		}
		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result, nil
}

func validateFavoriteMetadata(alias *string, icon *int) (string, int, error) {
	if alias == nil || icon == nil {
		return "", 0, ErrMissingFavoriteMetadata
	}
	trimmed := strings.TrimSpace(*alias)
	if trimmed == "" || len([]rune(trimmed)) > maxFavoriteAliasLength {
		return "", 0, ErrMissingFavoriteMetadata
	}
	if !models.IsValidFavoriteIcon(*icon) {
		return "", 0, ErrInvalidFavoriteIcon
	}
	return trimmed, *icon, nil
}

func favoriteStateOf(schedule models.Schedule) FavoriteScheduleState {
	return FavoriteScheduleState{
		ScheduleID: schedule.ID,
		IsFavorite: schedule.IsFavorite,
		Alias:      schedule.Alias,
		Icon:       schedule.Icon,
	}
}
