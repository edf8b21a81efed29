package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/petmily/petmily/internal/models"
)

var (
	ErrEmptySchedulePayload      = errors.New("empty schedule payload")
	ErrMissingStartTime          = errors.New("missing start time")
	ErrUnresolvedCategory        = errors.New("unresolved category")
	ErrScheduleExists            = errors.New("schedule already exists for date")
	ErrScheduleTransactionFailed = errors.New("schedule transaction failed")
)

type ScheduleRepository interface {
	CreateWithItems(schedule *models.Schedule, favor []models.FavoriteSubCategory, unfavor []models.FavoriteSubCategory) error
	FindByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) (models.Schedule, bool, error)
	ExistsByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) (bool, error)
}

// ScheduleItemInput is one requested activity. StartAt is a pointer because
// a missing start time must be told apart from a zero one.
type ScheduleItemInput struct {
	SubCategoryName string
	StartAt         *time.Time
	IsFavorite      bool
}

type ScheduleItemView struct {
	ID              uint                `json:"id"`
	MainCategory    models.MainCategory `json:"main_category"`
	SubCategoryID   int                 `json:"sub_category_id"`
	SubCategoryName string              `json:"sub_category_name"`
	StartAt         time.Time           `json:"start_at"`
}

type ScheduleView struct {
	ID         uint               `json:"id"`
	ProfileID  uint               `json:"profile_id"`
	Date       time.Time          `json:"date"`
	IsFavorite bool               `json:"is_favorite"`
	Alias      *string            `json:"alias"`
	Icon       *int               `json:"icon"`
	Items      []ScheduleItemView `json:"items"`
}

type ScheduleService struct {
	schedules ScheduleRepository
	registry  *CategoryRegistry
	location  *time.Location
}

func NewScheduleService(schedules ScheduleRepository, registry *CategoryRegistry, location *time.Location) *ScheduleService {
	if location == nil {
		location = time.UTC
	}
	return &ScheduleService{
		schedules: schedules,
		registry:  registry,
		location:  location,
	}
}

// CreateSchedule validates every requested item before any write, then hands
// the whole batch to the store as one transaction. A single bad item aborts
// the request with nothing persisted.
func (service *ScheduleService) CreateSchedule(profileID uint, date time.Time, items []ScheduleItemInput) (uint, error) {
	if profileID == 0 || date.IsZero() || len(items) == 0 {
		return 0, ErrEmptySchedulePayload
	}

	day := DateAtLocation(date, service.location)

	resolved := make([]ResolvedSubCategory, 0, len(items))
	for _, item := range items {
		if item.StartAt == nil {
			return 0, fmt.Errorf("%w: %q", ErrMissingStartTime, item.SubCategoryName)
		}
		subCategory, err := service.registry.ResolveByName(item.SubCategoryName)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnresolvedCategory, item.SubCategoryName)
		}
		resolved = append(resolved, subCategory)
	}

	dayStart, dayEnd := DayRange(day, service.location)
	exists, err := service.schedules.ExistsByProfileAndDayRange(profileID, dayStart, dayEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScheduleTransactionFailed, err)
	}
	if exists {
		return 0, ErrScheduleExists
	}

	schedule := models.Schedule{
		ProfileID: profileID,
		Date:      day,
		Items:     make([]models.ScheduleItem, 0, len(items)),
	}
	favor := make([]models.FavoriteSubCategory, 0)
	unfavor := make([]models.FavoriteSubCategory, 0)
	for index, item := range items {
		subCategory := resolved[index]
		schedule.Items = append(schedule.Items, models.ScheduleItem{
			MainCategory:  subCategory.Main,
			SubCategoryID: subCategory.ID,
			StartAt:       *item.StartAt,
		})

		pair := models.FavoriteSubCategory{
			ProfileID:     profileID,
			MainCategory:  subCategory.Main,
			SubCategoryID: subCategory.ID,
		}
		if item.IsFavorite {
			favor = append(favor, pair)
		} else {
			unfavor = append(unfavor, pair)
		}
	}

	if err := service.schedules.CreateWithItems(&schedule, favor, unfavor); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScheduleTransactionFailed, err)
	}
	return schedule.ID, nil
}

// GetSchedule fetches one day's schedule with sub-category names attached
// and items sorted by start time. A day without a schedule reports
// found=false, not an error.
func (service *ScheduleService) GetSchedule(profileID uint, date time.Time) (ScheduleView, bool, error) {
	dayStart, dayEnd := DayRange(date, service.location)
	schedule, found, err := service.schedules.FindByProfileAndDayRange(profileID, dayStart, dayEnd)
	if err != nil {
		return ScheduleView{}, false, err
	}
	if !found {
		return ScheduleView{}, false, nil
	}

	view := ScheduleView{
		ID:         schedule.ID,
		ProfileID:  schedule.ProfileID,
		Date:       schedule.Date,
		IsFavorite: schedule.IsFavorite,
		Alias:      schedule.Alias,
		Icon:       schedule.Icon,
		Items:      make([]ScheduleItemView, 0, len(schedule.Items)),
	}
	for _, item := range schedule.Items {
		name, err := service.registry.ResolveName(item.MainCategory, item.SubCategoryID)
		if err != nil {
			return ScheduleView{}, false, fmt.Errorf("resolve stored item %d: %w", item.ID, err)
		}
		view.Items = append(view.Items, ScheduleItemView{
			ID:              item.ID,
			MainCategory:    item.MainCategory,
			SubCategoryID:   item.SubCategoryID,
			SubCategoryName: name,
			StartAt:         item.StartAt,
		})
	}

	sort.SliceStable(view.Items, func(i, j int) bool {
		return view.Items[i].StartAt.Before(view.Items[j].StartAt)
	})

	return view, true, nil
}
