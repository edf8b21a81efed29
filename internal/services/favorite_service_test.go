package services

import (
	"errors"
	"testing"

	"github.com/petmily/petmily/internal/models"
)

type stubFavoriteScheduleRepo struct {
	schedule  models.Schedule
	findErr   error
	updateErr error

	updated     *models.Schedule
	updateCalls int
}

func (stub *stubFavoriteScheduleRepo) FindByIDForUser(uint, uint) (models.Schedule, error) {
	return stub.schedule, stub.findErr
}

func (stub *stubFavoriteScheduleRepo) UpdateFavorite(schedule *models.Schedule) error {
	stub.updateCalls++
	if stub.updateErr != nil {
		return stub.updateErr
	}
	stub.updated = schedule
	return nil
}

type stubFavoriteSubCategoryRepo struct {
	rows    []models.FavoriteSubCategory
	listErr error
}

func (stub *stubFavoriteSubCategoryRepo) ListByProfile(uint) ([]models.FavoriteSubCategory, error) {
	return stub.rows, stub.listErr
}

func newFavoriteServiceForTest(t *testing.T, schedules *stubFavoriteScheduleRepo, favorites *stubFavoriteSubCategoryRepo) *FavoriteService {
	t.Helper()

	registry, err := NewCategoryRegistry(models.DefaultTaxonomy())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	if favorites == nil {
		favorites = &stubFavoriteSubCategoryRepo{}
	}
	return NewFavoriteService(schedules, favorites, registry)
}

func stringPtr(value string) *string { return &value }
func intPtr(value int) *int          { return &value }

func TestToggleActivatesWithAliasAndIcon(t *testing.T) {
	t.Parallel()

	repo := &stubFavoriteScheduleRepo{schedule: models.Schedule{ID: 5}}
	service := newFavoriteServiceForTest(t, repo, nil)

	state, err := service.ToggleScheduleFavorite(5, 1, stringPtr("여행"), intPtr(2))
	if err != nil {
		t.Fatalf("ToggleScheduleFavorite() unexpected error: %v", err)
	}
	if !state.IsFavorite || state.Alias == nil || *state.Alias != "여행" || state.Icon == nil || *state.Icon != 2 {
		t.Fatalf("expected favorite with alias=여행 icon=2, got %+v", state)
	}
	if repo.updated == nil || !repo.updated.IsFavorite {
		t.Fatal("expected favorite fields to be written")
	}
}

func TestToggleDeactivatesAndClearsMetadata(t *testing.T) {
	t.Parallel()

	repo := &stubFavoriteScheduleRepo{schedule: models.Schedule{
		ID:         5,
		IsFavorite: true,
		Alias:      stringPtr("여행"),
		Icon:       intPtr(2),
	}}
	service := newFavoriteServiceForTest(t, repo, nil)

	// Arguments are ignored when deactivating.
	state, err := service.ToggleScheduleFavorite(5, 1, stringPtr("ignored"), intPtr(1))
	if err != nil {
		t.Fatalf("ToggleScheduleFavorite() unexpected error: %v", err)
	}
	if state.IsFavorite || state.Alias != nil || state.Icon != nil {
		t.Fatalf("expected cleared favorite state, got %+v", state)
	}
}

func TestToggleActivationRequiresBothAliasAndIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alias *string
		icon  *int
	}{
		{name: "missing both", alias: nil, icon: nil},
		{name: "missing icon", alias: stringPtr("여행"), icon: nil},
		{name: "missing alias", alias: nil, icon: intPtr(2)},
		{name: "blank alias", alias: stringPtr("   "), icon: intPtr(2)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &stubFavoriteScheduleRepo{schedule: models.Schedule{ID: 5}}
			service := newFavoriteServiceForTest(t, repo, nil)

			if _, err := service.ToggleScheduleFavorite(5, 1, tt.alias, tt.icon); !errors.Is(err, ErrMissingFavoriteMetadata) {
				t.Fatalf("expected ErrMissingFavoriteMetadata, got %v", err)
			}
			if repo.updateCalls != 0 {
				t.Fatal("expected state to stay untouched on failed activation")
			}
		})
	}
}

func TestToggleActivationRejectsIconOutsideSet(t *testing.T) {
	t.Parallel()

	repo := &stubFavoriteScheduleRepo{schedule: models.Schedule{ID: 5}}
	service := newFavoriteServiceForTest(t, repo, nil)

	if _, err := service.ToggleScheduleFavorite(5, 1, stringPtr("여행"), intPtr(len(models.FavoriteIcons))); !errors.Is(err, ErrInvalidFavoriteIcon) {
		t.Fatalf("expected ErrInvalidFavoriteIcon, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("expected no write for invalid icon")
	}
}

func TestToggleUnknownScheduleIsNotFound(t *testing.T) {
	t.Parallel()

	repo := &stubFavoriteScheduleRepo{findErr: errors.New("record not found")}
	service := newFavoriteServiceForTest(t, repo, nil)

	if _, err := service.ToggleScheduleFavorite(99, 1, stringPtr("여행"), intPtr(2)); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestUpdateFavoriteMetaRequiresFavoriteState(t *testing.T) {
	t.Parallel()

	repo := &stubFavoriteScheduleRepo{schedule: models.Schedule{ID: 5}}
	service := newFavoriteServiceForTest(t, repo, nil)

	if _, err := service.UpdateFavoriteMeta(5, 1, "여행", 2); !errors.Is(err, ErrScheduleNotFavorite) {
		t.Fatalf("expected ErrScheduleNotFavorite, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("expected no write on non-favorite schedule")
	}
}

func TestUpdateFavoriteMetaRewritesAliasAndIcon(t *testing.T) {
	t.Parallel()

	repo := &stubFavoriteScheduleRepo{schedule: models.Schedule{
		ID:         5,
		IsFavorite: true,
		Alias:      stringPtr("여행"),
		Icon:       intPtr(2),
	}}
	service := newFavoriteServiceForTest(t, repo, nil)

	state, err := service.UpdateFavoriteMeta(5, 1, "제주도", 4)
	if err != nil {
		t.Fatalf("UpdateFavoriteMeta() unexpected error: %v", err)
	}
	if !state.IsFavorite || *state.Alias != "제주도" || *state.Icon != 4 {
		t.Fatalf("expected updated metadata with favorite intact, got %+v", state)
	}
}

func TestListFavoriteSubCategoriesIntersectsRequest(t *testing.T) {
	t.Parallel()

	favorites := &stubFavoriteSubCategoryRepo{rows: []models.FavoriteSubCategory{
		{ProfileID: 1, MainCategory: models.MainCategoryDaily, SubCategoryID: 0},
	}}
	service := newFavoriteServiceForTest(t, &stubFavoriteScheduleRepo{}, favorites)

	names, err := service.ListFavoriteSubCategories(1, []string{"산책", "식사", "우주여행", "산책"})
	if err != nil {
		t.Fatalf("ListFavoriteSubCategories() unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "산책" {
		t.Fatalf("expected [산책], got %v", names)
	}
}
