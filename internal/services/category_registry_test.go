package services

import (
	"errors"
	"testing"

	"github.com/petmily/petmily/internal/models"
)

func newTestRegistry(t *testing.T) *CategoryRegistry {
	t.Helper()

	registry, err := NewCategoryRegistry(models.DefaultTaxonomy())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return registry
}

func TestRegistryRoundTripsEverySubCategory(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	for _, main := range registry.MainCategories() {
		subs, err := registry.SubCategoriesOf(main)
		if err != nil {
			t.Fatalf("SubCategoriesOf(%s): %v", main, err)
		}
		if len(subs) == 0 {
			t.Fatalf("expected sub-categories under %s", main)
		}

		for _, sub := range subs {
			id, err := registry.ResolveID(main, sub.Name)
			if err != nil {
				t.Fatalf("ResolveID(%s, %s): %v", main, sub.Name, err)
			}
			if id != sub.ID {
				t.Fatalf("ResolveID(%s, %s) = %d, want %d", main, sub.Name, id, sub.ID)
			}

			name, err := registry.ResolveName(main, id)
			if err != nil {
				t.Fatalf("ResolveName(%s, %d): %v", main, id, err)
			}
			if name != sub.Name {
				t.Fatalf("ResolveName(%s, %d) = %q, want %q", main, id, name, sub.Name)
			}
		}
	}
}

func TestRegistryIsolatesEqualIDsAcrossMainCategories(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)

	dailyName, err := registry.ResolveName(models.MainCategoryDaily, 0)
	if err != nil {
		t.Fatalf("resolve daily id 0: %v", err)
	}
	healthName, err := registry.ResolveName(models.MainCategoryHealth, 0)
	if err != nil {
		t.Fatalf("resolve health id 0: %v", err)
	}

	if dailyName == healthName {
		t.Fatalf("id 0 resolved to %q under both daily and health", dailyName)
	}

	resolved, err := registry.ResolveByName(dailyName)
	if err != nil {
		t.Fatalf("ResolveByName(%s): %v", dailyName, err)
	}
	if resolved.Main != models.MainCategoryDaily || resolved.ID != 0 {
		t.Fatalf("ResolveByName(%s) = %+v, want daily/0", dailyName, resolved)
	}
}

func TestRegistryResolveIDUnknownSubCategory(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	if _, err := registry.ResolveID(models.MainCategoryDaily, "우주여행"); !errors.Is(err, ErrUnknownSubCategory) {
		t.Fatalf("expected ErrUnknownSubCategory, got %v", err)
	}
	if _, err := registry.ResolveID("grooming", "산책"); !errors.Is(err, ErrUnknownMainCategory) {
		t.Fatalf("expected ErrUnknownMainCategory, got %v", err)
	}
}

func TestRegistryResolveNameOutOfRange(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	if _, err := registry.ResolveName(models.MainCategoryMeetup, 99); !errors.Is(err, ErrUnknownSubCategoryID) {
		t.Fatalf("expected ErrUnknownSubCategoryID, got %v", err)
	}
	if _, err := registry.ResolveName(models.MainCategoryMeetup, -1); !errors.Is(err, ErrUnknownSubCategoryID) {
		t.Fatalf("expected ErrUnknownSubCategoryID for negative id, got %v", err)
	}
}

func TestRegistryBelongsGuardsClaimedMain(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	if !registry.Belongs(models.MainCategoryDaily, 0) {
		t.Fatal("expected daily id 0 to belong")
	}
	if registry.Belongs(models.MainCategoryMeetup, 99) {
		t.Fatal("expected meetup id 99 to be rejected")
	}
	if registry.Belongs("grooming", 0) {
		t.Fatal("expected unknown main to be rejected")
	}
}

func TestRegistryRejectsDuplicateSubCategoryNames(t *testing.T) {
	t.Parallel()

	table := []models.CategoryGroup{
		{Main: models.MainCategoryDaily, SubNames: []string{"산책"}},
		{Main: models.MainCategoryOuting, SubNames: []string{"산책"}},
	}
	if _, err := NewCategoryRegistry(table); err == nil {
		t.Fatal("expected duplicate sub-category name to be rejected")
	}
}

func TestRegistryRejectsDuplicateMainCategories(t *testing.T) {
	t.Parallel()

	table := []models.CategoryGroup{
		{Main: models.MainCategoryDaily, SubNames: []string{"산책"}},
		{Main: models.MainCategoryDaily, SubNames: []string{"식사"}},
	}
	if _, err := NewCategoryRegistry(table); err == nil {
		t.Fatal("expected duplicate main category to be rejected")
	}
}

func TestDefaultTaxonomyCoversSixMainCategories(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	mains := registry.MainCategories()
	expected := []models.MainCategory{
		models.MainCategoryHealth,
		models.MainCategoryAnniversary,
		models.MainCategoryEducation,
		models.MainCategoryMeetup,
		models.MainCategoryOuting,
		models.MainCategoryDaily,
	}
	if len(mains) != len(expected) {
		t.Fatalf("expected %d main categories, got %d", len(expected), len(mains))
	}
	for index, main := range expected {
		if mains[index] != main {
			t.Fatalf("main category %d = %s, want %s", index, mains[index], main)
		}
	}
}
