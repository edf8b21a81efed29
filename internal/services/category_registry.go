package services

import (
	"errors"
	"fmt"

	"github.com/petmily/petmily/internal/models"
)

var (
	ErrUnknownMainCategory  = errors.New("unknown main category")
	ErrUnknownSubCategory   = errors.New("unknown sub-category")
	ErrUnknownSubCategoryID = errors.New("unknown sub-category id")
)

type registryGroup struct {
	main models.MainCategory
	subs []models.SubCategory
}

// CategoryRegistry is the process-wide taxonomy, built once from the static
// table in models. Sub-category ids are assigned by declaration order inside
// each main category, so an id is only meaningful together with its main.
type CategoryRegistry struct {
	groups   []registryGroup
	idByName map[models.MainCategory]map[string]int
	byName   map[string]ResolvedSubCategory
}

// ResolvedSubCategory pins a sub-category to its owning main category.
type ResolvedSubCategory struct {
	Main models.MainCategory
	ID   int
	Name string
}

func NewCategoryRegistry(table []models.CategoryGroup) (*CategoryRegistry, error) {
	registry := &CategoryRegistry{
		groups:   make([]registryGroup, 0, len(table)),
		idByName: make(map[models.MainCategory]map[string]int, len(table)),
		byName:   make(map[string]ResolvedSubCategory),
	}

	for _, group := range table {
		if _, exists := registry.idByName[group.Main]; exists {
			return nil, fmt.Errorf("duplicate main category %s in taxonomy table", group.Main)
		}

		subs := make([]models.SubCategory, 0, len(group.SubNames))
		ids := make(map[string]int, len(group.SubNames))
		for index, name := range group.SubNames {
			if name == "" {
				return nil, fmt.Errorf("empty sub-category name under %s", group.Main)
			}
			if existing, taken := registry.byName[name]; taken {
				return nil, fmt.Errorf("sub-category %q declared under both %s and %s", name, existing.Main, group.Main)
			}
			subs = append(subs, models.SubCategory{ID: index, Name: name})
			ids[name] = index
			registry.byName[name] = ResolvedSubCategory{Main: group.Main, ID: index, Name: name}
		}

		registry.groups = append(registry.groups, registryGroup{main: group.Main, subs: subs})
		registry.idByName[group.Main] = ids
	}

	return registry, nil
}

// MainCategories returns the main categories in declaration order.
func (registry *CategoryRegistry) MainCategories() []models.MainCategory {
	mains := make([]models.MainCategory, 0, len(registry.groups))
	for _, group := range registry.groups {
		mains = append(mains, group.main)
	}
	return mains
}

// SubCategoriesOf enumerates the sub-categories of one main category in id
// order. Asking for a main category outside the taxonomy returns an error so
// a typo in a caller surfaces instead of resolving to an empty picker.
func (registry *CategoryRegistry) SubCategoriesOf(main models.MainCategory) ([]models.SubCategory, error) {
	for _, group := range registry.groups {
		if group.main == main {
			subs := make([]models.SubCategory, len(group.subs))
			copy(subs, group.subs)
			return subs, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMainCategory, main)
}

func (registry *CategoryRegistry) ResolveID(main models.MainCategory, subName string) (int, error) {
	ids, ok := registry.idByName[main]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMainCategory, main)
	}
	id, ok := ids[subName]
	if !ok {
		return 0, fmt.Errorf("%w: %q under %s", ErrUnknownSubCategory, subName, main)
	}
	return id, nil
}

func (registry *CategoryRegistry) ResolveName(main models.MainCategory, subID int) (string, error) {
	for _, group := range registry.groups {
		if group.main != main {
			continue
		}
		if subID < 0 || subID >= len(group.subs) {
			return "", fmt.Errorf("%w: %d under %s", ErrUnknownSubCategoryID, subID, main)
		}
		return group.subs[subID].Name, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownMainCategory, main)
}

// Belongs reports whether subID is a valid id under the claimed main
// category. Client-submitted ids must pass through here; an id is never
// looked up globally because two mains may reuse the same value.
func (registry *CategoryRegistry) Belongs(main models.MainCategory, subID int) bool {
	_, err := registry.ResolveName(main, subID)
	return err == nil
}

// ResolveByName maps a bare sub-category name to its unique (main, id) pair.
// Sound because the registry constructor rejects duplicate names.
func (registry *CategoryRegistry) ResolveByName(subName string) (ResolvedSubCategory, error) {
	resolved, ok := registry.byName[subName]
	if !ok {
		return ResolvedSubCategory{}, fmt.Errorf("%w: %q", ErrUnknownSubCategory, subName)
	}
	return resolved, nil
}
