package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/petmily/petmily/internal/models"
)

type subCategoryView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type categoryGroupView struct {
	Main          models.MainCategory `json:"main"`
	SubCategories []subCategoryView   `json:"sub_categories"`
}

func (handler *Handler) GetCategories(c *fiber.Ctx) error {
	groups := make([]categoryGroupView, 0)
	for _, main := range handler.registry.MainCategories() {
		subs, err := handler.registry.SubCategoriesOf(main)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to enumerate categories")
		}
		groups = append(groups, categoryGroupView{Main: main, SubCategories: subCategoryViews(subs)})
	}
	return c.JSON(groups)
}

func (handler *Handler) GetCategorySubCategories(c *fiber.Ctx) error {
	main := models.MainCategory(c.Params("main"))
	subs, err := handler.registry.SubCategoriesOf(main)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "unknown main category")
	}
	return c.JSON(categoryGroupView{Main: main, SubCategories: subCategoryViews(subs)})
}

func subCategoryViews(subs []models.SubCategory) []subCategoryView {
	views := make([]subCategoryView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, subCategoryView{ID: sub.ID, Name: sub.Name})
	}
	return views
}
