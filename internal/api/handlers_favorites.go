package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/petmily/petmily/internal/services"
)

type toggleFavoritePayload struct {
	Alias *string `json:"alias"`
	Icon  *int    `json:"icon"`
}

type favoriteMetaPayload struct {
	Alias string `json:"alias"`
	Icon  *int   `json:"icon"`
}

type favoriteSubCategoryQueryPayload struct {
	SubCategories []string `json:"sub_categories"`
}

func (handler *Handler) ToggleScheduleFavorite(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	scheduleID, err := parseUintParam(c.Params("id"))
	if err != nil || scheduleID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	payload := toggleFavoritePayload{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	state, err := handler.favorites.ToggleScheduleFavorite(scheduleID, userID, payload.Alias, payload.Icon)
	if err != nil {
		return favoriteErrorResponse(c, err)
	}
	return c.JSON(state)
}

func (handler *Handler) PatchScheduleFavoriteMeta(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	scheduleID, err := parseUintParam(c.Params("id"))
	if err != nil || scheduleID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	payload := favoriteMetaPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Icon == nil {
		return apiError(c, fiber.StatusBadRequest, "missing favorite metadata")
	}

	state, err := handler.favorites.UpdateFavoriteMeta(scheduleID, userID, payload.Alias, *payload.Icon)
	if err != nil {
		return favoriteErrorResponse(c, err)
	}
	return c.JSON(state)
}

func (handler *Handler) QueryFavoriteSubCategories(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	payload := favoriteSubCategoryQueryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	names, err := handler.favorites.ListFavoriteSubCategories(profile.ID, payload.SubCategories)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list favorite sub-categories")
	}
	return c.JSON(fiber.Map{"sub_categories": names})
}

func favoriteErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrScheduleNotFound):
		return apiError(c, fiber.StatusNotFound, "schedule not found")
	case errors.Is(err, services.ErrMissingFavoriteMetadata),
		errors.Is(err, services.ErrInvalidFavoriteIcon),
		errors.Is(err, services.ErrScheduleNotFavorite):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to update favorite")
	}
}
