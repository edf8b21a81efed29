package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/petmily/petmily/internal/services"
)

type routinePayload struct {
	Name      string `json:"name"`
	AlarmTime string `json:"alarm_time"`
}

func (handler *Handler) GetRoutines(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	routines, err := handler.routines.ListRoutines(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch routines")
	}
	return c.JSON(routines)
}

func (handler *Handler) CreateRoutine(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	payload := routinePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	routine, err := handler.routines.CreateRoutine(profile.ID, payload.Name, payload.AlarmTime)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRoutineName),
			errors.Is(err, services.ErrInvalidAlarmTime):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create routine")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(routine)
}

func (handler *Handler) ToggleRoutineFavorite(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	routineID, err := parseUintParam(c.Params("id"))
	if err != nil || routineID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid routine id")
	}

	isFavorite, err := handler.routines.ToggleRoutineFavorite(routineID, profile.ID)
	if err != nil {
		if errors.Is(err, services.ErrRoutineNotFound) {
			return apiError(c, fiber.StatusNotFound, "routine not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle routine favorite")
	}
	return c.JSON(fiber.Map{"is_favorite": isFavorite})
}
