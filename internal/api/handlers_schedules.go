package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/petmily/petmily/internal/services"
)

type scheduleItemPayload struct {
	StartAt    *string `json:"start_at"`
	IsFavorite bool    `json:"is_favorite"`
}

type createSchedulePayload struct {
	Date  string                         `json:"date"`
	Items map[string]scheduleItemPayload `json:"items"`
}

func (handler *Handler) GetSchedule(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	view, found, err := handler.schedules.GetSchedule(profile.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch schedule")
	}
	if !found {
		return c.JSON(fiber.Map{"schedule": nil})
	}
	return c.JSON(fiber.Map{"schedule": view})
}

func (handler *Handler) CreateSchedule(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	payload := createSchedulePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	items := make([]services.ScheduleItemInput, 0, len(payload.Items))
	for subCategoryName, item := range payload.Items {
		input := services.ScheduleItemInput{
			SubCategoryName: subCategoryName,
			IsFavorite:      item.IsFavorite,
		}
		if item.StartAt != nil {
			startAt, err := parseStartAt(day, *item.StartAt, handler.location)
			if err != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid start time for "+subCategoryName)
			}
			input.StartAt = &startAt
		}
		items = append(items, input)
	}

	scheduleID, err := handler.schedules.CreateSchedule(profile.ID, day, items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptySchedulePayload),
			errors.Is(err, services.ErrMissingStartTime),
			errors.Is(err, services.ErrUnresolvedCategory):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrScheduleExists):
			return apiError(c, fiber.StatusConflict, "schedule already exists for this date")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create schedule")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"schedule_id": scheduleID})
}
