package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/petmily/petmily/internal/models"
	"github.com/petmily/petmily/internal/services"
)

type anniversaryPayload struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (handler *Handler) GetAnniversaries(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	anniversaries, err := handler.anniversaries.ListByProfile(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch anniversaries")
	}
	return c.JSON(anniversaries)
}

func (handler *Handler) CreateAnniversary(c *fiber.Ctx) error {
	profile, ok, err := handler.profileFromParams(c)
	if !ok {
		return err
	}

	payload := anniversaryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "missing anniversary name")
	}
	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	anniversary := models.Anniversary{
		ProfileID: profile.ID,
		Name:      name,
		Date:      services.DateAtLocation(day, handler.location),
	}
	if err := handler.anniversaries.Create(&anniversary); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create anniversary")
	}
	return c.Status(fiber.StatusCreated).JSON(anniversary)
}
