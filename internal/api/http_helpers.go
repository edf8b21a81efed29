package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/petmily/petmily/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(value string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errors.New("empty date")
	}
	return time.ParseInLocation("2006-01-02", trimmed, location)
}

// parseStartAt combines a schedule day with an HH:MM clock string.
func parseStartAt(day time.Time, clock string, location *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation("15:04", strings.TrimSpace(clock), location)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, location), nil
}

func parseUintParam(value string) (uint, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

// profileFromParams resolves :profileId against the authenticated user. On
// failure the response is already written and the returned error (possibly
// nil) must be handed back to fiber.
func (handler *Handler) profileFromParams(c *fiber.Ctx) (models.Profile, bool, error) {
	userID, ok := currentUserID(c)
	if !ok {
		return models.Profile{}, false, apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profileID, err := parseUintParam(c.Params("profileId"))
	if err != nil || profileID == 0 {
		return models.Profile{}, false, apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	profile, err := handler.profiles.FindByIDForUser(profileID, userID)
	if err != nil {
		return models.Profile{}, false, apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return profile, true, nil
}
