package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/categories", handler.GetCategories)
	api.Get("/categories/:main", handler.GetCategorySubCategories)

	profiles := api.Group("/profiles/:profileId", handler.AuthRequired)
	profiles.Get("/schedules/:date", handler.GetSchedule)
	profiles.Post("/schedules", handler.CreateSchedule)
	profiles.Post("/favorite-sub-categories/query", handler.QueryFavoriteSubCategories)
	profiles.Get("/routines", handler.GetRoutines)
	profiles.Post("/routines", handler.CreateRoutine)
	profiles.Post("/routines/:id/favorite", handler.ToggleRoutineFavorite)
	profiles.Get("/anniversaries", handler.GetAnniversaries)
	profiles.Post("/anniversaries", handler.CreateAnniversary)

	schedules := api.Group("/schedules", handler.AuthRequired)
	schedules.Post("/:id/favorite", handler.ToggleScheduleFavorite)
	schedules.Patch("/:id/favorite", handler.PatchScheduleFavoriteMeta)
}
