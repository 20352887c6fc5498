package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profiles := api.Group("/profiles", middleware.Protected())
	profiles.Get("/me", handlers.GetMyProfile)
	profiles.Put("/me", handlers.UpdateMyProfile)
	profiles.Get("/:userId", handlers.GetProfile)
}
