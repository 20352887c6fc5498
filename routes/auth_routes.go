package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Post("/company/login", handlers.LoginCompany)
	auth.Post("/institution/login", handlers.LoginInstitution)
	auth.Post("/municipality/login", handlers.LoginMunicipality)
	auth.Post("/refresh", handlers.RefreshSession)
	auth.Post("/logout", handlers.Logout)
	auth.Post("/change-password", middleware.Protected(), handlers.ChangePassword)
}
