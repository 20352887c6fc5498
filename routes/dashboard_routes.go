package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/dashboard", middleware.Protected(), handlers.StudentDashboard)
	api.Get("/admin/dashboard", middleware.Protected(),
		middleware.RoleRequired("admin", "superadmin"), handlers.AdminDashboard)
}
