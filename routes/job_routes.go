package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func JobRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	jobs := api.Group("/jobs")
	jobs.Get("", handlers.ListJobs)
	jobs.Get("/:jobId", handlers.GetJob)

	company := api.Group("/company/jobs", middleware.Protected(), middleware.TypeRequired("company"))
	company.Post("", handlers.CreateJob)
	company.Get("", handlers.ListCompanyJobs)
	company.Put("/:jobId", handlers.UpdateJob)
	company.Delete("/:jobId", handlers.DeleteJob)
}
