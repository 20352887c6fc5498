package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func EnrollmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	enrollments := api.Group("/enrollments", middleware.Protected())
	enrollments.Post("", handlers.EnrollInCourse)
	enrollments.Get("", handlers.ListEnrollments)
	enrollments.Get("/:enrollmentId", handlers.GetEnrollment)
	enrollments.Post("/:enrollmentId/complete", handlers.CompleteEnrollment)
	enrollments.Delete("/:enrollmentId", handlers.DeleteEnrollment)
}
