package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courseAdmin := middleware.RoleRequired("admin", "superadmin", "institution")

	courses := api.Group("/courses")
	courses.Get("", handlers.ListCourses)
	courses.Get("/:courseId", handlers.GetCourse)
	courses.Post("", middleware.Protected(), courseAdmin, handlers.CreateCourse)
	courses.Put("/:courseId", middleware.Protected(), courseAdmin, handlers.UpdateCourse)
	courses.Delete("/:courseId", middleware.Protected(), courseAdmin, handlers.DeleteCourse)
	courses.Post("/:courseId/modules", middleware.Protected(), courseAdmin, handlers.CreateModule)

	modules := api.Group("/modules", middleware.Protected(), courseAdmin)
	modules.Put("/:moduleId", handlers.UpdateModule)
	modules.Delete("/:moduleId", handlers.DeleteModule)
	modules.Post("/:moduleId/lessons", handlers.CreateLesson)

	lessons := api.Group("/lessons", middleware.Protected())
	lessons.Get("/:lessonId", handlers.GetLesson)
	lessons.Put("/:lessonId", courseAdmin, handlers.UpdateLesson)
	lessons.Delete("/:lessonId", courseAdmin, handlers.DeleteLesson)
	lessons.Post("/:lessonId/resources", courseAdmin, handlers.AddLessonResource)

	resources := api.Group("/resources", middleware.Protected(), courseAdmin)
	resources.Delete("/:resourceId", handlers.DeleteLessonResource)
}
