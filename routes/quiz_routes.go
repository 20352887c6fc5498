package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quizAdmin := middleware.RoleRequired("admin", "superadmin", "institution")

	quizzes := api.Group("/quizzes", middleware.Protected())
	quizzes.Get("", handlers.ListQuizzes)
	quizzes.Get("/:quizId", handlers.GetQuiz)
	quizzes.Post("/:quizId/complete", handlers.CompleteQuiz)
	quizzes.Post("", quizAdmin, handlers.CreateQuiz)
	quizzes.Put("/:quizId", quizAdmin, handlers.UpdateQuiz)
	quizzes.Delete("/:quizId", quizAdmin, handlers.DeleteQuiz)

	attempts := api.Group("/attempts", middleware.Protected())
	attempts.Get("", handlers.ListMyAttempts)

	// Real-time quiz events.
	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
