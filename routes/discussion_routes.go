package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func DiscussionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courseDiscussions := api.Group("/courses/:courseId/discussions", middleware.Protected())
	courseDiscussions.Post("", handlers.CreateDiscussion)
	courseDiscussions.Get("", handlers.ListCourseDiscussions)

	discussions := api.Group("/discussions", middleware.Protected())
	discussions.Get("/:discussionId", handlers.GetDiscussion)
	discussions.Put("/:discussionId", handlers.UpdateDiscussion)
	discussions.Delete("/:discussionId", handlers.DeleteDiscussion)
	discussions.Post("/:discussionId/replies", handlers.CreateReply)

	replies := api.Group("/replies", middleware.Protected())
	replies.Delete("/:replyId", handlers.DeleteReply)
}
