package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

type DiscussionRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

func CreateDiscussion(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req DiscussionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	discussion := models.Discussion{
		CourseID: courseID,
		AuthorID: principal.ID,
		Title:    req.Title,
		Body:     req.Body,
	}
	if err := database.DB.Create(&discussion).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create discussion"})
	}
	return c.Status(fiber.StatusCreated).JSON(discussion)
}

func ListCourseDiscussions(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	var discussions []models.Discussion
	database.DB.Where("course_id = ?", courseID).Order("created_at DESC").Find(&discussions)
	return c.JSON(discussions)
}

func GetDiscussion(c *fiber.Ctx) error {
	discussionID := c.Params("discussionId")
	var discussion models.Discussion
	if err := database.DB.Preload("Replies").First(&discussion, "id = ?", discussionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Discussion not found"})
	}
	return c.JSON(discussion)
}

func UpdateDiscussion(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	discussionID := c.Params("discussionId")

	var discussion models.Discussion
	if err := database.DB.First(&discussion, "id = ?", discussionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Discussion not found"})
	}
	if !utils.CanAccess(principal, discussion.AuthorID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this discussion"})
	}

	var req DiscussionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	discussion.Title = req.Title
	discussion.Body = req.Body
	database.DB.Save(&discussion)
	return c.JSON(discussion)
}

func DeleteDiscussion(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	discussionID := c.Params("discussionId")

	var discussion models.Discussion
	if err := database.DB.First(&discussion, "id = ?", discussionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Discussion not found"})
	}
	if !utils.CanAccess(principal, discussion.AuthorID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this discussion"})
	}

	result := database.DB.Delete(&models.Discussion{}, "id = ?", discussionID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete discussion"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Discussion not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ReplyRequest struct {
	Body string `json:"body" validate:"required"`
}

func CreateReply(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	discussionID, err := uuid.Parse(c.Params("discussionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid discussion id"})
	}

	var discussion models.Discussion
	if err := database.DB.First(&discussion, "id = ?", discussionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Discussion not found"})
	}

	var req ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reply := models.DiscussionReply{
		DiscussionID: discussionID,
		AuthorID:     principal.ID,
		Body:         req.Body,
	}
	if err := database.DB.Create(&reply).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create reply"})
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

func DeleteReply(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	replyID := c.Params("replyId")

	var reply models.DiscussionReply
	if err := database.DB.First(&reply, "id = ?", replyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reply not found"})
	}
	if !utils.CanAccess(principal, reply.AuthorID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this reply"})
	}

	result := database.DB.Delete(&models.DiscussionReply{}, "id = ?", replyID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete reply"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reply not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
