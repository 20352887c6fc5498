package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
)

type LessonRequest struct {
	Title      string  `json:"title" validate:"required"`
	Content    string  `json:"content"`
	VideoURL   *string `json:"video_url"`
	OrderIndex int     `json:"order_index"`
}

func CreateLesson(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid module id"})
	}

	var module models.CourseModule
	if err := database.DB.First(&module, "id = ?", moduleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lesson := models.Lesson{
		ModuleID:   moduleID,
		Title:      req.Title,
		Content:    req.Content,
		VideoURL:   req.VideoURL,
		OrderIndex: req.OrderIndex,
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}
	return c.Status(fiber.StatusCreated).JSON(lesson)
}

func GetLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	var lesson models.Lesson
	if err := database.DB.Preload("Resources").First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	return c.JSON(lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lesson.Title = req.Title
	lesson.Content = req.Content
	lesson.VideoURL = req.VideoURL
	lesson.OrderIndex = req.OrderIndex
	database.DB.Save(&lesson)
	return c.JSON(lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	result := database.DB.Delete(&models.Lesson{}, "id = ?", lessonID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete lesson"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ResourceRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

func AddLessonResource(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson id"})
	}

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var req ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resource := models.LessonResource{
		LessonID: lessonID,
		Name:     req.Name,
		URL:      req.URL,
	}
	if err := database.DB.Create(&resource).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add resource"})
	}
	return c.Status(fiber.StatusCreated).JSON(resource)
}

func DeleteLessonResource(c *fiber.Ctx) error {
	resourceID := c.Params("resourceId")
	result := database.DB.Delete(&models.LessonResource{}, "id = ?", resourceID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete resource"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
