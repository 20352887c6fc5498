package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/youth_platform/auth"
	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

type CourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published"`
}

func CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Title:       req.Title,
		Description: req.Description,
		IsPublished: req.IsPublished,
	}

	// Courses created by an institution account are owned by it.
	principal := utils.PrincipalFromCtx(c)
	if principal.Type == auth.TypeInstitution {
		institutionID := principal.ID
		course.InstitutionID = &institutionID
	}

	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	database.DB.Where("is_published = ?", true).Find(&courses)
	return c.JSON(courses)
}

func GetCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	var course models.Course
	if err := database.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	principal := utils.PrincipalFromCtx(c)
	if course.InstitutionID != nil && !utils.CanAccess(principal, *course.InstitutionID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this course"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Title = req.Title
	course.Description = req.Description
	course.IsPublished = req.IsPublished
	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}
	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	principal := utils.PrincipalFromCtx(c)
	if course.InstitutionID != nil && !utils.CanAccess(principal, *course.InstitutionID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this course"})
	}

	result := database.DB.Delete(&models.Course{}, "id = ?", courseID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ModuleRequest struct {
	Title      string `json:"title" validate:"required"`
	OrderIndex int    `json:"order_index"`
}

func CreateModule(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	module := models.CourseModule{
		CourseID:   courseID,
		Title:      req.Title,
		OrderIndex: req.OrderIndex,
	}
	if err := database.DB.Create(&module).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create module"})
	}
	return c.Status(fiber.StatusCreated).JSON(module)
}

func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")
	var module models.CourseModule
	if err := database.DB.First(&module, "id = ?", moduleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	var req ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	module.Title = req.Title
	module.OrderIndex = req.OrderIndex
	database.DB.Save(&module)
	return c.JSON(module)
}

func DeleteModule(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")
	result := database.DB.Delete(&models.CourseModule{}, "id = ?", moduleID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete module"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
