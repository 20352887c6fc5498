package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

type EnrollRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

func EnrollInCourse(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	courseID, _ := uuid.Parse(req.CourseID)

	var course models.Course
	if err := database.DB.First(&course, "id = ? AND is_published = ?", courseID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	enrollment := models.CourseEnrollment{
		StudentID: principal.ID,
		CourseID:  courseID,
	}
	if err := database.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student is already enrolled in this course"})
		}
		log.Printf("Failed to create enrollment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll in course"})
	}
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// ListEnrollments returns the caller's enrollments, or every enrollment
// for a privileged principal.
func ListEnrollments(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	var enrollments []models.CourseEnrollment
	query := database.DB.Preload("Course")
	if !utils.IsPrivileged(principal, "admin", "superadmin") {
		query = query.Where("student_id = ?", principal.ID)
	}
	query.Find(&enrollments)
	return c.JSON(enrollments)
}

type enrichedLesson struct {
	models.Lesson
	Quizzes []models.Quiz `json:"quizzes"`
}

type enrichedModule struct {
	models.CourseModule
	Lessons []enrichedLesson `json:"lessons"`
}

// GetEnrollment assembles the full course → modules → lessons structure
// for one enrollment, attaching each lesson's resources and quizzes.
func GetEnrollment(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	enrollmentID := c.Params("enrollmentId")

	var enrollment models.CourseEnrollment
	if err := database.DB.Preload("Course").First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if !utils.CanAccess(principal, enrollment.StudentID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this enrollment"})
	}

	var modules []models.CourseModule
	database.DB.Where("course_id = ?", enrollment.CourseID).Order("order_index").Find(&modules)

	enriched := make([]enrichedModule, 0, len(modules))
	for _, module := range modules {
		var lessons []models.Lesson
		database.DB.Preload("Resources").
			Where("module_id = ?", module.ID).
			Order("order_index").
			Find(&lessons)

		lessonViews := make([]enrichedLesson, 0, len(lessons))
		for _, lesson := range lessons {
			var quizzes []models.Quiz
			database.DB.Where("lesson_id = ?", lesson.ID).Find(&quizzes)
			lessonViews = append(lessonViews, enrichedLesson{Lesson: lesson, Quizzes: quizzes})
		}
		enriched = append(enriched, enrichedModule{CourseModule: module, Lessons: lessonViews})
	}

	var courseQuizzes []models.Quiz
	database.DB.Where("course_id = ?", enrollment.CourseID).Find(&courseQuizzes)

	return c.JSON(fiber.Map{
		"enrollment":     enrollment,
		"course":         enrollment.Course,
		"modules":        enriched,
		"course_quizzes": courseQuizzes,
	})
}

// CompleteEnrollment marks an enrollment finished.
func CompleteEnrollment(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	enrollmentID := c.Params("enrollmentId")

	var enrollment models.CourseEnrollment
	if err := database.DB.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if !utils.CanAccess(principal, enrollment.StudentID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this enrollment"})
	}

	now := time.Now()
	enrollment.Status = "completed"
	enrollment.CompletedAt = &now
	if err := database.DB.Save(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update enrollment"})
	}
	return c.JSON(enrollment)
}

func DeleteEnrollment(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	enrollmentID := c.Params("enrollmentId")

	var enrollment models.CourseEnrollment
	if err := database.DB.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if !utils.CanAccess(principal, enrollment.StudentID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this enrollment"})
	}

	result := database.DB.Delete(&models.CourseEnrollment{}, "id = ?", enrollmentID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete enrollment"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
