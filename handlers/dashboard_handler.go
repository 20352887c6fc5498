package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

// StudentDashboard aggregates a student's activity: enrollments, quiz
// attempts, average score and certificates.
func StudentDashboard(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	studentID := principal.ID
	if requested := c.Query("student_id"); requested != "" {
		parsed, err := uuid.Parse(requested)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student_id"})
		}
		if !utils.CanAccess(principal, parsed, "admin", "superadmin") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this dashboard"})
		}
		studentID = parsed
	}

	var enrollmentCount, completedCount, attemptCount, passedCount, certificateCount int64
	database.DB.Model(&models.CourseEnrollment{}).Where("student_id = ?", studentID).Count(&enrollmentCount)
	database.DB.Model(&models.CourseEnrollment{}).Where("student_id = ? AND status = ?", studentID, "completed").Count(&completedCount)
	database.DB.Model(&models.QuizAttempt{}).Where("student_id = ?", studentID).Count(&attemptCount)
	database.DB.Model(&models.QuizAttempt{}).Where("student_id = ? AND passed = ?", studentID, true).Count(&passedCount)
	database.DB.Model(&models.Certificate{}).Where("student_id = ?", studentID).Count(&certificateCount)

	var averageScore float64
	database.DB.Model(&models.QuizAttempt{}).
		Where("student_id = ? AND score IS NOT NULL", studentID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&averageScore)

	return c.JSON(fiber.Map{
		"enrollments":       enrollmentCount,
		"completed_courses": completedCount,
		"quiz_attempts":     attemptCount,
		"quizzes_passed":    passedCount,
		"average_score":     averageScore,
		"certificates":      certificateCount,
	})
}

// AdminDashboard returns platform-wide totals.
func AdminDashboard(c *fiber.Ctx) error {
	var users, companies, institutions, municipalities int64
	var courses, enrollments, attempts, certificates, jobs int64

	database.DB.Model(&models.User{}).Count(&users)
	database.DB.Model(&models.Company{}).Count(&companies)
	database.DB.Model(&models.Institution{}).Count(&institutions)
	database.DB.Model(&models.Municipality{}).Count(&municipalities)
	database.DB.Model(&models.Course{}).Count(&courses)
	database.DB.Model(&models.CourseEnrollment{}).Count(&enrollments)
	database.DB.Model(&models.QuizAttempt{}).Count(&attempts)
	database.DB.Model(&models.Certificate{}).Count(&certificates)
	database.DB.Model(&models.Job{}).Count(&jobs)

	return c.JSON(fiber.Map{
		"users":          users,
		"companies":      companies,
		"institutions":   institutions,
		"municipalities": municipalities,
		"courses":        courses,
		"enrollments":    enrollments,
		"quiz_attempts":  attempts,
		"certificates":   certificates,
		"jobs":           jobs,
	})
}
