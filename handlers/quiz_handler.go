package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/services"
	"github.com/skillbridge/youth_platform/utils"
	"github.com/skillbridge/youth_platform/websocket"
)

type QuizQuestionRequest struct {
	QuestionText  string `json:"question_text" validate:"required"`
	Options       string `json:"options"`
	CorrectAnswer string `json:"correct_answer" validate:"required"`
	OrderIndex    int    `json:"order_index"`
}

type QuizRequest struct {
	Title        string                `json:"title" validate:"required"`
	CourseID     *string               `json:"course_id"`
	LessonID     *string               `json:"lesson_id"`
	PassingScore int                   `json:"passing_score" validate:"gte=0,lte=100"`
	Questions    []QuizQuestionRequest `json:"questions" validate:"omitempty,dive"`
}

func (r QuizRequest) parent() (courseID, lessonID *uuid.UUID, err error) {
	if (r.CourseID == nil) == (r.LessonID == nil) {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Exactly one of course_id or lesson_id must be set")
	}
	if r.CourseID != nil {
		id, parseErr := uuid.Parse(*r.CourseID)
		if parseErr != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid course_id")
		}
		return &id, nil, nil
	}
	id, parseErr := uuid.Parse(*r.LessonID)
	if parseErr != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid lesson_id")
	}
	return nil, &id, nil
}

func CreateQuiz(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, lessonID, err := req.parent()
	if err != nil {
		return err
	}

	quiz := models.Quiz{
		Title:        req.Title,
		CourseID:     courseID,
		LessonID:     lessonID,
		PassingScore: req.PassingScore,
	}
	for _, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			OrderIndex:    q.OrderIndex,
		})
	}

	if err := database.DB.Create(&quiz).Error; err != nil {
		log.Printf("Failed to create quiz: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	websocket.Emit("quiz_created", quiz)
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

func ListQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	database.DB.Find(&quizzes)
	return c.JSON(quizzes)
}

func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return c.JSON(quiz)
}

func UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, lessonID, err := req.parent()
	if err != nil {
		return err
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		quiz.Title = req.Title
		quiz.CourseID = courseID
		quiz.LessonID = lessonID
		quiz.PassingScore = req.PassingScore
		if err := tx.Save(&quiz).Error; err != nil {
			return err
		}

		if req.Questions == nil {
			return nil
		}
		if err := tx.Delete(&models.QuizQuestion{}, "quiz_id = ?", quiz.ID).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			question := models.QuizQuestion{
				QuizID:        quiz.ID,
				QuestionText:  q.QuestionText,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				OrderIndex:    q.OrderIndex,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		log.Printf("Failed to update quiz: %v", txErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update quiz"})
	}

	websocket.Emit("quiz_updated", quiz)
	return c.JSON(quiz)
}

func DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.QuizQuestion{}, "quiz_id = ?", quizID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Quiz{}, "id = ?", quizID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if txErr == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete quiz"})
	}

	websocket.Emit("quiz_deleted", fiber.Map{"id": quizID})
	return c.SendStatus(fiber.StatusNoContent)
}

type CompleteQuizRequest struct {
	EnrollmentID string `json:"enrollment_id" validate:"required,uuid"`
	Answers      []struct {
		QuestionID string `json:"question_id" validate:"required,uuid"`
		Answer     string `json:"answer" validate:"required"`
	} `json:"answers" validate:"required,min=1,dive"`
}

// CompleteQuiz grades a submission and records the attempt, its answers
// and the final score in a single transaction.
func CompleteQuiz(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	quizID := c.Params("quizId")

	var req CompleteQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var quiz models.Quiz
	if err := database.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var enrollment models.CourseEnrollment
	if err := database.DB.First(&enrollment, "id = ? AND student_id = ?", req.EnrollmentID, principal.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	if quiz.CourseID != nil && *quiz.CourseID != enrollment.CourseID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz does not belong to the enrolled course"})
	}
	if quiz.LessonID != nil {
		var lesson models.Lesson
		if err := database.DB.First(&lesson, "id = ?", quiz.LessonID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
		}
		var module models.CourseModule
		if err := database.DB.First(&module, "id = ?", lesson.ModuleID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
		}
		if module.CourseID != enrollment.CourseID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz does not belong to the enrolled course"})
		}
	}

	submitted := make([]services.SubmittedAnswer, len(req.Answers))
	for i, a := range req.Answers {
		questionID, _ := uuid.Parse(a.QuestionID)
		submitted[i] = services.SubmittedAnswer{QuestionID: questionID, Answer: a.Answer}
	}

	score, scored, err := services.ScoreQuiz(quiz.Questions, submitted)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	passed := services.Passed(score, quiz.PassingScore)

	attempt := models.QuizAttempt{
		EnrollmentID: enrollment.ID,
		QuizID:       quiz.ID,
		StudentID:    principal.ID,
		StartedAt:    time.Now(),
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		answers := make([]models.QuizAnswer, len(scored))
		for i, s := range scored {
			answers[i] = models.QuizAnswer{
				AttemptID:       attempt.ID,
				QuestionID:      s.QuestionID,
				SubmittedAnswer: s.Answer,
				IsCorrect:       s.IsCorrect,
			}
		}
		if err := tx.Create(&answers).Error; err != nil {
			return err
		}

		now := time.Now()
		attempt.Score = &score
		attempt.Passed = &passed
		attempt.CompletedAt = &now
		return tx.Save(&attempt).Error
	})
	if txErr != nil {
		log.Printf("Failed to record quiz attempt: %v", txErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save quiz results"})
	}

	// Passing a course-level quiz earns the course certificate.
	if passed && quiz.CourseID != nil {
		go services.IssueCertificate(principal.ID, *quiz.CourseID)
	}

	return c.JSON(fiber.Map{
		"attempt_id": attempt.ID,
		"score":      score,
		"passed":     passed,
	})
}

// ListMyAttempts returns the caller's attempts; privileged roles may
// request any student's with ?student_id=.
func ListMyAttempts(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	studentID := principal.ID
	if requested := c.Query("student_id"); requested != "" {
		parsed, err := uuid.Parse(requested)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student_id"})
		}
		if !utils.CanAccess(principal, parsed, "admin", "superadmin") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to these attempts"})
		}
		studentID = parsed
	}

	var attempts []models.QuizAttempt
	database.DB.Preload("Answers").Where("student_id = ?", studentID).Find(&attempts)
	return c.JSON(attempts)
}
