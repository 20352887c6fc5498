package models

import (
	"time"

	"github.com/google/uuid"
)

type QuizAttempt struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;not null" json:"enrollment_id"`
	QuizID       uuid.UUID `gorm:"type:uuid;not null" json:"quiz_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`

	Score       *int       `json:"score"`
	Passed      *bool      `json:"passed"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Quiz    Quiz         `gorm:"foreignkey:QuizID" json:"-"`
	Answers []QuizAnswer `gorm:"foreignkey:AttemptID" json:"answers,omitempty"`
}

type QuizAnswer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AttemptID       uuid.UUID `gorm:"type:uuid;not null" json:"attempt_id"`
	QuestionID      uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	SubmittedAnswer string    `gorm:"type:text;not null" json:"submitted_answer"`
	IsCorrect       bool      `gorm:"not null" json:"is_correct"`
}
