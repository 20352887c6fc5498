package models

import (
	"time"

	"github.com/google/uuid"
)

// A quiz is attached to exactly one of a course or a lesson.
type Quiz struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID     *uuid.UUID `gorm:"type:uuid" json:"course_id"`
	LessonID     *uuid.UUID `gorm:"type:uuid" json:"lesson_id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	PassingScore int        `gorm:"not null;default:70" json:"passing_score"`

	Questions []QuizQuestion `gorm:"foreignkey:QuizID" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuizQuestion struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID        uuid.UUID `gorm:"type:uuid;not null" json:"quiz_id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	Options       string    `gorm:"type:text" json:"options"`
	CorrectAnswer string    `gorm:"type:text;not null" json:"-"`
	OrderIndex    int       `gorm:"not null;default:0" json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
