package models

import (
	"time"

	"github.com/google/uuid"
)

type CourseModule struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`

	Lessons []Lesson `gorm:"foreignkey:ModuleID" json:"lessons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
