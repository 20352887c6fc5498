package models

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ModuleID   uuid.UUID `gorm:"type:uuid;not null" json:"module_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	VideoURL   *string   `gorm:"size:255" json:"video_url"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`

	Resources []LessonResource `gorm:"foreignkey:LessonID" json:"resources,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LessonResource struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LessonID uuid.UUID `gorm:"type:uuid;not null" json:"lesson_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	URL      string    `gorm:"size:255;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}
