package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;unique" json:"user_id"`
	MunicipalityID *uuid.UUID `gorm:"type:uuid" json:"municipality_id"`

	FirstName      string   `gorm:"size:100;not null" json:"first_name"`
	LastName       string   `gorm:"size:100;not null" json:"last_name"`
	Phone          *string  `gorm:"size:30" json:"phone"`
	EducationLevel *string  `gorm:"size:100" json:"education_level"`
	Skills         []string `gorm:"serializer:json" json:"skills"`

	CVURL          *string `gorm:"size:255" json:"cv_url"`
	CoverLetterURL *string `gorm:"size:255" json:"cover_letter_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
