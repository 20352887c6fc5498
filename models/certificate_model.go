package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	CourseTitle    string    `gorm:"size:255;not null" json:"course_title"`
	IssuedAt       time.Time `gorm:"not null" json:"issued_at"`
	CertificateURL string    `gorm:"type:text" json:"certificate_url"`

	Student User   `gorm:"foreignkey:StudentID" json:"-"`
	Course  Course `gorm:"foreignkey:CourseID" json:"-"`
}
