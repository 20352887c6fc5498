package models

import (
	"time"

	"github.com/google/uuid"
)

type Discussion struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Body     string    `gorm:"type:text;not null" json:"body"`

	Replies []DiscussionReply `gorm:"foreignkey:DiscussionID" json:"replies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DiscussionReply struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DiscussionID uuid.UUID `gorm:"type:uuid;not null" json:"discussion_id"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Body         string    `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
