package models

import (
	"time"

	"github.com/google/uuid"
)

type ExternalAPIKey struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Key       string     `gorm:"size:255;not null;unique" json:"key"`
	Label     string     `gorm:"size:255" json:"label"`
	Active    bool       `gorm:"default:true" json:"active"`
	RevokedAt *time.Time `json:"revoked_at"`

	CreatedAt time.Time `json:"created_at"`
}
