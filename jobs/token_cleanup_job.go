package jobs

import (
	"log"
	"time"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
)

// PurgeStaleRefreshTokens deletes refresh tokens that are expired or were
// revoked more than a day ago.
func PurgeStaleRefreshTokens() {
	log.Println("Running job: PurgeStaleRefreshTokens...")

	cutoff := time.Now().Add(-24 * time.Hour)
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Or("revoked = ? AND created_at < ?", true, cutoff).
		Delete(&models.RefreshToken{})

	if result.Error != nil {
		log.Printf("Error purging refresh tokens: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d stale refresh tokens", result.RowsAffected)
	}
}
