package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
)

type APIKeyRequest struct {
	Label string `json:"label"`
}

// CreateAPIKey mints a new external API key. Superadmin only (enforced
// at the route group).
func CreateAPIKey(c *fiber.Ctx) error {
	var req APIKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate key"})
	}

	apiKey := models.ExternalAPIKey{
		Key:   hex.EncodeToString(keyBytes),
		Label: req.Label,
	}
	if err := database.DB.Create(&apiKey).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create API key"})
	}
	return c.Status(fiber.StatusCreated).JSON(apiKey)
}

func ListAPIKeys(c *fiber.Ctx) error {
	var keys []models.ExternalAPIKey
	database.DB.Order("created_at DESC").Find(&keys)
	return c.JSON(keys)
}

// RevokeAPIKey deactivates a key. Revoking an already-revoked key
// succeeds and stamps revoked_at with the time of this call.
func RevokeAPIKey(c *fiber.Ctx) error {
	keyID := c.Params("keyId")

	var apiKey models.ExternalAPIKey
	if err := database.DB.First(&apiKey, "id = ?", keyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "API key not found"})
	}

	now := time.Now()
	apiKey.Active = false
	apiKey.RevokedAt = &now
	if err := database.DB.Save(&apiKey).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revoke API key"})
	}

	return c.JSON(apiKey)
}
