package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

func GetMyProfile(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	var profile models.Profile
	if err := database.DB.First(&profile, "user_id = ?", principal.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.JSON(profile)
}

func GetProfile(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if !utils.CanAccess(principal, userID, "admin", "superadmin", "municipality") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this profile"})
	}

	var profile models.Profile
	if err := database.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.JSON(profile)
}

type UpdateProfileRequest struct {
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	Phone          *string  `json:"phone"`
	EducationLevel *string  `json:"education_level"`
	Skills         []string `json:"skills"`
}

func UpdateMyProfile(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	var profile models.Profile
	if err := database.DB.First(&profile, "user_id = ?", principal.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Phone = req.Phone
	profile.EducationLevel = req.EducationLevel
	profile.Skills = req.Skills
	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(profile)
}
