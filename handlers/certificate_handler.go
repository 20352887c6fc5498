package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

// ListCertificates returns the caller's certificates; privileged roles
// see all of them.
func ListCertificates(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	var certificates []models.Certificate
	query := database.DB.Order("issued_at DESC")
	if !utils.IsPrivileged(principal, "admin", "superadmin") {
		query = query.Where("student_id = ?", principal.ID)
	}
	query.Find(&certificates)
	return c.JSON(certificates)
}

func GetCertificate(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	certificateID := c.Params("certificateId")

	var certificate models.Certificate
	if err := database.DB.First(&certificate, "id = ?", certificateID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}
	if !utils.CanAccess(principal, certificate.StudentID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this certificate"})
	}
	return c.JSON(certificate)
}

func DeleteCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("certificateId")
	result := database.DB.Delete(&models.Certificate{}, "id = ?", certificateID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete certificate"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
