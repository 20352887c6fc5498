package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/skillbridge/youth_platform/auth"
	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
)

// Admin management of the three organisational tenant accounts.

type TenantAccountRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func createTenantAccount(c *fiber.Ctx, build func(req TenantAccountRequest, hash string) (interface{}, error)) error {
	var req TenantAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	account, err := build(req, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already exists"})
		}
		log.Printf("Failed to create tenant account: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create account"})
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func CreateCompany(c *fiber.Ctx) error {
	return createTenantAccount(c, func(req TenantAccountRequest, hash string) (interface{}, error) {
		company := models.Company{Username: req.Username, Name: req.Name, Email: req.Email, Password: hash, IsActive: true}
		return &company, database.DB.Create(&company).Error
	})
}

func CreateInstitution(c *fiber.Ctx) error {
	return createTenantAccount(c, func(req TenantAccountRequest, hash string) (interface{}, error) {
		institution := models.Institution{Username: req.Username, Name: req.Name, Email: req.Email, Password: hash, IsActive: true}
		return &institution, database.DB.Create(&institution).Error
	})
}

func CreateMunicipality(c *fiber.Ctx) error {
	return createTenantAccount(c, func(req TenantAccountRequest, hash string) (interface{}, error) {
		municipality := models.Municipality{Username: req.Username, Name: req.Name, Email: req.Email, Password: hash, IsActive: true}
		return &municipality, database.DB.Create(&municipality).Error
	})
}

func ListCompanies(c *fiber.Ctx) error {
	var companies []models.Company
	database.DB.Find(&companies)
	return c.JSON(companies)
}

func ListInstitutions(c *fiber.Ctx) error {
	var institutions []models.Institution
	database.DB.Find(&institutions)
	return c.JSON(institutions)
}

func ListMunicipalities(c *fiber.Ctx) error {
	var municipalities []models.Municipality
	database.DB.Find(&municipalities)
	return c.JSON(municipalities)
}

type ActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func setTenantActive(c *fiber.Ctx, model interface{}) error {
	var req ActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result := database.DB.Model(model).Where("id = ?", c.Params("accountId")).Update("is_active", req.IsActive)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update account"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}
	return c.JSON(fiber.Map{"is_active": req.IsActive})
}

func SetCompanyActive(c *fiber.Ctx) error {
	return setTenantActive(c, &models.Company{})
}

func SetInstitutionActive(c *fiber.Ctx) error {
	return setTenantActive(c, &models.Institution{})
}

func SetMunicipalityActive(c *fiber.Ctx) error {
	return setTenantActive(c, &models.Municipality{})
}
