package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

type JobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	IsActive    bool   `json:"is_active"`
}

func CreateJob(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	job := models.Job{
		CompanyID:   principal.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		IsActive:    req.IsActive,
	}
	if err := database.DB.Create(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create job"})
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// ListJobs is public and returns active postings only.
func ListJobs(c *fiber.Ctx) error {
	var jobs []models.Job
	database.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&jobs)
	return c.JSON(jobs)
}

// ListCompanyJobs returns the calling company's own postings, active or not.
func ListCompanyJobs(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	var jobs []models.Job
	database.DB.Where("company_id = ?", principal.ID).Order("created_at DESC").Find(&jobs)
	return c.JSON(jobs)
}

func GetJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	var job models.Job
	if err := database.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	return c.JSON(job)
}

func UpdateJob(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	jobID := c.Params("jobId")

	var job models.Job
	if err := database.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if !utils.CanAccess(principal, job.CompanyID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this job posting"})
	}

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.IsActive = req.IsActive
	database.DB.Save(&job)
	return c.JSON(job)
}

func DeleteJob(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	jobID := c.Params("jobId")

	var job models.Job
	if err := database.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if !utils.CanAccess(principal, job.CompanyID, "admin", "superadmin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this job posting"})
	}

	result := database.DB.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete job"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
