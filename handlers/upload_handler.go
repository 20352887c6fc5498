package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	config "github.com/skillbridge/youth_platform/configs"
	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
	"github.com/skillbridge/youth_platform/utils"
)

// UploadFile accepts a multipart file for one category (image, video,
// document), validates size and MIME type, and returns the public URL.
func UploadFile(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	category := c.Params("category")

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required."})
	}

	contentType := file.Header.Get("Content-Type")
	if err := utils.ValidateUpload(category, contentType, file.Size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize upload client."})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   fmt.Sprintf("youth_platform_%ss", category),
		PublicID: fmt.Sprintf("%s_%s_%s", category, principal.ID, file.Filename),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": uploadResult.SecureURL})
}

// UploadProfileDocument stores a CV or cover letter PDF on the caller's
// profile.
func UploadProfileDocument(c *fiber.Ctx) error {
	principal := utils.PrincipalFromCtx(c)
	kind := c.Params("kind")
	if kind != "cv" && kind != "cover-letter" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown document kind"})
	}

	var profile models.Profile
	if err := database.DB.First(&profile, "user_id = ?", principal.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required."})
	}
	if err := utils.ValidateUpload("document", file.Header.Get("Content-Type"), file.Size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize upload client."})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "youth_platform_documents",
		PublicID:     fmt.Sprintf("%s_%s", kind, principal.ID),
		ResourceType: "raw",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file."})
	}

	url := uploadResult.SecureURL
	if kind == "cv" {
		profile.CVURL = &url
	} else {
		profile.CoverLetterURL = &url
	}
	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
