package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func CertificateRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	certificates := api.Group("/certificates", middleware.Protected())
	certificates.Get("", handlers.ListCertificates)
	certificates.Get("/:certificateId", handlers.GetCertificate)
	certificates.Delete("/:certificateId",
		middleware.RoleRequired("admin", "superadmin"), handlers.DeleteCertificate)
}
