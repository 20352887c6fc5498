package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillbridge/youth_platform/handlers"
	"github.com/skillbridge/youth_platform/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(),
		middleware.RoleRequired("admin", "superadmin"))

	admin.Post("/companies", handlers.CreateCompany)
	admin.Get("/companies", handlers.ListCompanies)
	admin.Patch("/companies/:accountId/active", handlers.SetCompanyActive)

	admin.Post("/institutions", handlers.CreateInstitution)
	admin.Get("/institutions", handlers.ListInstitutions)
	admin.Patch("/institutions/:accountId/active", handlers.SetInstitutionActive)

	admin.Post("/municipalities", handlers.CreateMunicipality)
	admin.Get("/municipalities", handlers.ListMunicipalities)
	admin.Patch("/municipalities/:accountId/active", handlers.SetMunicipalityActive)

	// External API keys are superadmin-only.
	keys := api.Group("/admin/api-keys", middleware.Protected(),
		middleware.RoleRequired("superadmin"))
	keys.Post("", handlers.CreateAPIKey)
	keys.Get("", handlers.ListAPIKeys)
	keys.Post("/:keyId/revoke", handlers.RevokeAPIKey)
}
