package fees

import (
	"github.com/gofiber/fiber/v2"

	"educore-schools/app/config"
	"educore-schools/app/database"
	"educore-schools/app/routes/auth"
	"educore-schools/app/services"
)

// SetupFeesRoutes sets up the fee template and fee ledger routes
func SetupFeesRoutes(app *fiber.App) {
	svc := services.NewFeeService(database.NewLedgerStore(config.GetDB()))

	// Fee template registry
	templatesAPI := app.Group("/api/fee-templates")
	templatesAPI.Use(auth.AuthMiddleware)

	templatesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeTemplatesAPI(c, config.GetDB())
	})

	templatesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeTemplateAPI(c, config.GetDB())
	})

	templatesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeTemplateAPI(c, config.GetDB())
	})

	templatesAPI.Post("/:id/deactivate", func(c *fiber.Ctx) error {
		return DeactivateFeeTemplateAPI(c, config.GetDB())
	})

	// Fee ledger
	feesAPI := app.Group("/api/fees")
	feesAPI.Use(auth.AuthMiddleware)

	feesAPI.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateObligationsAPI(c, svc)
	})

	feesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetObligationsAPI(c, svc)
	})

	feesAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetFeeStatsAPI(c, svc)
	})

	feesAPI.Get("/arrears/:studentID", func(c *fiber.Ctx) error {
		return GetStudentArrearsAPI(c, svc)
	})

	feesAPI.Get("/summary/:className", func(c *fiber.Ctx) error {
		return GetClassSummaryAPI(c, svc)
	})

	feesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetObligationByIDAPI(c, svc)
	})

	feesAPI.Post("/:id/pay", func(c *fiber.Ctx) error {
		return ApplyPaymentAPI(c, svc)
	})
}
