package classes

import (
	"github.com/gofiber/fiber/v2"

	"educore-schools/app/routes/auth"
)

// SetupClassesRoutes sets up the classes routes
func SetupClassesRoutes(app *fiber.App) {
	classesAPI := app.Group("/api/classes")
	classesAPI.Use(auth.AuthMiddleware)

	classesAPI.Get("/", GetClassesAPI)
	classesAPI.Post("/", CreateClassAPI)
}
