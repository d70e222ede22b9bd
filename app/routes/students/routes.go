package students

import (
	"github.com/gofiber/fiber/v2"

	"educore-schools/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	studentsAPI := app.Group("/api/students")
	studentsAPI.Use(auth.AuthMiddleware)

	studentsAPI.Get("/", GetStudentsAPI)
	studentsAPI.Get("/:id", GetStudentByIDAPI)
	studentsAPI.Post("/", CreateStudentAPI)
}
