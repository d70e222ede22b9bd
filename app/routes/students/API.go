package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"educore-schools/app/config"
	"educore-schools/app/database"
	"educore-schools/app/models"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	className := c.Query("class_name")

	students, err := database.GetStudents(config.GetDB(), className)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	if students == nil {
		students = []models.Student{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if student.StudentID == "" || student.FirstName == "" || student.LastName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	student.IsActive = true
	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student created successfully",
	})
}
