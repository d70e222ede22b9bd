package classes

import (
	"github.com/gofiber/fiber/v2"

	"educore-schools/app/config"
	"educore-schools/app/database"
	"educore-schools/app/models"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetClasses(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	if classes == nil {
		classes = []models.Class{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    classes,
	})
}

func CreateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if class.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Class name is required")
	}

	class.IsActive = true
	if err := database.CreateClass(config.GetDB(), &class); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    class,
		"message": "Class created successfully",
	})
}
