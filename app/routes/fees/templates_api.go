package fees

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"educore-schools/app/database"
	"educore-schools/app/models"
)

var validate = validator.New()

type CreateFeeTemplateRequest struct {
	ClassName   string  `json:"class_name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// GetFeeTemplatesAPI returns active fee templates, optionally scoped to one
// class, ordered by class name.
func GetFeeTemplatesAPI(c *fiber.Ctx, db *sql.DB) error {
	className := c.Query("class_name")

	templates, err := database.GetActiveFeeTemplates(db, className)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee templates")
	}
	if templates == nil {
		templates = []models.FeeTemplate{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    templates,
	})
}

// CreateFeeTemplateAPI creates a new active fee template for a class.
func CreateFeeTemplateAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateFeeTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Class name, description and a positive amount are required")
	}

	template := models.FeeTemplate{
		ClassName:   req.ClassName,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid due date")
		}
		template.DueDate = &due
	}

	if err := database.CreateFeeTemplate(db, &template); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee template")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    template,
		"message": "Fee template created successfully",
	})
}

// DeleteFeeTemplateAPI soft-deletes a fee template. Existing obligations
// generated from it are not touched.
func DeleteFeeTemplateAPI(c *fiber.Ctx, db *sql.DB) error {
	deleted, err := database.DeleteFeeTemplate(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee template")
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Fee template not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee template deleted successfully",
	})
}

// DeactivateFeeTemplateAPI stops a template from producing new obligations.
func DeactivateFeeTemplateAPI(c *fiber.Ctx, db *sql.DB) error {
	deactivated, err := database.DeactivateFeeTemplate(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate fee template")
	}
	if !deactivated {
		return fiber.NewError(fiber.StatusNotFound, "Fee template not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee template deactivated successfully",
	})
}
