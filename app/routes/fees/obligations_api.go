package fees

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"educore-schools/app/ledger"
	"educore-schools/app/models"
	"educore-schools/app/services"
)

type GenerateObligationsRequest struct {
	ClassName string `json:"class_name"`
}

// GenerateObligationsAPI materializes missing fee obligations from the
// active templates, optionally scoped to one class. Safe to call again
// after a failure: generation is idempotent.
func GenerateObligationsAPI(c *fiber.Ctx, svc *services.FeeService) error {
	var req GenerateObligationsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	created, err := svc.GenerateObligations(req.ClassName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate obligations: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"created_count": created,
		"message":       "Fee obligations generated",
	})
}

// GetObligationsAPI lists obligations filtered by student, class or status.
func GetObligationsAPI(c *fiber.Ctx, svc *services.FeeService) error {
	filter := ledger.ObligationFilter{
		StudentID: c.Query("student_id"),
		ClassName: c.Query("class_name"),
		Status:    models.FeeStatus(c.Query("status")),
	}

	obligations, err := svc.ListObligations(filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fees")
	}
	if obligations == nil {
		obligations = []models.FeeObligation{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    obligations,
	})
}

func GetObligationByIDAPI(c *fiber.Ctx, svc *services.FeeService) error {
	obligation, err := svc.GetObligation(c.Params("id"))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    obligation,
	})
}

// GetStudentArrearsAPI returns the outstanding balance of one student.
func GetStudentArrearsAPI(c *fiber.Ctx, svc *services.FeeService) error {
	studentID := c.Params("studentID")

	arrears, err := svc.StudentArrears(studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute arrears")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"student_id": studentID,
		"arrears":    arrears,
	})
}

// GetClassSummaryAPI returns the arrears position of one class.
func GetClassSummaryAPI(c *fiber.Ctx, svc *services.FeeService) error {
	summary, err := svc.ClassSummary(c.Params("className"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute class summary")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

// GetFeeStatsAPI returns ledger-wide totals.
func GetFeeStatsAPI(c *fiber.Ctx, svc *services.FeeService) error {
	stats, err := svc.Stats()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute fee stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
