package fees

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"educore-schools/app/ledger"
	"educore-schools/app/models"
	"educore-schools/app/services"
)

type ApplyPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,oneof=mobile_money card bank_transfer cash"`
}

// ApplyPaymentAPI applies a payment to one obligation. The write is
// conditional on the balance that was read: losing a race against another
// payer returns 409 and the client retries with fresh state.
func ApplyPaymentAPI(c *fiber.Ctx, svc *services.FeeService) error {
	var req ApplyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "A positive amount and a valid payment method are required")
	}

	updated, err := svc.ApplyPayment(c.Params("id"), req.Amount, models.PaymentMethod(req.Method))
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Fee not found")
		case errors.Is(err, ledger.ErrInvalidPayment):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledger.ErrConflict):
			return fiber.NewError(fiber.StatusConflict, "Fee was updated by another payment, please retry")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to apply payment: "+err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated,
		"message": "Payment applied successfully",
	})
}
