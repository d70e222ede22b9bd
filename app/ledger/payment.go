package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"educore-schools/app/models"
)

// ApplyPayment applies a single payment to one obligation and returns the
// updated copy. The input obligation is not mutated on rejection: a payment
// that is not positive, or that exceeds the outstanding balance, fails with
// ErrInvalidPayment. Overpayment is rejected outright rather than clamped.
func ApplyPayment(o models.FeeObligation, amount float64, method models.PaymentMethod) (models.FeeObligation, error) {
	if amount <= 0 {
		return o, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidPayment)
	}
	outstanding := o.Outstanding()
	if amount > outstanding {
		return o, fmt.Errorf("%w: amount %.2f exceeds outstanding balance %.2f", ErrInvalidPayment, amount, outstanding)
	}

	now := time.Now()
	ref := NewPaymentReference()
	methodStr := string(method)

	o.AmountPaid += amount
	o.Status = Status(o.AmountDue, o.AmountPaid)
	o.PaymentDate = &now
	o.PaymentReference = &ref
	o.PaymentMethod = &methodStr
	o.UpdatedAt = now
	return o, nil
}

// NewPaymentReference generates a unique reference string recorded against
// each payment for receipts and audit.
func NewPaymentReference() string {
	return fmt.Sprintf("PAY-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])
}
