package ledger

import "educore-schools/app/models"

// ObligationFilter narrows obligation listings. Zero values mean "no
// filter". Status filters on the recomputed status, not the stored column.
type ObligationFilter struct {
	StudentID string
	ClassName string
	Status    models.FeeStatus
}

// Match reports whether the obligation passes the filter.
func (f ObligationFilter) Match(o models.FeeObligation) bool {
	if f.StudentID != "" && o.StudentID != f.StudentID {
		return false
	}
	if f.ClassName != "" && o.ClassName != f.ClassName {
		return false
	}
	if f.Status != "" && Status(o.AmountDue, o.AmountPaid) != f.Status {
		return false
	}
	return true
}

// Store is the record-store surface the fee ledger consumes. The production
// implementation is PostgreSQL (app/database); tests use an in-memory one.
type Store interface {
	ListStudents(className string) ([]models.Student, error)
	ListActiveTemplates(className string) ([]models.FeeTemplate, error)
	ListObligations(filter ObligationFilter) ([]models.FeeObligation, error)
	GetObligation(id string) (models.FeeObligation, error)

	// InsertObligations writes the batch in a single bulk statement. Rows
	// colliding on the (student_id, description) key are skipped, so a
	// concurrent generation pass is harmless. Returns the number of rows
	// actually inserted.
	InsertObligations(obligations []models.FeeObligation) (int, error)

	// UpdateObligationPayment persists a payment as a conditional update:
	// it only applies while the stored amount_paid still equals
	// expectedPaid. If another payer got there first it returns ErrConflict
	// and writes nothing.
	UpdateObligationPayment(id string, expectedPaid float64, updated models.FeeObligation) error
}
