package services

import (
	"educore-schools/app/ledger"
	"educore-schools/app/models"
)

// FeeService orchestrates the fee ledger core against a record store. Each
// method maps to one user-facing action: store calls within a method run
// strictly in order, and no ordering is guaranteed across methods.
type FeeService struct {
	store ledger.Store
}

func NewFeeService(store ledger.Store) *FeeService {
	return &FeeService{store: store}
}

// GenerateObligations materializes missing obligations for every active
// student with a matching active template, optionally scoped to one class.
// The batch is written in a single bulk insert; on failure nothing in the
// batch is guaranteed and the caller simply re-runs, which is safe because
// generation is idempotent. Returns the number of obligations created.
func (s *FeeService) GenerateObligations(className string) (int, error) {
	students, err := s.store.ListStudents(className)
	if err != nil {
		return 0, err
	}
	templates, err := s.store.ListActiveTemplates(className)
	if err != nil {
		return 0, err
	}
	// Dedup against the full obligation set, not just the class, so a
	// student who changed classes keeps their old obligations recognized.
	existing, err := s.store.ListObligations(ledger.ObligationFilter{})
	if err != nil {
		return 0, err
	}

	created := ledger.GenerateObligations(students, templates, existing)
	if len(created) == 0 {
		return 0, nil
	}
	return s.store.InsertObligations(created)
}

// ApplyPayment reads the obligation, validates and applies the payment in
// the core, then persists it with a conditional update keyed on the
// amount_paid that was read. A concurrent payer surfaces as
// ledger.ErrConflict and nothing is written; the client re-reads and
// retries with fresh state.
func (s *FeeService) ApplyPayment(obligationID string, amount float64, method models.PaymentMethod) (models.FeeObligation, error) {
	current, err := s.store.GetObligation(obligationID)
	if err != nil {
		return models.FeeObligation{}, err
	}

	updated, err := ledger.ApplyPayment(current, amount, method)
	if err != nil {
		return current, err
	}

	if err := s.store.UpdateObligationPayment(obligationID, current.AmountPaid, updated); err != nil {
		return current, err
	}
	return updated, nil
}

// ListObligations lists obligations with statuses recomputed on read.
func (s *FeeService) ListObligations(filter ledger.ObligationFilter) ([]models.FeeObligation, error) {
	return s.store.ListObligations(filter)
}

// GetObligation fetches one obligation with its status recomputed.
func (s *FeeService) GetObligation(id string) (models.FeeObligation, error) {
	return s.store.GetObligation(id)
}

// StudentArrears totals the outstanding balance of one student.
func (s *FeeService) StudentArrears(studentID string) (float64, error) {
	obligations, err := s.store.ListObligations(ledger.ObligationFilter{StudentID: studentID})
	if err != nil {
		return 0, err
	}
	return ledger.Arrears(studentID, obligations), nil
}

// ClassSummary computes the arrears position of one class.
func (s *FeeService) ClassSummary(className string) (models.ClassFeeSummary, error) {
	students, err := s.store.ListStudents(className)
	if err != nil {
		return models.ClassFeeSummary{}, err
	}
	obligations, err := s.store.ListObligations(ledger.ObligationFilter{ClassName: className})
	if err != nil {
		return models.ClassFeeSummary{}, err
	}
	return ledger.ClassSummary(className, students, obligations), nil
}

// Stats totals the whole ledger.
func (s *FeeService) Stats() (models.FeeStats, error) {
	obligations, err := s.store.ListObligations(ledger.ObligationFilter{})
	if err != nil {
		return models.FeeStats{}, err
	}
	return ledger.Stats(obligations), nil
}
