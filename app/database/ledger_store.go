package database

import (
	"database/sql"
	"fmt"
	"strings"

	"educore-schools/app/ledger"
	"educore-schools/app/models"
)

// LedgerStore is the PostgreSQL implementation of ledger.Store.
type LedgerStore struct {
	DB *sql.DB
}

func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{DB: db}
}

func (s *LedgerStore) ListStudents(className string) ([]models.Student, error) {
	return GetStudents(s.DB, className)
}

func (s *LedgerStore) ListActiveTemplates(className string) ([]models.FeeTemplate, error) {
	return GetActiveFeeTemplates(s.DB, className)
}

func (s *LedgerStore) ListObligations(filter ledger.ObligationFilter) ([]models.FeeObligation, error) {
	query := `SELECT id, student_id, COALESCE(student_name, ''), COALESCE(class_name, ''), description,
			  amount_due, amount_paid, due_date, payment_date, payment_reference, payment_method,
			  created_at, updated_at
			  FROM student_fees`

	var conditions []string
	var args []interface{}
	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if filter.ClassName != "" {
		args = append(args, filter.ClassName)
		conditions = append(conditions, fmt.Sprintf("class_name = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var obligations []models.FeeObligation
	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, err
		}
		// Status is derived on every read, never read back from the store.
		o.Status = ledger.Status(o.AmountDue, o.AmountPaid)
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		obligations = append(obligations, o)
	}
	return obligations, rows.Err()
}

func (s *LedgerStore) GetObligation(id string) (models.FeeObligation, error) {
	query := `SELECT id, student_id, COALESCE(student_name, ''), COALESCE(class_name, ''), description,
			  amount_due, amount_paid, due_date, payment_date, payment_reference, payment_method,
			  created_at, updated_at
			  FROM student_fees WHERE id = $1`

	o, err := scanObligation(s.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return models.FeeObligation{}, ledger.ErrNotFound
	}
	if err != nil {
		return models.FeeObligation{}, err
	}
	o.Status = ledger.Status(o.AmountDue, o.AmountPaid)
	return o, nil
}

// InsertObligations writes the whole batch in one statement. The natural
// key index skips rows another generation pass inserted first, so the write
// stays idempotent under concurrency.
func (s *LedgerStore) InsertObligations(obligations []models.FeeObligation) (int, error) {
	if len(obligations) == 0 {
		return 0, nil
	}

	var placeholders []string
	var args []interface{}
	for i, o := range obligations {
		base := i * 7
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, o.StudentID, o.StudentName, o.ClassName, o.Description, o.AmountDue, string(o.Status), o.DueDate)
	}

	query := fmt.Sprintf(`INSERT INTO student_fees (student_id, student_name, class_name, description, amount_due, status, due_date)
			  VALUES %s
			  ON CONFLICT (student_id, description) DO NOTHING`,
		strings.Join(placeholders, ", "))

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(inserted), nil
}

// UpdateObligationPayment applies the payment only while the stored
// amount_paid still equals what the caller read. Losing the race returns
// ledger.ErrConflict with nothing written.
func (s *LedgerStore) UpdateObligationPayment(id string, expectedPaid float64, updated models.FeeObligation) error {
	query := `UPDATE student_fees
			  SET amount_paid = $1, status = $2, payment_date = $3, payment_reference = $4,
				  payment_method = $5, updated_at = NOW()
			  WHERE id = $6 AND amount_paid = $7`

	result, err := s.DB.Exec(query, updated.AmountPaid, string(updated.Status), updated.PaymentDate,
		updated.PaymentReference, updated.PaymentMethod, id, expectedPaid)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var exists bool
		if err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM student_fees WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ledger.ErrConflict
		}
		return ledger.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanObligation(row rowScanner) (models.FeeObligation, error) {
	var o models.FeeObligation
	err := row.Scan(
		&o.ID, &o.StudentID, &o.StudentName, &o.ClassName, &o.Description,
		&o.AmountDue, &o.AmountPaid, &o.DueDate, &o.PaymentDate,
		&o.PaymentReference, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}
