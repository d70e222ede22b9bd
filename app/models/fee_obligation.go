package models

import "time"

// FeeObligation is a single student's amount owed for one fee line item,
// materialized from a FeeTemplate. The pair (student_id, description) is the
// natural key; the store enforces it with a unique index. AmountDue and
// DueDate are snapshots taken at generation time and are not re-synced if
// the template later changes.
type FeeObligation struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID        string     `json:"student_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_student_description" validate:"required,uuid"`
	StudentName      string     `json:"student_name"`
	ClassName        string     `json:"class_name" gorm:"index"`
	Description      string     `json:"description" gorm:"not null;uniqueIndex:idx_student_description" validate:"required"`
	AmountDue        float64    `json:"amount_due" gorm:"not null;type:numeric" validate:"gte=0"`
	AmountPaid       float64    `json:"amount_paid" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	Status           FeeStatus  `json:"status" gorm:"not null;default:'Pending';index"`
	DueDate          *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	PaymentMethod    *string    `json:"payment_method,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// Outstanding returns the unpaid balance, floored at zero.
func (o *FeeObligation) Outstanding() float64 {
	if o.AmountPaid >= o.AmountDue {
		return 0
	}
	return o.AmountDue - o.AmountPaid
}

// ClassFeeSummary aggregates the arrears position of one class.
type ClassFeeSummary struct {
	ClassName           string  `json:"class_name"`
	TotalStudents       int     `json:"total_students"`
	StudentsWithArrears int     `json:"students_with_arrears"`
	TotalArrears        float64 `json:"total_arrears"`
}

// FeeStats aggregates the whole ledger for the admin dashboard.
type FeeStats struct {
	TotalObligations int     `json:"total_obligations"`
	PaidCount        int     `json:"paid_count"`
	PartialCount     int     `json:"partial_count"`
	PendingCount     int     `json:"pending_count"`
	TotalCollected   float64 `json:"total_collected"`
	TotalOutstanding float64 `json:"total_outstanding"`
}
