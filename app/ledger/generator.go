package ledger

import (
	"time"

	"educore-schools/app/models"
)

// obligationKey is the natural key under which obligations are deduplicated.
// The store backs it with a unique index on (student_id, description).
type obligationKey struct {
	studentID   string
	description string
}

// GenerateObligations materializes a Pending obligation for every
// (student, active template matching the student's class) pair not already
// present in existing. Amount and due date are snapshotted from the
// template. The function is idempotent: run twice over the same inputs, the
// second run emits nothing. Deactivated or deleted templates simply stop
// producing new obligations; the ones already generated are left alone.
func GenerateObligations(students []models.Student, templates []models.FeeTemplate, existing []models.FeeObligation) []models.FeeObligation {
	seen := make(map[obligationKey]bool, len(existing))
	for _, o := range existing {
		seen[obligationKey{o.StudentID, o.Description}] = true
	}

	now := time.Now()
	var created []models.FeeObligation
	for _, s := range students {
		if !s.IsActive {
			continue
		}
		for _, t := range templates {
			if !t.IsActive || t.DeletedAt != nil || t.ClassName != s.ClassName {
				continue
			}
			key := obligationKey{s.ID, t.Description}
			if seen[key] {
				continue
			}
			seen[key] = true
			created = append(created, models.FeeObligation{
				StudentID:   s.ID,
				StudentName: s.FullName(),
				ClassName:   s.ClassName,
				Description: t.Description,
				AmountDue:   t.Amount,
				AmountPaid:  0,
				Status:      models.FeePending,
				DueDate:     t.DueDate,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}
	return created
}
