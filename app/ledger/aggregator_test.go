package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"educore-schools/app/models"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		due  float64
		paid float64
		want models.FeeStatus
	}{
		{"nothing paid", 500, 0, models.FeePending},
		{"partially paid", 500, 200, models.FeePartial},
		{"one short of due", 500, 499.99, models.FeePartial},
		{"exactly paid", 500, 500, models.FeePaid},
		{"overpaid anomaly", 500, 600, models.FeePaid},
		{"zero due zero paid", 0, 0, models.FeePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.due, tt.paid))
			// Pure: same inputs, same answer.
			assert.Equal(t, Status(tt.due, tt.paid), Status(tt.due, tt.paid))
		})
	}
}

func TestObligationArrearsNeverNegative(t *testing.T) {
	overpaid := models.FeeObligation{AmountDue: 500, AmountPaid: 700}
	assert.Equal(t, 0.0, ObligationArrears(overpaid))

	unpaid := models.FeeObligation{AmountDue: 500, AmountPaid: 450}
	assert.Equal(t, 50.0, ObligationArrears(unpaid))
}

func TestArrears(t *testing.T) {
	obligations := []models.FeeObligation{
		{StudentID: "s1", Description: "Tuition", AmountDue: 500, AmountPaid: 200},
		{StudentID: "s1", Description: "Books", AmountDue: 100, AmountPaid: 100},
		{StudentID: "s2", Description: "Tuition", AmountDue: 500, AmountPaid: 0},
	}

	assert.Equal(t, 300.0, Arrears("s1", obligations))
	assert.Equal(t, 500.0, Arrears("s2", obligations))
	assert.Equal(t, 0.0, Arrears("s3", obligations), "student with no obligations owes nothing")
}

func TestClassSummary(t *testing.T) {
	// 10 students in KG1, 3 with arrears totalling 750.
	students := make([]models.Student, 0, 11)
	for i := 0; i < 10; i++ {
		students = append(students, models.Student{
			ID:        string(rune('a' + i)),
			ClassName: "KG1",
			IsActive:  true,
		})
	}
	// A student from another class must not be counted.
	students = append(students, models.Student{ID: "z", ClassName: "KG2", IsActive: true})

	obligations := []models.FeeObligation{
		{StudentID: "a", ClassName: "KG1", Description: "Tuition", AmountDue: 500, AmountPaid: 100}, // owes 400
		{StudentID: "b", ClassName: "KG1", Description: "Tuition", AmountDue: 300, AmountPaid: 0},   // owes 300
		{StudentID: "c", ClassName: "KG1", Description: "Books", AmountDue: 50, AmountPaid: 0},      // owes 50
		{StudentID: "d", ClassName: "KG1", Description: "Tuition", AmountDue: 500, AmountPaid: 500}, // settled
		{StudentID: "z", ClassName: "KG2", Description: "Tuition", AmountDue: 999, AmountPaid: 0},
	}

	summary := ClassSummary("KG1", students, obligations)
	assert.Equal(t, "KG1", summary.ClassName)
	assert.Equal(t, 10, summary.TotalStudents)
	assert.Equal(t, 3, summary.StudentsWithArrears)
	assert.Equal(t, 750.0, summary.TotalArrears)
}

func TestClassSummaryEmptyClass(t *testing.T) {
	summary := ClassSummary("P7", nil, nil)
	assert.Equal(t, 0, summary.TotalStudents)
	assert.Equal(t, 0, summary.StudentsWithArrears)
	assert.Equal(t, 0.0, summary.TotalArrears)
}

func TestStats(t *testing.T) {
	obligations := []models.FeeObligation{
		{AmountDue: 500, AmountPaid: 500},
		{AmountDue: 500, AmountPaid: 200},
		{AmountDue: 300, AmountPaid: 0},
	}

	stats := Stats(obligations)
	assert.Equal(t, 3, stats.TotalObligations)
	assert.Equal(t, 1, stats.PaidCount)
	assert.Equal(t, 1, stats.PartialCount)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 700.0, stats.TotalCollected)
	assert.Equal(t, 600.0, stats.TotalOutstanding)
}
