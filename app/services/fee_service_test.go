package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educore-schools/app/ledger"
	"educore-schools/app/models"
)

func seedStore() *memStore {
	store := newMemStore()
	store.students = []models.Student{
		{ID: "s1", StudentID: "EDU-001", FirstName: "Amina", LastName: "Okello", ClassName: "Class 3", IsActive: true},
		{ID: "s2", StudentID: "EDU-002", FirstName: "Brian", LastName: "Ssali", ClassName: "Class 3", IsActive: true},
		{ID: "s3", StudentID: "EDU-003", FirstName: "Cathy", LastName: "Nabirye", ClassName: "KG1", IsActive: true},
	}
	store.templates = []models.FeeTemplate{
		{ID: "t1", ClassName: "Class 3", Description: "Tuition Fee", Amount: 500, IsActive: true},
		{ID: "t2", ClassName: "KG1", Description: "Tuition Fee", Amount: 300, IsActive: true},
	}
	return store
}

func TestGenerateObligationsEndToEnd(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	created, err := svc.GenerateObligations("")
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	// Re-running generates nothing: the run is idempotent.
	created, err = svc.GenerateObligations("")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestGenerateObligationsClassScoped(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	created, err := svc.GenerateObligations("KG1")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	obligations, err := store.ListObligations(ledger.ObligationFilter{})
	require.NoError(t, err)
	require.Len(t, obligations, 1)
	assert.Equal(t, "s3", obligations[0].StudentID)
}

func TestGenerateObligationsPicksUpNewStudents(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	_, err := svc.GenerateObligations("")
	require.NoError(t, err)

	store.students = append(store.students, models.Student{
		ID: "s4", StudentID: "EDU-004", FirstName: "Derek", LastName: "Mugisha", ClassName: "KG1", IsActive: true,
	})

	created, err := svc.GenerateObligations("")
	require.NoError(t, err)
	assert.Equal(t, 1, created, "only the newly enrolled student gets an obligation")
}

func TestGenerateObligationsInsertFailureIsRetryable(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	store.failInsert = true
	_, err := svc.GenerateObligations("")
	require.Error(t, err)

	// Re-run after the store recovers; the full batch lands.
	store.failInsert = false
	created, err := svc.GenerateObligations("")
	require.NoError(t, err)
	assert.Equal(t, 3, created)
}

func TestApplyPaymentFlow(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	_, err := svc.GenerateObligations("Class 3")
	require.NoError(t, err)

	obligations, err := store.ListObligations(ledger.ObligationFilter{StudentID: "s1"})
	require.NoError(t, err)
	require.Len(t, obligations, 1)
	id := obligations[0].ID

	updated, err := svc.ApplyPayment(id, 200, models.MethodMobileMoney)
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.AmountPaid)
	assert.Equal(t, models.FeePartial, updated.Status)

	updated, err = svc.ApplyPayment(id, 300, models.MethodCard)
	require.NoError(t, err)
	assert.Equal(t, models.FeePaid, updated.Status)

	// Fully settled; any further payment exceeds the outstanding balance.
	_, err = svc.ApplyPayment(id, 1, models.MethodCash)
	assert.ErrorIs(t, err, ledger.ErrInvalidPayment)
}

func TestApplyPaymentOverpaymentLeavesStore(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	_, err := svc.GenerateObligations("KG1")
	require.NoError(t, err)

	obligations, _ := store.ListObligations(ledger.ObligationFilter{StudentID: "s3"})
	require.Len(t, obligations, 1)
	id := obligations[0].ID

	_, err = svc.ApplyPayment(id, 450, models.MethodCash)
	require.NoError(t, err)

	_, err = svc.ApplyPayment(id, 100, models.MethodCash)
	require.ErrorIs(t, err, ledger.ErrInvalidPayment)

	stored, err := store.GetObligation(id)
	require.NoError(t, err)
	assert.Equal(t, 450.0, stored.AmountPaid, "rejected payment wrote nothing")
}

func TestApplyPaymentUnknownObligation(t *testing.T) {
	svc := NewFeeService(newMemStore())

	_, err := svc.ApplyPayment("missing", 100, models.MethodCash)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestApplyPaymentConflict(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	_, err := svc.GenerateObligations("KG1")
	require.NoError(t, err)

	obligations, _ := store.ListObligations(ledger.ObligationFilter{StudentID: "s3"})
	require.Len(t, obligations, 1)
	id := obligations[0].ID

	// Simulate a second payer landing between our read and write: bump the
	// stored amount_paid behind the service's back.
	current, _ := store.GetObligation(id)
	stale := current
	raced, err := ledger.ApplyPayment(current, 50, models.MethodCash)
	require.NoError(t, err)
	require.NoError(t, store.UpdateObligationPayment(id, current.AmountPaid, raced))

	// The conditional update must refuse a write based on the stale read.
	fromStale, err := ledger.ApplyPayment(stale, 100, models.MethodCash)
	require.NoError(t, err)
	err = store.UpdateObligationPayment(id, stale.AmountPaid, fromStale)
	assert.ErrorIs(t, err, ledger.ErrConflict)

	// A fresh ApplyPayment through the service still succeeds.
	updated, err := svc.ApplyPayment(id, 100, models.MethodCash)
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.AmountPaid)
}

func TestClassSummaryAndArrears(t *testing.T) {
	store := seedStore()
	svc := NewFeeService(store)

	_, err := svc.GenerateObligations("")
	require.NoError(t, err)

	obligations, _ := store.ListObligations(ledger.ObligationFilter{StudentID: "s1"})
	require.Len(t, obligations, 1)
	_, err = svc.ApplyPayment(obligations[0].ID, 500, models.MethodBankTransfer)
	require.NoError(t, err)

	summary, err := svc.ClassSummary("Class 3")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.StudentsWithArrears)
	assert.Equal(t, 500.0, summary.TotalArrears)

	owed, err := svc.StudentArrears("s1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, owed)

	owed, err = svc.StudentArrears("s2")
	require.NoError(t, err)
	assert.Equal(t, 500.0, owed)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalObligations)
	assert.Equal(t, 1, stats.PaidCount)
	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 500.0, stats.TotalCollected)
	assert.Equal(t, 800.0, stats.TotalOutstanding)
}
