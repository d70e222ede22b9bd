package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educore-schools/app/models"
)

func TestApplyPaymentPartialThenPaid(t *testing.T) {
	o := models.FeeObligation{ID: "o1", AmountDue: 500, AmountPaid: 0}

	o, err := ApplyPayment(o, 200, models.MethodMobileMoney)
	require.NoError(t, err)
	assert.Equal(t, 200.0, o.AmountPaid)
	assert.Equal(t, models.FeePartial, o.Status)
	require.NotNil(t, o.PaymentDate)
	require.NotNil(t, o.PaymentReference)
	assert.True(t, strings.HasPrefix(*o.PaymentReference, "PAY-"))
	require.NotNil(t, o.PaymentMethod)
	assert.Equal(t, "mobile_money", *o.PaymentMethod)

	o, err = ApplyPayment(o, 300, models.MethodCard)
	require.NoError(t, err)
	assert.Equal(t, 500.0, o.AmountPaid)
	assert.Equal(t, models.FeePaid, o.Status)
}

func TestApplyPaymentRejectsOverpayment(t *testing.T) {
	o := models.FeeObligation{ID: "o1", AmountDue: 500, AmountPaid: 450}

	got, err := ApplyPayment(o, 100, models.MethodCash)
	require.ErrorIs(t, err, ErrInvalidPayment)
	assert.Equal(t, 450.0, got.AmountPaid, "rejected payment leaves state unchanged")
	assert.Nil(t, got.PaymentReference)
}

func TestApplyPaymentRejectsNonPositive(t *testing.T) {
	o := models.FeeObligation{ID: "o1", AmountDue: 500, AmountPaid: 0}

	for _, amount := range []float64{0, -50} {
		got, err := ApplyPayment(o, amount, models.MethodCash)
		require.ErrorIs(t, err, ErrInvalidPayment)
		assert.Equal(t, 0.0, got.AmountPaid)
	}
}

func TestApplyPaymentExactOutstanding(t *testing.T) {
	o := models.FeeObligation{ID: "o1", AmountDue: 500, AmountPaid: 450}

	o, err := ApplyPayment(o, 50, models.MethodBankTransfer)
	require.NoError(t, err)
	assert.Equal(t, 500.0, o.AmountPaid)
	assert.Equal(t, models.FeePaid, o.Status)
	assert.Equal(t, 0.0, o.Outstanding())
}

func TestNewPaymentReferenceUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewPaymentReference()
		assert.False(t, seen[ref], "reference %q repeated", ref)
		seen[ref] = true
	}
}

func TestObligationFilterMatch(t *testing.T) {
	o := models.FeeObligation{StudentID: "s1", ClassName: "P1", AmountDue: 500, AmountPaid: 100}

	assert.True(t, ObligationFilter{}.Match(o))
	assert.True(t, ObligationFilter{StudentID: "s1"}.Match(o))
	assert.False(t, ObligationFilter{StudentID: "s2"}.Match(o))
	assert.True(t, ObligationFilter{ClassName: "P1", Status: models.FeePartial}.Match(o))
	assert.False(t, ObligationFilter{Status: models.FeePaid}.Match(o))
}
