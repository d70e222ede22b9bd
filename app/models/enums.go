package models

// FeeStatus defines the derived payment state of a fee obligation.
type FeeStatus string

const (
	FeePending FeeStatus = "Pending"
	FeePartial FeeStatus = "Partial"
	FeePaid    FeeStatus = "Paid"
)

// PaymentMethod defines how a fee payment was made. Recorded for audit and
// display only; it never changes the numeric outcome of a payment.
type PaymentMethod string

const (
	MethodMobileMoney  PaymentMethod = "mobile_money"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
