// Package ledger implements the fee ledger core: generating per-student fee
// obligations from class-level templates, deriving payment status and
// arrears, and applying payments. The package is pure domain logic; it
// touches neither the HTTP layer nor SQL. Persistence goes through the
// Store interface so the core can be exercised against an in-memory store.
package ledger

import "errors"

var (
	// ErrValidation is returned for missing or malformed input, before any
	// store call is made.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced template, obligation or
	// student does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidPayment is returned when a payment amount is not positive or
	// exceeds the outstanding balance. The obligation is left untouched.
	ErrInvalidPayment = errors.New("invalid payment")

	// ErrConflict is returned when a conditional update finds the obligation
	// changed since it was read. The caller should re-read and retry.
	ErrConflict = errors.New("obligation was modified concurrently")
)
