package errors

import "errors"

// Sentinel errors raised by the ledger and the auth flow. Handlers map these
// to HTTP statuses; everything else surfaces as a 500.
var (
	ErrUnknownSlot           = errors.New("unknown slot")
	ErrSlotUnavailable       = errors.New("slot is not available")
	ErrPaymentMethodRequired = errors.New("please select a payment method")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)
