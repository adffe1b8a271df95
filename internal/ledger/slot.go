package ledger

import (
	"fmt"
	"time"

	apperrors "smartparking/internal/errors"
)

// Status of a parking slot. "reserved" exists in the seed data but no
// operation currently produces or consumes it.
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
	StatusReserved  Status = "reserved"
)

// PaymentMethod is the closed set of payment options offered at booking time.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentUPI    PaymentMethod = "upi"
	PaymentWallet PaymentMethod = "wallet"
	PaymentCash   PaymentMethod = "cash"
)

// ParsePaymentMethod validates a raw method string coming from a booking form.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentCard, PaymentUPI, PaymentWallet, PaymentCash:
		return m, nil
	case "":
		return "", apperrors.ErrPaymentMethodRequired
	default:
		return "", fmt.Errorf("unsupported payment method %q", s)
	}
}

// Slot is one bookable parking space. When Status is available every booking
// field holds its zero value.
type Slot struct {
	Label         string
	Status        Status
	BookedBy      string
	VehicleNumber string
	DurationHours int
	BookingTime   time.Time
	EndTime       time.Time
	PaymentMethod PaymentMethod
	Amount        int
}

func (s *Slot) clearBooking() {
	s.Status = StatusAvailable
	s.BookedBy = ""
	s.VehicleNumber = ""
	s.DurationHours = 0
	s.BookingTime = time.Time{}
	s.EndTime = time.Time{}
	s.PaymentMethod = ""
	s.Amount = 0
}

// HasBookingFields reports whether any booking field is set. Used to check
// the available-iff-unset invariant.
func (s Slot) HasBookingFields() bool {
	return s.BookedBy != "" || s.VehicleNumber != "" || s.DurationHours != 0 ||
		!s.BookingTime.IsZero() || !s.EndTime.IsZero() || s.PaymentMethod != "" || s.Amount != 0
}
