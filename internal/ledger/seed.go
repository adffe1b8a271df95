package ledger

import "time"

// The demo floor plan: two rows of four slots each.
var seedLabels = []string{"A1", "A2", "A3", "A4", "B1", "B2", "B3", "B4"}

// NewSeeded builds the demo ledger: A2 and B3 start occupied by demo_user
// with timers running from now, A4 sits in the pre-seeded reserved state,
// everything else is available.
func NewSeeded() *Ledger {
	l := New(seedLabels...)
	now := l.now()

	seed := func(label string, status Status, duration int, vehicle string, method PaymentMethod) {
		slot := l.slots[label]
		slot.Status = status
		slot.BookedBy = "demo_user"
		slot.VehicleNumber = vehicle
		slot.DurationHours = duration
		slot.BookingTime = now
		slot.EndTime = now.Add(time.Duration(duration) * time.Hour)
		slot.PaymentMethod = method
		slot.Amount = Cost(duration)
	}
	seed("A2", StatusOccupied, 2, "ABC123", PaymentCard)
	seed("A4", StatusReserved, 3, "XYZ789", PaymentUPI)
	seed("B3", StatusOccupied, 1, "DEF456", PaymentWallet)
	return l
}
