package ledger

import (
	"fmt"
	"sync"
	"time"

	apperrors "smartparking/internal/errors"
)

// Ledger is the authoritative in-memory mapping from slot label to Slot.
// Slots are fixed at construction and only mutated in place. All state is
// volatile; there is deliberately no persistence behind it.
//
// A mutex guards every operation because HTTP handlers and the expiry tick
// run on separate goroutines.
type Ledger struct {
	mu    sync.Mutex
	slots map[string]*Slot
	order []string
	holds map[string]string // label -> user, while a payment is in flight
	now   func() time.Time
}

// New creates a ledger with one available slot per label. Iteration order
// follows the order labels are given here.
func New(labels ...string) *Ledger {
	l := &Ledger{
		slots: make(map[string]*Slot, len(labels)),
		order: make([]string, 0, len(labels)),
		holds: make(map[string]string),
		now:   time.Now,
	}
	for _, label := range labels {
		l.slots[label] = &Slot{Label: label, Status: StatusAvailable}
		l.order = append(l.order, label)
	}
	return l
}

// Hold provisionally claims an available slot for a user while their payment
// is processed. A held slot cannot be held or booked by anyone else.
func (l *Ledger) Hold(label, user string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[label]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownSlot, label)
	}
	if slot.Status != StatusAvailable {
		return fmt.Errorf("%w: %s", apperrors.ErrSlotUnavailable, label)
	}
	if holder, held := l.holds[label]; held && holder != user {
		return fmt.Errorf("%w: %s", apperrors.ErrSlotUnavailable, label)
	}
	l.holds[label] = user
	return nil
}

// ReleaseHold drops a provisional claim, typically after a failed or
// abandoned payment. Safe to call when no hold exists.
func (l *Ledger) ReleaseHold(label string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.holds, label)
}

// Book fills a slot's booking fields and marks it occupied. The booking time
// is taken from the ledger clock; end time is bookingTime + durationHours.
func (l *Ledger) Book(label, user string, durationHours int, vehicleNumber string, method PaymentMethod) (Slot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[label]
	if !ok {
		return Slot{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownSlot, label)
	}
	if method == "" {
		return Slot{}, apperrors.ErrPaymentMethodRequired
	}
	if durationHours <= 0 {
		return Slot{}, fmt.Errorf("duration must be positive, got %d", durationHours)
	}
	if slot.Status != StatusAvailable {
		return Slot{}, fmt.Errorf("%w: %s", apperrors.ErrSlotUnavailable, label)
	}
	if holder, held := l.holds[label]; held && holder != user {
		return Slot{}, fmt.Errorf("%w: %s", apperrors.ErrSlotUnavailable, label)
	}

	now := l.now()
	slot.Status = StatusOccupied
	slot.BookedBy = user
	slot.VehicleNumber = vehicleNumber
	slot.DurationHours = durationHours
	slot.BookingTime = now
	slot.EndTime = now.Add(time.Duration(durationHours) * time.Hour)
	slot.PaymentMethod = method
	slot.Amount = Cost(durationHours)
	delete(l.holds, label)
	return *slot, nil
}

// Release resets all booking fields and returns the slot to available.
// No ownership check: any caller may release any slot.
func (l *Ledger) Release(label string) (Slot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releaseLocked(label)
}

func (l *Ledger) releaseLocked(label string) (Slot, error) {
	slot, ok := l.slots[label]
	if !ok {
		return Slot{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownSlot, label)
	}
	slot.clearBooking()
	delete(l.holds, label)
	return *slot, nil
}

// Tick sweeps the ledger once. Occupied slots past their end time are
// auto-released and reported in insertion order; the rest get a countdown.
// Idempotent: a released slot does not show up on the next tick.
func (l *Ledger) Tick(now time.Time) ([]string, map[string]Countdown) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var expired []string
	countdowns := make(map[string]Countdown)
	for _, label := range l.order {
		slot := l.slots[label]
		if slot.Status != StatusOccupied || slot.EndTime.IsZero() {
			continue
		}
		remaining := slot.EndTime.Sub(now)
		if remaining <= 0 {
			l.releaseLocked(label)
			expired = append(expired, label)
			continue
		}
		countdowns[label] = NewCountdown(remaining)
	}
	return expired, countdowns
}

// Countdowns computes the current countdown display for every occupied slot
// without mutating anything. Slots already past their end time are omitted;
// the tick will release them.
func (l *Ledger) Countdowns(now time.Time) map[string]Countdown {
	l.mu.Lock()
	defer l.mu.Unlock()

	countdowns := make(map[string]Countdown)
	for _, label := range l.order {
		slot := l.slots[label]
		if slot.Status != StatusOccupied || slot.EndTime.IsZero() {
			continue
		}
		if remaining := slot.EndTime.Sub(now); remaining > 0 {
			countdowns[label] = NewCountdown(remaining)
		}
	}
	return countdowns
}

// Get returns a copy of the slot with the given label.
func (l *Ledger) Get(label string) (Slot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot, ok := l.slots[label]
	if !ok {
		return Slot{}, false
	}
	return *slot, true
}

// Slots returns copies of all slots in insertion order.
func (l *Ledger) Slots() []Slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Slot, 0, len(l.order))
	for _, label := range l.order {
		out = append(out, *l.slots[label])
	}
	return out
}

// FindActiveBooking returns the first occupied slot booked by the given user,
// in ledger order. Users with several bookings still get a single result.
func (l *Ledger) FindActiveBooking(user string) (Slot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, label := range l.order {
		slot := l.slots[label]
		if slot.Status == StatusOccupied && slot.BookedBy == user {
			return *slot, true
		}
	}
	return Slot{}, false
}
