package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"smartparking/internal/entities"
	apperrors "smartparking/internal/errors"
	"smartparking/internal/ledger"
)

// SlotService orchestrates the booking flow around the ledger: request
// validation, the payment hold, the simulated charge and the dashboard
// notifications.
type SlotService struct {
	Ledger   *ledger.Ledger
	gateway  PaymentGateway
	notify   *NotifyService
	validate *validator.Validate
}

func NewSlotService(l *ledger.Ledger, gateway PaymentGateway, notify *NotifyService) *SlotService {
	return &SlotService{
		Ledger:   l,
		gateway:  gateway,
		notify:   notify,
		validate: validator.New(),
	}
}

// Book runs the full booking flow for one slot. The slot is held while the
// charge is in flight so a concurrent attempt on the same label fails fast
// instead of racing the payment.
func (s *SlotService) Book(ctx context.Context, label, username, email string, req entities.BookingRequest) (ledger.Slot, error) {
	if err := s.validate.Struct(req); err != nil {
		return ledger.Slot{}, apperrors.NewHTTPError(400, err.Error())
	}
	method, err := ledger.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		s.notify.Error("Please select a payment method")
		return ledger.Slot{}, err
	}

	if err := s.Ledger.Hold(label, username); err != nil {
		s.notify.Error("This slot is not available")
		return ledger.Slot{}, err
	}

	amount := ledger.Cost(req.DurationHours)
	if err := s.gateway.Charge(ctx, amount, method); err != nil {
		s.Ledger.ReleaseHold(label)
		return ledger.Slot{}, fmt.Errorf("payment failed: %w", err)
	}
	s.notify.Success("Payment of ₹%d processed via %s!", amount, strings.ToUpper(string(method)))

	slot, err := s.Ledger.Book(label, username, req.DurationHours, req.VehicleNumber, method)
	if err != nil {
		s.Ledger.ReleaseHold(label)
		return ledger.Slot{}, err
	}
	s.notify.Success("Slot %s booked successfully! Timer started.", label)

	if email != "" {
		go s.sendBookingEmail(slot, email)
	}
	return slot, nil
}

// Release frees a slot on explicit user request. No ownership check.
func (s *SlotService) Release(label string) (ledger.Slot, error) {
	slot, err := s.Ledger.Release(label)
	if err != nil {
		return ledger.Slot{}, err
	}
	s.notify.Success("Slot %s released successfully!", label)
	return slot, nil
}

// Slots lists every slot in ledger order with a live countdown on the
// occupied ones.
func (s *SlotService) Slots(now time.Time) []entities.SlotView {
	countdowns := s.Ledger.Countdowns(now)
	slots := s.Ledger.Slots()
	views := make([]entities.SlotView, 0, len(slots))
	for _, slot := range slots {
		view := toSlotView(slot)
		if countdown, ok := countdowns[slot.Label]; ok {
			view.Countdown = &entities.CountdownView{
				Display: countdown.String(),
				Hours:   countdown.Hours,
				Minutes: countdown.Minutes,
				Seconds: countdown.Seconds,
				Urgency: string(countdown.Urgency),
			}
		}
		views = append(views, view)
	}
	return views
}

// ActiveBooking finds the user's current booking, if any, with an elapsed
// display like "2h 15m".
func (s *SlotService) ActiveBooking(username string, now time.Time) (*entities.ActiveBookingResponse, error) {
	slot, ok := s.Ledger.FindActiveBooking(username)
	if !ok {
		return nil, nil
	}
	elapsed := now.Sub(slot.BookingTime)
	if elapsed < 0 {
		elapsed = 0
	}
	return &entities.ActiveBookingResponse{
		Slot:    toSlotView(slot),
		Elapsed: fmt.Sprintf("%dh %dm", int(elapsed/time.Hour), int(elapsed%time.Hour/time.Minute)),
	}, nil
}

// RecentBookings returns the first three non-available slots, matching the
// dashboard's recent-bookings panel.
func (s *SlotService) RecentBookings() []entities.SlotView {
	var views []entities.SlotView
	for _, slot := range s.Ledger.Slots() {
		if slot.Status == ledger.StatusAvailable {
			continue
		}
		views = append(views, toSlotView(slot))
		if len(views) == 3 {
			break
		}
	}
	return views
}

// Stats exposes the derived ledger statistics.
func (s *SlotService) Stats() entities.StatsResponse {
	stats := s.Ledger.Stats()
	return entities.StatsResponse{
		TotalSlots:         stats.TotalSlots,
		Available:          stats.Available,
		Occupied:           stats.Occupied,
		Reserved:           stats.Reserved,
		TotalRevenue:       stats.TotalRevenue,
		OccupancyRate:      stats.OccupancyRate,
		HourlyEarnings:     stats.HourlyEarnings,
		AvgBookingDuration: stats.AvgBookingDuration,
	}
}

func (s *SlotService) sendBookingEmail(slot ledger.Slot, email string) {
	subject := fmt.Sprintf("Your parking slot %s is booked", slot.Label)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour parking slot %s is booked.\n\n"+
			"Vehicle: %s\n"+
			"Duration: %d hours\n"+
			"Amount: ₹%d (%s)\n"+
			"Booked: %s\n"+
			"Expires: %s\n\n"+
			"Thank you for using Smart Parking.",
		slot.BookedBy, slot.Label, slot.VehicleNumber, slot.DurationHours,
		slot.Amount, strings.ToUpper(string(slot.PaymentMethod)),
		slot.BookingTime.Format("02 Jan 2006 15:04"),
		slot.EndTime.Format("02 Jan 2006 15:04"),
	)
	if err := SendEmailWithSendGrid(email, slot.BookedBy, subject, body); err != nil {
		log.Printf("Booking %s confirmed, but the confirmation email to %s failed: %v", slot.Label, email, err)
	}
}

func toSlotView(slot ledger.Slot) entities.SlotView {
	view := entities.SlotView{
		Label:         slot.Label,
		Status:        string(slot.Status),
		BookedBy:      slot.BookedBy,
		VehicleNumber: slot.VehicleNumber,
		DurationHours: slot.DurationHours,
		PaymentMethod: string(slot.PaymentMethod),
		Amount:        slot.Amount,
	}
	if !slot.BookingTime.IsZero() {
		bookingTime := slot.BookingTime
		view.BookingTime = &bookingTime
	}
	if !slot.EndTime.IsZero() {
		endTime := slot.EndTime
		view.EndTime = &endTime
	}
	return view
}
