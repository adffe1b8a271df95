package entities

import "time"

type CountdownView struct {
	Display string `json:"display"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Urgency string `json:"urgency"`
}

type SlotView struct {
	Label         string         `json:"label"`
	Status        string         `json:"status"`
	BookedBy      string         `json:"booked_by,omitempty"`
	VehicleNumber string         `json:"vehicle_number,omitempty"`
	DurationHours int            `json:"duration_hours,omitempty"`
	BookingTime   *time.Time     `json:"booking_time,omitempty"`
	EndTime       *time.Time     `json:"end_time,omitempty"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	Amount        int            `json:"amount,omitempty"`
	Countdown     *CountdownView `json:"countdown,omitempty"`
}

// ActiveBookingResponse pairs the user's current booking with an elapsed-time
// display like "2h 15m".
type ActiveBookingResponse struct {
	Slot    SlotView `json:"slot"`
	Elapsed string   `json:"elapsed"`
}
