package entities

// BookingRequest is the booking form submitted for a slot. The payment
// method is validated separately so an empty selection maps to the
// payment-method-required error rather than a generic validation failure.
type BookingRequest struct {
	DurationHours int    `json:"duration_hours" validate:"required,gt=0"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}
