package ledger

import (
	"fmt"
	"time"
)

// Urgency classifies how close a booking is to expiry. It only drives the
// countdown color in the dashboard, never behavior.
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

// Countdown is the display decomposition of the time remaining on a booking.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
	Urgency Urgency
}

// NewCountdown breaks a remaining duration into whole hours, minutes and
// seconds. Critical means under 30 minutes left, warning under an hour.
func NewCountdown(remaining time.Duration) Countdown {
	c := Countdown{
		Hours:   int(remaining / time.Hour),
		Minutes: int(remaining % time.Hour / time.Minute),
		Seconds: int(remaining % time.Minute / time.Second),
		Urgency: UrgencyNormal,
	}
	if c.Hours == 0 {
		if c.Minutes < 30 {
			c.Urgency = UrgencyCritical
		} else {
			c.Urgency = UrgencyWarning
		}
	}
	return c
}

// String renders the countdown as HH:MM:SS.
func (c Countdown) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}
