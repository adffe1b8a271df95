package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsAutoDismiss(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewNotifyService()
	svc.now = func() time.Time { return now }

	svc.Success("Slot A1 booked successfully! Timer started.")
	svc.Error("This slot is not available")

	active := svc.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "success", active[0].Type)
	assert.Equal(t, "error", active[1].Type)

	now = now.Add(2 * time.Second)
	assert.Len(t, svc.Active(), 2)

	now = now.Add(2 * time.Second)
	assert.Empty(t, svc.Active(), "toasts dismiss after the TTL")
}

func TestNotificationsFormat(t *testing.T) {
	svc := NewNotifyService()
	svc.Success("Payment of ₹%d processed via %s!", 75, "UPI")

	active := svc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Payment of ₹75 processed via UPI!", active[0].Message)
}
