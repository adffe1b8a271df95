package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSeededLedger(t *testing.T) {
	l := NewSeeded()
	stats := l.Stats()

	assert.Equal(t, 8, stats.TotalSlots)
	assert.Equal(t, 5, stats.Available)
	assert.Equal(t, 2, stats.Occupied)
	assert.Equal(t, 1, stats.Reserved)
	assert.Equal(t, 8, stats.Available+stats.Occupied+stats.Reserved)

	// A2 card 75 + A4 upi 105 + B3 wallet 40
	assert.Equal(t, 220, stats.TotalRevenue)
	assert.Equal(t, 25.0, stats.OccupancyRate)
	// 75/2h + 40/1h = 77.5, rounded to whole rupees
	assert.Equal(t, 78.0, stats.HourlyEarnings)
	// (2h + 1h) / 2 occupied
	assert.Equal(t, 1.5, stats.AvgBookingDuration)

	assertInvariant(t, l)
}

func TestStatsEmptyLedger(t *testing.T) {
	l := New("A1", "A2")
	stats := l.Stats()
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 0.0, stats.OccupancyRate)
	assert.Equal(t, 0.0, stats.AvgBookingDuration)
	assert.Equal(t, 0, stats.TotalRevenue)
}

func TestStatsAfterBooking(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := New("A1", "A2", "A3", "A4")
	l.now = fixedClock(base)

	_, err := l.Book("A1", "u1", 4, "XYZ1", PaymentCard)
	require.NoError(t, err)

	stats := l.Stats()
	assert.Equal(t, 1, stats.Occupied)
	assert.Equal(t, 3, stats.Available)
	assert.Equal(t, 130, stats.TotalRevenue)
	assert.Equal(t, 25.0, stats.OccupancyRate)
	// 130 / 4h, rounded
	assert.Equal(t, 33.0, stats.HourlyEarnings)
	assert.Equal(t, 4.0, stats.AvgBookingDuration)
}
