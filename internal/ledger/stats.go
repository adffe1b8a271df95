package ledger

import "math"

// Stats is a pure derivation of the current ledger state.
type Stats struct {
	TotalSlots   int
	Available    int
	Occupied     int
	Reserved     int
	TotalRevenue int
	// OccupancyRate is occupied/total as a percentage, one decimal.
	OccupancyRate float64
	// HourlyEarnings estimates earnings per hour across occupied slots,
	// rounded to whole rupees.
	HourlyEarnings float64
	// AvgBookingDuration is the mean booked duration over occupied slots,
	// one decimal. Zero when nothing is occupied.
	AvgBookingDuration float64
}

// Stats computes counts, revenue and occupancy figures from current state.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := Stats{TotalSlots: len(l.order)}
	var hourly float64
	var occupiedHours int
	for _, label := range l.order {
		slot := l.slots[label]
		switch slot.Status {
		case StatusAvailable:
			stats.Available++
		case StatusOccupied:
			stats.Occupied++
			occupiedHours += slot.DurationHours
			if slot.DurationHours > 0 {
				hourly += float64(slot.Amount) / float64(slot.DurationHours)
			} else {
				hourly += float64(slot.Amount)
			}
		case StatusReserved:
			stats.Reserved++
		}
		stats.TotalRevenue += slot.Amount
	}
	if stats.TotalSlots > 0 {
		stats.OccupancyRate = round1(float64(stats.Occupied) / float64(stats.TotalSlots) * 100)
	}
	stats.HourlyEarnings = math.Round(hourly)
	if stats.Occupied > 0 {
		stats.AvgBookingDuration = round1(float64(occupiedHours) / float64(stats.Occupied))
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
