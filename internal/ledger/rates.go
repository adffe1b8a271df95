package ledger

// Hourly pricing with volume discounts for longer bookings. Durations outside
// the table fall back to the flat hourly rate.
var rateTable = map[int]int{
	1:  40,
	2:  75,
	3:  105,
	4:  130,
	5:  155,
	6:  180,
	8:  220,
	12: 300,
	24: 500,
}

const fallbackHourlyRate = 50

// Cost returns the price in rupees for a booking of the given duration.
func Cost(durationHours int) int {
	if rate, ok := rateTable[durationHours]; ok {
		return rate
	}
	return durationHours * fallbackHourlyRate
}
