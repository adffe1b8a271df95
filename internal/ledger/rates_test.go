package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostUsesRateTable(t *testing.T) {
	expected := map[int]int{
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
	for hours, want := range expected {
		assert.Equal(t, want, Cost(hours), "duration %dh", hours)
	}
}

func TestCostFallbackRate(t *testing.T) {
	// 7 hours is not in the table, so it costs 7 * 50.
	assert.Equal(t, 350, Cost(7))
	assert.Equal(t, 500, Cost(10))
}
