package networth

import "fmt"

// Percent is a ratio expressed in [0, 100].
type Percent float64

// clampPercent restricts v to [0, 100].
func clampPercent(v float64) Percent {
	if v < 0 || v != v { // NaN
		return 0
	}
	if v > 100 {
		return 100
	}
	return Percent(v)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}
