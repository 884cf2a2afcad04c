package moneta

import (
	"fmt"
	"math"
)

// Percent is a percentage value, e.g. 42.3 for 42.3%.
type Percent float64

// Round1 rounds to one decimal place, the resolution used by the
// distribution slices.
func (p Percent) Round1() Percent {
	return Percent(math.Round(float64(p)*10) / 10)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}
