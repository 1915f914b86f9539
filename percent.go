package pricer

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent is a fraction: Percent(1.05) prints as "105.00%". Option moneyness
// is a Percent of the underlying's spot price.
type Percent float64

// ParsePercent parses a fraction from either a percent string ("105%",
// "95 %") or a plain decimal fraction ("1.05").
func ParsePercent(str string) (Percent, error) {
	s := strings.TrimSpace(str)
	if cut, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(cut), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percent %q: %w", str, err)
		}
		return Percent(v / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent %q: %w", str, err)
	}
	return Percent(v), nil
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
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}
