package pricer

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// VolSurface is a volatility surface on a (moneyness, days-to-expiry) grid,
// queried by linear interpolation along both axes.
type VolSurface struct {
	days   []float64                // ascending days-to-expiry levels
	slices []interp.PiecewiseLinear // one moneyness curve per day level
}

// NewVolSurface builds a surface from vols[i][j], the volatility at
// moneyness[i] and days[j]. Both level slices must be strictly increasing,
// with at least two moneyness levels and one day level.
func NewVolSurface(moneyness, days []float64, vols [][]float64) (*VolSurface, error) {
	if len(moneyness) < 2 {
		return nil, fmt.Errorf("vol surface: need at least 2 moneyness levels, got %d", len(moneyness))
	}
	if len(days) < 1 {
		return nil, fmt.Errorf("vol surface: need at least 1 day level")
	}
	if len(vols) != len(moneyness) {
		return nil, fmt.Errorf("vol surface: %d vol rows for %d moneyness levels", len(vols), len(moneyness))
	}
	for i := 1; i < len(days); i++ {
		if days[i] <= days[i-1] {
			return nil, fmt.Errorf("vol surface: day levels must be strictly increasing")
		}
	}

	s := &VolSurface{days: days, slices: make([]interp.PiecewiseLinear, len(days))}
	column := make([]float64, len(moneyness))
	for j := range days {
		for i := range moneyness {
			if len(vols[i]) != len(days) {
				return nil, fmt.Errorf("vol surface: row %d has %d vols for %d day levels", i, len(vols[i]), len(days))
			}
			column[i] = vols[i][j]
		}
		if err := s.slices[j].Fit(moneyness, column); err != nil {
			return nil, fmt.Errorf("vol surface: day level %g: %w", days[j], err)
		}
	}
	return s, nil
}

// At returns the interpolated volatility for a moneyness and a number of
// days to expiry. Along the moneyness axis each day slice interpolates
// piecewise-linearly; between two day levels the slices are blended by
// distance. Queries beyond the grid are clamped to the edge (flat
// extrapolation), which keeps far-from-grid lookups from going negative.
func (s *VolSurface) At(moneyness, daysToExpiry float64) float64 {
	// index of the first day level >= daysToExpiry
	above := sort.SearchFloat64s(s.days, daysToExpiry)
	if above == 0 {
		return s.slices[0].Predict(moneyness)
	}
	if above == len(s.days) {
		return s.slices[len(s.days)-1].Predict(moneyness)
	}
	below := above - 1
	if s.days[above] == daysToExpiry {
		return s.slices[above].Predict(moneyness)
	}

	span := s.days[above] - s.days[below]
	wBelow := (s.days[above] - daysToExpiry) / span
	wAbove := (daysToExpiry - s.days[below]) / span
	return wBelow*s.slices[below].Predict(moneyness) + wAbove*s.slices[above].Predict(moneyness)
}
