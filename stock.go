package pricer

import (
	"fmt"

	"github.com/etnz/pricer/date"
)

// Stock is a leaf instrument whose price is its spot price in the market.
type Stock struct {
	name string
}

// NewStock returns a stock identified by name.
func NewStock(name string) *Stock { return &Stock{name: name} }

func (s *Stock) Name() string           { return s.name }
func (s *Stock) Dependencies() []string { return nil }

// Reprice reads the stock's spot price from the market.
func (s *Stock) Reprice(m *Market) (PriceResult, error) {
	spot, ok := m.Price(s.name)
	if !ok {
		return PriceResult{}, fmt.Errorf("no spot price for stock %q as of %s", s.name, m.Day())
	}
	return PriceResult{
		Name:     s.name,
		Day:      m.Day(),
		Price:    spot,
		Currency: m.Currency(),
	}, nil
}

// AccruedIncome sums the dividends paid strictly after the acquisition date
// and on or before the market day.
func (s *Stock) AccruedIncome(m *Market, acquired date.Date) float64 {
	divs := m.Dividends(s.name)
	if divs == nil {
		return 0
	}
	var sum float64
	for on, amount := range divs.Values() {
		if on.After(acquired) && !on.After(m.Day()) {
			sum += amount
		}
	}
	return sum
}

func (s *Stock) String() string { return fmt.Sprintf("Stock(%s)", s.name) }
