package pricer

import (
	"maps"

	"github.com/etnz/pricer/date"
)

// Market holds the market data a valuation run reads from: the as-of day,
// spot prices, volatilities, dividend rates and streams, and discount rates.
//
// A Market is populated by the caller. During a valuation run the Manager
// works against a private clone and writes resolved instrument prices back
// into that clone, so composite instruments can read their dependencies'
// prices like any other market price. The caller's Market is never mutated.
type Market struct {
	day       date.Date
	currency  string
	prices    map[string]float64
	vols      map[string]float64
	divRates  map[string]float64
	dividends map[string]*date.History
	rate      float64       // flat discount rate
	rateCurve *date.History // optional date-indexed discount rates
}

// NewMarket returns an empty market context as of the given day, quoting
// prices in the given ISO currency code.
func NewMarket(day date.Date, currency string) *Market {
	return &Market{
		day:       day,
		currency:  currency,
		prices:    make(map[string]float64),
		vols:      make(map[string]float64),
		divRates:  make(map[string]float64),
		dividends: make(map[string]*date.History),
	}
}

// Day returns the as-of date of the market.
func (m *Market) Day() date.Date { return m.day }

// Currency returns the ISO code prices are quoted in.
func (m *Market) Currency() string { return m.currency }

// SetPrice sets the spot price for a name.
func (m *Market) SetPrice(name string, price float64) { m.prices[name] = price }

// Price returns the spot price for a name.
func (m *Market) Price(name string) (float64, bool) {
	p, ok := m.prices[name]
	return p, ok
}

// SetVolatility sets the annualized volatility for a name.
func (m *Market) SetVolatility(name string, sigma float64) { m.vols[name] = sigma }

// Volatility returns the annualized volatility for a name.
func (m *Market) Volatility(name string) (float64, bool) {
	v, ok := m.vols[name]
	return v, ok
}

// SetDividendRate sets the continuous dividend yield for a name.
func (m *Market) SetDividendRate(name string, rate float64) { m.divRates[name] = rate }

// DividendRate returns the continuous dividend yield for a name, or 0 when
// none is set.
func (m *Market) DividendRate(name string) float64 { return m.divRates[name] }

// AddDividend records a cash dividend paid by name on a given day. Amounts
// recorded twice for the same day accumulate.
func (m *Market) AddDividend(name string, on date.Date, amount float64) {
	h, ok := m.dividends[name]
	if !ok {
		h = &date.History{}
		m.dividends[name] = h
	}
	h.AppendAdd(on, amount)
}

// Dividends returns the dividend stream for a name, or nil when none is
// recorded.
func (m *Market) Dividends(name string) *date.History { return m.dividends[name] }

// SetDiscountRate sets the flat continuously-compounded discount rate.
func (m *Market) SetDiscountRate(rate float64) { m.rate = rate }

// AppendDiscountRate records a date-indexed discount rate. When any is
// recorded, DiscountRate resolves against the curve instead of the flat rate.
func (m *Market) AppendDiscountRate(on date.Date, rate float64) {
	if m.rateCurve == nil {
		m.rateCurve = &date.History{}
	}
	m.rateCurve.Append(on, rate)
}

// DiscountRate returns the discount rate as of the market day: the most
// recent point of the rate curve if one is populated, the flat rate
// otherwise.
func (m *Market) DiscountRate() float64 {
	if m.rateCurve != nil {
		if r, ok := m.rateCurve.ValueAsOf(m.day); ok {
			return r
		}
	}
	return m.rate
}

// Clone returns a deep copy of the market. Mutations of the clone, such as
// the prices a Manager writes back during resolution, are invisible to the
// original.
func (m *Market) Clone() *Market {
	c := &Market{
		day:       m.day,
		currency:  m.currency,
		prices:    maps.Clone(m.prices),
		vols:      maps.Clone(m.vols),
		divRates:  maps.Clone(m.divRates),
		dividends: make(map[string]*date.History, len(m.dividends)),
		rate:      m.rate,
	}
	for name, h := range m.dividends {
		c.dividends[name] = h.Clone()
	}
	if m.rateCurve != nil {
		c.rateCurve = m.rateCurve.Clone()
	}
	return c
}
