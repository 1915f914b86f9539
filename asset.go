package pricer

import (
	"fmt"

	"github.com/etnz/pricer/date"
)

// Asset is a priceable instrument. The set of implementations is closed:
// Stock, Bond, Option and Basket.
//
// Dependencies lists the names of the other instruments whose prices must be
// present in the market before Reprice is called; the Manager guarantees
// that ordering. Leaf instruments return no dependencies.
type Asset interface {
	Name() string
	Dependencies() []string
	Reprice(m *Market) (PriceResult, error)
}

// Greeks are the sensitivities of an option price to its inputs.
type Greeks struct {
	Delta float64 // per unit of spot
	Gamma float64 // delta per unit of spot
	Vega  float64 // per unit of volatility
	Theta float64 // per year
	Rho   float64 // per unit of rate
}

// PriceResult is the immutable outcome of repricing one instrument. It is
// created fresh on every Reprice call and never mutated afterwards.
//
// Greeks and Underlying are only set for options.
type PriceResult struct {
	Name       string
	Day        date.Date
	Price      float64
	Currency   string
	Greeks     *Greeks
	Underlying float64 // spot of the underlying at valuation time
}

// Value returns the price as Money in the market's currency.
func (r PriceResult) Value() Money { return M(r.Price, r.Currency) }

func (r PriceResult) String() string {
	if r.Greeks == nil {
		return fmt.Sprintf("%s: date: %s, price: %.2f", r.Name, r.Day, r.Price)
	}
	g := r.Greeks
	return fmt.Sprintf("%s: date: %s, price: %.2f, delta: %.2f, gamma: %.2f, vega: %.2f, theta: %.2f, rho: %.2f, und_price: %.2f",
		r.Name, r.Day, r.Price, g.Delta, g.Gamma, g.Vega, g.Theta, g.Rho, r.Underlying)
}

// IncomeAccruer is implemented by assets that pay income between two dates.
type IncomeAccruer interface {
	AccruedIncome(m *Market, acquired date.Date) float64
}

// AccruedIncome returns the income a paid between the acquisition date
// (excluded) and the market day (included), or 0 for assets that pay none.
func AccruedIncome(a Asset, m *Market, acquired date.Date) float64 {
	if ia, ok := a.(IncomeAccruer); ok {
		return ia.AccruedIncome(m, acquired)
	}
	return 0
}
