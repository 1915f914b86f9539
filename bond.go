package pricer

import (
	"fmt"
	"math"

	"github.com/etnz/pricer/date"
)

// Bond is a leaf instrument paying a fixed notional at maturity, valued by
// discounting the notional at the market's continuously-compounded rate.
type Bond struct {
	name     string
	notional float64
	maturity date.Date
}

// NewBond returns a bond paying notional at maturity.
func NewBond(name string, notional float64, maturity date.Date) *Bond {
	return &Bond{name: name, notional: notional, maturity: maturity}
}

// BondTerms configures BondFromMarket. Exactly one of Maturity or Tenor sets
// the maturity, and exactly one of Notional or TargetPrice sets the size.
type BondTerms struct {
	Maturity    date.Date // explicit maturity date
	Tenor       string    // offset from the market day, like "10y" or "1.5"
	Notional    float64   // amount paid at maturity
	TargetPrice float64   // present value the notional is derived from
}

// BondFromMarket builds a bond by resolving relative terms against the
// market: a tenor becomes a maturity anchored on the market day, and a
// target price becomes the notional whose discounted value equals it.
func BondFromMarket(m *Market, name string, terms BondTerms) (*Bond, error) {
	maturity := terms.Maturity
	if maturity.IsZero() {
		if terms.Tenor == "" {
			return nil, fmt.Errorf("bond %q: either maturity or tenor must be specified", name)
		}
		tenor, err := date.ParseTenor(terms.Tenor)
		if err != nil {
			return nil, fmt.Errorf("bond %q: %w", name, err)
		}
		maturity = tenor.From(m.Day())
	}

	notional := terms.Notional
	if notional == 0 {
		if terms.TargetPrice == 0 {
			return nil, fmt.Errorf("bond %q: either notional or target price must be specified", name)
		}
		// Invert the discounting formula at construction time.
		years := m.Day().YearsTo(maturity)
		notional = terms.TargetPrice * math.Exp(m.DiscountRate()*years)
	}
	return NewBond(name, notional, maturity), nil
}

func (b *Bond) Name() string           { return b.name }
func (b *Bond) Dependencies() []string { return nil }

// Maturity returns the bond's maturity date.
func (b *Bond) Maturity() date.Date { return b.maturity }

// Notional returns the amount paid at maturity.
func (b *Bond) Notional() float64 { return b.notional }

// Reprice discounts the notional from maturity to the market day.
func (b *Bond) Reprice(m *Market) (PriceResult, error) {
	years := m.Day().YearsTo(b.maturity)
	price := b.notional * math.Exp(-m.DiscountRate()*years)
	return PriceResult{
		Name:     b.name,
		Day:      m.Day(),
		Price:    price,
		Currency: m.Currency(),
	}, nil
}

func (b *Bond) String() string {
	return fmt.Sprintf("%s %s %.4f", b.name, b.maturity, b.notional)
}
