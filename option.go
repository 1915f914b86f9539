package pricer

import (
	"fmt"
	"strings"

	"github.com/etnz/pricer/date"
)

// Option is a vanilla option contract on a single underlying instrument. Its
// only dependency is the underlying, whose spot price, volatility and
// dividend rate it reads from the market.
type Option struct {
	name       string
	underlying string
	kind       Kind
	expiration date.Date
	strike     float64
}

// NewOption returns an option with fully resolved terms. Use
// OptionFromMarket to resolve relative terms (tenor, moneyness, implied
// strike) against a market context.
func NewOption(name, underlying string, kind Kind, expiration date.Date, strike float64) *Option {
	return &Option{name: name, underlying: underlying, kind: kind, expiration: expiration, strike: strike}
}

// OptionTerms configures OptionFromMarket.
//
// Exactly one of Expiration or Tenor sets the expiration. The strike is
// resolved with the precedence Strike > Moneyness > Implied:
//   - Strike: explicit strike value, used as is.
//   - Moneyness: percentage of the underlying's spot, as a fraction ("1.05")
//     or a percent string ("105%").
//   - Implied: the strike reproducing TargetPrice under the pricing formula.
type OptionTerms struct {
	Underlying  string
	Kind        Kind
	Expiration  date.Date
	Tenor       string
	Strike      float64
	Moneyness   string
	Implied     bool
	TargetPrice float64 // target option price when Implied is set
}

// OptionFromMarket builds an option by resolving its terms against the
// market once, at construction time.
func OptionFromMarket(m *Market, name string, terms OptionTerms) (*Option, error) {
	if terms.Underlying == "" {
		return nil, fmt.Errorf("option %q: underlying must be specified", name)
	}
	expiration, err := resolveExpiration(m, terms)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", name, err)
	}
	strike, err := resolveStrike(m, terms, expiration)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", name, err)
	}
	return NewOption(name, terms.Underlying, terms.Kind, expiration, strike), nil
}

func resolveExpiration(m *Market, terms OptionTerms) (date.Date, error) {
	if !terms.Expiration.IsZero() {
		return terms.Expiration, nil
	}
	if terms.Tenor == "" {
		return date.Date{}, fmt.Errorf("either expiration or tenor must be specified")
	}
	tenor, err := date.ParseTenor(terms.Tenor)
	if err != nil {
		return date.Date{}, err
	}
	return tenor.From(m.Day()), nil
}

func resolveStrike(m *Market, terms OptionTerms, expiration date.Date) (float64, error) {
	switch {
	case terms.Strike != 0:
		return terms.Strike, nil

	case terms.Moneyness != "":
		moneyness, err := ParsePercent(terms.Moneyness)
		if err != nil {
			return 0, err
		}
		spot, ok := m.Price(terms.Underlying)
		if !ok {
			return 0, fmt.Errorf("no spot price for underlying %q as of %s", terms.Underlying, m.Day())
		}
		return float64(moneyness) * spot, nil

	case terms.Implied:
		if terms.TargetPrice == 0 {
			return 0, fmt.Errorf("implied strike requested without a target price")
		}
		spot, ok := m.Price(terms.Underlying)
		if !ok {
			return 0, fmt.Errorf("no spot price for underlying %q as of %s", terms.Underlying, m.Day())
		}
		sigma, ok := m.Volatility(terms.Underlying)
		if !ok {
			return 0, fmt.Errorf("no volatility for underlying %q as of %s", terms.Underlying, m.Day())
		}
		years := m.Day().YearsTo(expiration)
		return ImpliedStrike(terms.TargetPrice, spot, m.DiscountRate(), years, sigma,
			m.DividendRate(terms.Underlying), terms.Kind)

	default:
		return 0, fmt.Errorf("neither strike nor moneyness given")
	}
}

func (o *Option) Name() string           { return o.name }
func (o *Option) Dependencies() []string { return []string{o.underlying} }

// Underlying returns the name of the underlying instrument.
func (o *Option) Underlying() string { return o.underlying }

// Kind returns the option kind, call or put.
func (o *Option) Kind() Kind { return o.kind }

// Expiration returns the expiration date.
func (o *Option) Expiration() date.Date { return o.expiration }

// Strike returns the strike price.
func (o *Option) Strike() float64 { return o.strike }

// YearsToExpiry returns the ACT/365 year fraction from the given day to the
// expiration.
func (o *Option) YearsToExpiry(day date.Date) float64 { return day.YearsTo(o.expiration) }

// Reprice pulls the underlying's market data and delegates to the
// closed-form pricing formula. It guards the formula's preconditions: an
// expired option or a non-positive volatility is an error here, not a NaN
// downstream.
func (o *Option) Reprice(m *Market) (PriceResult, error) {
	spot, ok := m.Price(o.underlying)
	if !ok {
		return PriceResult{}, fmt.Errorf("no spot price for underlying %q as of %s", o.underlying, m.Day())
	}
	sigma, ok := m.Volatility(o.underlying)
	if !ok {
		return PriceResult{}, fmt.Errorf("no volatility for underlying %q as of %s", o.underlying, m.Day())
	}
	years := o.YearsToExpiry(m.Day())
	if years <= 0 {
		return PriceResult{}, fmt.Errorf("option expired on %s, market day is %s", o.expiration, m.Day())
	}
	if sigma <= 0 {
		return PriceResult{}, fmt.Errorf("non-positive volatility %g for underlying %q", sigma, o.underlying)
	}
	q, err := BlackScholes(spot, o.strike, m.DiscountRate(), years, sigma, m.DividendRate(o.underlying), o.kind)
	if err != nil {
		return PriceResult{}, err
	}
	greeks := q.Greeks
	return PriceResult{
		Name:       o.name,
		Day:        m.Day(),
		Price:      q.Price,
		Currency:   m.Currency(),
		Greeks:     &greeks,
		Underlying: spot,
	}, nil
}

// String returns the option's conventional identifier, like
// "SPY_20240115_400.00_call".
func (o *Option) String() string {
	expiry := strings.ReplaceAll(o.expiration.String(), "-", "")
	return fmt.Sprintf("%s_%s_%.2f_%s", o.underlying, expiry, o.strike, o.kind)
}
