package pricer

import (
	"fmt"
	"maps"
	"slices"
)

// Basket is a composite instrument: a linear combination of member
// instruments held in fixed share quantities. Its price is the sum over
// members of quantity times member price, so every member must be priced
// before the basket is.
type Basket struct {
	name   string
	shares map[string]Quantity
}

// NewBasket returns a basket holding the given quantity of each member.
// Quantities may be negative (short members) or fractional.
func NewBasket(name string, shares map[string]Quantity) *Basket {
	return &Basket{name: name, shares: maps.Clone(shares)}
}

// BasketTerms configures BasketFromMarket. Shares takes precedence over
// Weights; with Weights, a TargetValue is required and shares are derived
// from then-current member prices.
type BasketTerms struct {
	Shares      map[string]Quantity
	Weights     map[string]float64
	TargetValue float64
}

// BasketFromMarket builds a basket, deriving member shares from target
// weights and a target value when explicit shares are not given. The
// derivation uses member prices from the market once, at inception; it is
// not repeated on reprice.
func BasketFromMarket(m *Market, name string, terms BasketTerms) (*Basket, error) {
	if terms.Shares != nil {
		return NewBasket(name, terms.Shares), nil
	}
	if terms.Weights == nil {
		return nil, fmt.Errorf("basket %q: either shares or weights must be provided", name)
	}
	if terms.TargetValue == 0 {
		return nil, fmt.Errorf("basket %q: if weights are specified, a target value is required", name)
	}
	shares := make(map[string]Quantity, len(terms.Weights))
	for member, weight := range terms.Weights {
		price, ok := m.Price(member)
		if !ok {
			return nil, fmt.Errorf("basket %q: %w", name, &MissingDependencyError{Name: member})
		}
		shares[member] = Q(terms.TargetValue * weight / price)
	}
	return &Basket{name: name, shares: shares}, nil
}

func (b *Basket) Name() string { return b.name }

// Dependencies returns the member names in lexical order.
func (b *Basket) Dependencies() []string {
	return slices.Sorted(maps.Keys(b.shares))
}

// Shares returns the quantity held of a member.
func (b *Basket) Shares(member string) Quantity { return b.shares[member] }

// Reprice computes the linear combination of member prices. All members must
// already be priced in the market; resolution order is the Manager's job.
func (b *Basket) Reprice(m *Market) (PriceResult, error) {
	total := Q(0)
	for _, member := range b.Dependencies() {
		price, ok := m.Price(member)
		if !ok {
			return PriceResult{}, &MissingDependencyError{Name: member}
		}
		total = total.Add(b.shares[member].Mul(Q(price)))
	}
	return PriceResult{
		Name:     b.name,
		Day:      m.Day(),
		Price:    total.AsFloat(),
		Currency: m.Currency(),
	}, nil
}

func (b *Basket) String() string { return fmt.Sprintf("Basket(%s)", b.name) }
