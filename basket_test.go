package pricer

import (
	"errors"
	"testing"

	"github.com/etnz/pricer/date"
)

func TestBasketReprice(t *testing.T) {
	m := NewMarket(date.New(2023, 1, 1), "USD")
	m.SetPrice("SPY", 400)
	m.SetPrice("call", 41.80)

	// A covered-call-like combination: long the stock, short the call.
	b := NewBasket("covered", map[string]Quantity{"SPY": Q(1), "call": Q(-1)})
	r, err := b.Reprice(m)
	if err != nil {
		t.Fatalf("Reprice: %v", err)
	}
	if !within(r.Price, 358.20, 1e-9) {
		t.Errorf("price = %v, want 358.20", r.Price)
	}
}

func TestBasketRepriceMissingMember(t *testing.T) {
	m := NewMarket(date.New(2023, 1, 1), "USD")
	m.SetPrice("SPY", 400)

	b := NewBasket("covered", map[string]Quantity{"SPY": Q(1), "call": Q(-1)})
	_, err := b.Reprice(m)
	var missing *MissingDependencyError
	if !errors.As(err, &missing) {
		t.Fatalf("Reprice returned %v, want *MissingDependencyError", err)
	}
	if missing.Name != "call" {
		t.Errorf("missing dependency %q, want %q", missing.Name, "call")
	}
}

func TestBasketFromMarketWeights(t *testing.T) {
	m := NewMarket(date.New(2023, 1, 1), "USD")
	m.SetPrice("AAA", 50)
	m.SetPrice("BBB", 200)

	b, err := BasketFromMarket(m, "b", BasketTerms{
		Weights:     map[string]float64{"AAA": 0.5, "BBB": 0.5},
		TargetValue: 1000,
	})
	if err != nil {
		t.Fatalf("BasketFromMarket: %v", err)
	}
	// 500 in each leg: 10 shares of AAA, 2.5 shares of BBB.
	if !b.Shares("AAA").Equal(Q(10)) {
		t.Errorf("AAA shares = %v, want 10", b.Shares("AAA"))
	}
	if !b.Shares("BBB").Equal(Q(2.5)) {
		t.Errorf("BBB shares = %v, want 2.5", b.Shares("BBB"))
	}

	// At inception, the basket prices at the target value.
	r, err := b.Reprice(m)
	if err != nil {
		t.Fatalf("Reprice: %v", err)
	}
	if !within(r.Price, 1000, 1e-9) {
		t.Errorf("price = %v, want 1000", r.Price)
	}
}

func TestBasketFromMarketSharesTakePrecedence(t *testing.T) {
	m := NewMarket(date.New(2023, 1, 1), "USD")
	m.SetPrice("AAA", 50)

	b, err := BasketFromMarket(m, "b", BasketTerms{
		Shares:      map[string]Quantity{"AAA": Q(3)},
		Weights:     map[string]float64{"AAA": 1},
		TargetValue: 1000,
	})
	if err != nil {
		t.Fatalf("BasketFromMarket: %v", err)
	}
	if !b.Shares("AAA").Equal(Q(3)) {
		t.Errorf("AAA shares = %v, want 3", b.Shares("AAA"))
	}
}

func TestBasketFromMarketErrors(t *testing.T) {
	m := NewMarket(date.New(2023, 1, 1), "USD")
	m.SetPrice("AAA", 50)

	testCases := []struct {
		name  string
		terms BasketTerms
	}{
		{"nothing given", BasketTerms{}},
		{"weights without target", BasketTerms{Weights: map[string]float64{"AAA": 1}}},
		{"weight on unpriced member", BasketTerms{Weights: map[string]float64{"ZZZ": 1}, TargetValue: 100}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BasketFromMarket(m, "b", tc.terms); err == nil {
				t.Errorf("BasketFromMarket(%+v) should fail", tc.terms)
			}
		})
	}
}

func TestBasketSharesAreCopied(t *testing.T) {
	shares := map[string]Quantity{"AAA": Q(1)}
	b := NewBasket("b", shares)
	shares["AAA"] = Q(99)
	if !b.Shares("AAA").Equal(Q(1)) {
		t.Errorf("mutating the caller's map leaked into the basket")
	}
}
