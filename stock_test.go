package pricer

import (
	"testing"

	"github.com/etnz/pricer/date"
)

func TestStockReprice(t *testing.T) {
	m := NewMarket(date.New(2023, 6, 1), "USD")
	m.SetPrice("SPY", 400)

	r, err := NewStock("SPY").Reprice(m)
	if err != nil {
		t.Fatalf("Reprice: %v", err)
	}
	if r.Price != 400 {
		t.Errorf("price = %v, want 400", r.Price)
	}
	if r.Day != m.Day() {
		t.Errorf("day = %s, want %s", r.Day, m.Day())
	}
	if r.Greeks != nil {
		t.Errorf("stock result carries greeks")
	}
}

func TestStockRepriceMissingSpot(t *testing.T) {
	m := NewMarket(date.New(2023, 6, 1), "USD")
	if _, err := NewStock("SPY").Reprice(m); err == nil {
		t.Errorf("Reprice with no spot price should fail")
	}
}

func TestStockAccruedIncome(t *testing.T) {
	m := NewMarket(date.New(2023, 6, 1), "USD")
	m.AddDividend("SPY", date.New(2023, 1, 15), 1.0) // on acquisition day: excluded
	m.AddDividend("SPY", date.New(2023, 3, 1), 0.5)
	m.AddDividend("SPY", date.New(2023, 6, 1), 0.6) // on market day: included
	m.AddDividend("SPY", date.New(2023, 9, 1), 0.7) // after market day: excluded

	s := NewStock("SPY")
	acquired := date.New(2023, 1, 15)
	if got := s.AccruedIncome(m, acquired); !within(got, 1.1, 1e-12) {
		t.Errorf("AccruedIncome = %v, want 1.1", got)
	}

	// The generic helper dispatches to the stock, and returns 0 for assets
	// that pay no income.
	if got := AccruedIncome(s, m, acquired); !within(got, 1.1, 1e-12) {
		t.Errorf("AccruedIncome helper = %v, want 1.1", got)
	}
	if got := AccruedIncome(NewBond("B", 1000, date.New(2030, 1, 1)), m, acquired); got != 0 {
		t.Errorf("AccruedIncome on a bond = %v, want 0", got)
	}
}

func TestStockAccruedIncomeNoDividends(t *testing.T) {
	m := NewMarket(date.New(2023, 6, 1), "USD")
	if got := NewStock("SPY").AccruedIncome(m, date.New(2023, 1, 1)); got != 0 {
		t.Errorf("AccruedIncome = %v, want 0", got)
	}
}
