package pricer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency. It is used to
// render priced instruments; all pricing arithmetic happens on scalars.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M is a convenient factory for Money.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted with its currency symbol and the
// currency's conventional number of decimals.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string       { return m.cur }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) Neg() Money             { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money   { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money      { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) AsFloat() float64       { return m.value.InexactFloat64() }

// cur makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
