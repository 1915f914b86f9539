package pricer

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Kind is the option kind, call or put.
type Kind int

const (
	Call Kind = iota
	Put
)

func (k Kind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "call" or "put", case-insensitive.
func ParseKind(str string) (Kind, error) {
	switch strings.ToLower(str) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return Call, fmt.Errorf("%w: got %q", ErrInvalidKind, str)
	}
}

// stdNormal is the standard normal distribution behind the pricing formulas.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Quote is the output of the closed-form pricing formula: a price and its
// sensitivity set.
type Quote struct {
	Price float64
	Greeks
}

// BlackScholes prices one option contract under the lognormal model with a
// continuous dividend yield, and computes its greeks.
//
// spot and strike are in the same currency unit, rate and div are
// continuously compounded annual rates, years is the time to expiration and
// sigma the annualized volatility. Degenerate inputs are the caller's
// responsibility: years and sigma must be strictly positive, spot and strike
// strictly positive.
func BlackScholes(spot, strike, rate, years, sigma, div float64, kind Kind) (Quote, error) {
	sqt := math.Sqrt(years)
	d1 := (math.Log(spot/strike) + (rate-div+sigma*sigma/2)*years) / (sigma * sqt)
	d2 := d1 - sigma*sqt

	// discounted spot and strike
	ds := spot * math.Exp(-div*years)
	dk := strike * math.Exp(-rate*years)

	var q Quote
	switch kind {
	case Call:
		q.Price = ds*stdNormal.CDF(d1) - dk*stdNormal.CDF(d2)
		q.Delta = math.Exp(-div*years) * stdNormal.CDF(d1)
		q.Theta = -ds*sigma*stdNormal.Prob(d1)/(2*sqt) -
			rate*dk*stdNormal.CDF(d2) + div*ds*stdNormal.CDF(d1)
		q.Rho = dk * years * stdNormal.CDF(d2)
	case Put:
		q.Price = dk*stdNormal.CDF(-d2) - ds*stdNormal.CDF(-d1)
		q.Delta = -math.Exp(-div*years) * stdNormal.CDF(-d1)
		q.Theta = -ds*sigma*stdNormal.Prob(d1)/(2*sqt) +
			rate*dk*stdNormal.CDF(-d2) - div*ds*stdNormal.CDF(-d1)
		q.Rho = -dk * years * stdNormal.CDF(-d2)
	default:
		return Quote{}, fmt.Errorf("%w: got %v", ErrInvalidKind, kind)
	}

	// gamma and vega do not depend on the option kind.
	q.Gamma = math.Exp(-div*years) * stdNormal.Prob(d1) / (spot * sigma * sqt)
	q.Vega = ds * stdNormal.Prob(d1) * sqt

	return q, nil
}
