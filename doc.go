// Package pricer values tradable financial instruments (stocks, bonds,
// options, baskets) as of a point in time, resolving inter-instrument
// dependencies such as a basket whose price depends on its constituents.
//
// The core functionalities include:
//   - Instruments: a closed set of Asset variants (Stock, Bond, Option,
//     Basket), each declaring its dependencies and knowing how to reprice
//     itself from a market context.
//   - Market Context: the as-of date, spot prices, volatilities, dividend
//     rates and streams, and discount rates that instruments read from.
//   - Dependency Resolution: a Manager that registers instruments, resolves
//     their dependencies recursively, memoizes prices within a valuation
//     run, and surfaces missing or cyclic dependencies as typed errors.
//   - Closed-Form Pricing: the lognormal option pricing formula with
//     continuous dividend yield, returning the price and its sensitivities
//     (delta, gamma, vega, theta, rho).
//   - Implied Parameters: bracketed root-finding that inverts the pricing
//     formula to recover an implied strike or an implied volatility from a
//     target price.
//
// Execution is synchronous and single-process. A Manager owns a private copy
// of the caller's market for the duration of a valuation run, so repeated
// runs are independent and the caller's data is never mutated.
package pricer
