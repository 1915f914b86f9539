package pricer

import (
	"fmt"
	"maps"
)

// Manager registers instruments and prices them all from a market context,
// resolving inter-instrument dependencies recursively and computing each
// price at most once per valuation run.
//
// A Manager is scoped to one valuation: construct one per run (or per
// backtest date), or call Reset between runs. Reusing a manager across
// market days without Reset returns the stale memoized prices of the first
// day. A Manager is not safe for concurrent use.
type Manager struct {
	assets  map[string]Asset
	order   []string // registration order, for cycle-free deterministic traversal
	prices  map[string]float64
	results map[string]PriceResult
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	m := &Manager{assets: make(map[string]Asset)}
	m.Reset()
	return m
}

// Add registers an asset under its name. Registering a second asset under a
// name already taken is rejected with a *DuplicateAssetError: silent
// overwrite combined with memoization could leave stale prices behind.
func (g *Manager) Add(a Asset) error {
	name := a.Name()
	if _, ok := g.assets[name]; ok {
		return &DuplicateAssetError{Name: name}
	}
	g.assets[name] = a
	g.order = append(g.order, name)
	return nil
}

// Remove unregisters an asset. Its memoized price, if any, is dropped too.
func (g *Manager) Remove(name string) {
	if _, ok := g.assets[name]; !ok {
		return
	}
	delete(g.assets, name)
	delete(g.prices, name)
	delete(g.results, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Get returns the registered asset by name, or nil.
func (g *Manager) Get(name string) Asset { return g.assets[name] }

// Reset clears the memo and stored results, keeping the registry. Call it
// before repricing the same instrument set on a different market day.
func (g *Manager) Reset() {
	g.prices = make(map[string]float64)
	g.results = make(map[string]PriceResult)
}

// RepriceAll prices every registered instrument not yet memoized in this
// run and returns the results by name.
//
// It works against a private clone of the market, never mutating the
// caller's: resolved prices are written back into the clone so dependent
// instruments read them like ordinary market prices. A dependency that is
// neither registered nor already priced in the market surfaces as a
// *MissingDependencyError naming it; a dependency chain that revisits an
// instrument under resolution surfaces as a *CyclicDependencyError.
//
// RepriceAll aborts on the first failing instrument and returns its error;
// the memoized prices of instruments resolved before the failure are kept,
// so a re-invocation after fixing the cause does not recompute them.
func (g *Manager) RepriceAll(m *Market) (map[string]PriceResult, error) {
	work := m.Clone()
	// Seed the working market with prices memoized by earlier calls, so
	// dependents of already-priced instruments can still read them.
	for name, price := range g.prices {
		work.SetPrice(name, price)
	}
	resolving := make(map[string]bool)
	for _, name := range g.order {
		if _, ok := g.prices[name]; ok {
			continue
		}
		if err := g.resolve(g.assets[name], work, resolving, nil); err != nil {
			return nil, err
		}
	}
	return maps.Clone(g.results), nil
}

// resolve prices one asset depth-first: dependencies first, then the asset
// itself, memoizing along the way. path is the current resolution stack,
// used to report cycles.
func (g *Manager) resolve(a Asset, m *Market, resolving map[string]bool, path []string) error {
	name := a.Name()
	if _, ok := g.prices[name]; ok {
		return nil
	}
	if resolving[name] {
		return &CyclicDependencyError{Cycle: append(path, name)}
	}
	resolving[name] = true
	defer delete(resolving, name)

	for _, dep := range a.Dependencies() {
		if _, ok := g.prices[dep]; ok {
			continue
		}
		depAsset, ok := g.assets[dep]
		if !ok {
			// Not registered, but the caller may have supplied its price
			// directly in the market context.
			if _, ok := m.Price(dep); ok {
				continue
			}
			return &MissingDependencyError{Name: dep}
		}
		if err := g.resolve(depAsset, m, resolving, append(path, name)); err != nil {
			return err
		}
	}

	result, err := a.Reprice(m)
	if err != nil {
		return fmt.Errorf("repricing %q: %w", name, err)
	}
	g.prices[name] = result.Price
	g.results[name] = result
	// Write the resolved price back so dependents read it as market data.
	m.SetPrice(name, result.Price)
	return nil
}

// Price returns the memoized scalar price of an instrument after
// resolution.
func (g *Manager) Price(name string) (float64, bool) {
	p, ok := g.prices[name]
	return p, ok
}

// Result returns the full PriceResult of an instrument after resolution.
func (g *Manager) Result(name string) (PriceResult, bool) {
	r, ok := g.results[name]
	return r, ok
}
