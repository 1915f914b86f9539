package pricer

import (
	"errors"
	"fmt"
)

// ErrInvalidKind reports an option kind other than call or put.
var ErrInvalidKind = errors.New("invalid option kind: must be call or put")

// MissingDependencyError reports a dependency name that is registered
// nowhere and priced nowhere. It is fatal for the valuation run.
type MissingDependencyError struct {
	Name string // the unresolved dependency
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("cannot find asset %q", e.Name)
}

// CyclicDependencyError reports a dependency chain that revisits an
// instrument still being resolved.
type CyclicDependencyError struct {
	Cycle []string // resolution stack, ending with the revisited name
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency: %v", e.Cycle)
}

// DuplicateAssetError reports a registration under a name already taken.
type DuplicateAssetError struct {
	Name string
}

func (e *DuplicateAssetError) Error() string {
	return fmt.Sprintf("asset %q is already registered", e.Name)
}

// ImpliedSolveError reports a root-finding failure, carrying the attempted
// bracket for diagnosis. The solver never widens the bracket on its own;
// retrying with different inputs is the caller's decision.
type ImpliedSolveError struct {
	Target   float64 // the price being inverted
	Lo, Hi   float64 // the attempted bracket
	FLo, FHi float64 // objective values at the bracket ends
	Reason   string
}

func (e *ImpliedSolveError) Error() string {
	return fmt.Sprintf("implied solve for target %g failed on bracket [%g, %g] (f: [%g, %g]): %s",
		e.Target, e.Lo, e.Hi, e.FLo, e.FHi, e.Reason)
}
