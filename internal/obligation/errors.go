package obligation

import (
	"errors"
	"fmt"

	"github.com/kroening-labs/mcheck/internal/expr"
)

// Sentinel error kinds surfaced by the core. Per-property shape
// errors (NNFFailure, and the unsupported-shape cases the induction
// driver checks for before even calling the compiler) are recovered
// from by marking the property unsupported; the rest abort the
// current property check and propagate.
var (
	ErrNoProperties        = errors.New("obligation: no properties")
	ErrNoSupportedProperty = errors.New("obligation: no supported property")
	ErrUnboundedRange      = errors.New("obligation: unbounded range cannot be encoded")
	ErrIndexOutOfRange     = errors.New("obligation: range index out of range")
	ErrSolverError         = errors.New("obligation: decision procedure error")
)

// NNFFailureError reports that a negation could not be pushed below
// the named temporal operator.
type NNFFailureError struct {
	Op expr.Kind
}

func (e *NNFFailureError) Error() string {
	return fmt.Sprintf("obligation: failed to make NNF for %s", e.Op)
}

// newNNFFailure builds an error satisfying errors.Is against no
// sentinel (each occurrence names its own operator), matching the
// original's per-call "failed to make NNF for <op>" message.
func newNNFFailure(k expr.Kind) error { return &NNFFailureError{Op: k} }
