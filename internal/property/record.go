// Package property implements the Property Record: a mutable wrapper
// around an original expression, its negation-normal-form rewrite,
// and a small status state machine driven by the induction package.
package property

import "github.com/kroening-labs/mcheck/internal/expr"

// Status is a node in the property state machine.
type Status int

const (
	StatusOpen Status = iota
	StatusAssumed
	StatusDisabled
	StatusProved
	StatusRefuted
	StatusUnsupported
	StatusInconclusive
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusAssumed:
		return "assumed"
	case StatusDisabled:
		return "disabled"
	case StatusProved:
		return "proved"
	case StatusRefuted:
		return "refuted"
	case StatusUnsupported:
		return "unsupported"
	case StatusInconclusive:
		return "inconclusive"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Record is a single named property being carried through base case,
// step case, and final reconciliation.
type Record struct {
	Name       string
	Original   expr.Expr
	Normalized expr.Expr
	Status     Status

	// Reason records how Status reached its current value: an
	// induction technique name ("2-induction") when Proved, the
	// failure description when Failure, or empty otherwise. A
	// refutation's length is kept in CounterexampleLength instead.
	Reason string

	// CounterexampleLength is set when Status == StatusRefuted, the
	// length of the base-case witness that refuted this property.
	CounterexampleLength int
}

// NewRecord normalizes original into NNF via the shared duality table
// (the compiler's pre-pass) and returns the resulting open Record. If
// original cannot be fully pushed into NNF, the record starts life
// already StatusUnsupported: a per-property shape failure marks that
// property unsupported rather than aborting the run.
func NewRecord(b *expr.Builder, name string, original expr.Expr) *Record {
	normalized, ok := expr.ToNNF(b, original)
	status := StatusOpen
	if !ok {
		status = StatusUnsupported
	}
	return &Record{Name: name, Original: original, Normalized: normalized, Status: status}
}

// MarkAssumed transitions an open record to assumed: its body is
// asserted across all frames in the step case rather than checked.
func (r *Record) MarkAssumed() { r.Status = StatusAssumed }

// MarkDisabled removes a record from consideration entirely.
func (r *Record) MarkDisabled() { r.Status = StatusDisabled }

// MarkFailure is the terminal, externally-set state: once set the
// driver never clears it.
func (r *Record) MarkFailure(reason string) {
	r.Status = StatusFailure
	r.Reason = reason
}

// IsSettled reports whether r is in any state other than open
// (disabled, failure, assumed, unsupported, proved, refuted, or
// inconclusive); the induction driver's base case skips such records.
func (r *Record) IsSettled() bool { return r.Status != StatusOpen }
