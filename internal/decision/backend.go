// Package decision implements the decision-procedure collaborator: a
// thin interface the core drives (SetToTrue/SetToFalse/Handle/DecProc),
// plus two concrete realizations — an in-memory fake used by tests and
// a thin go-z3-backed solver for real runs.
package decision

import "github.com/kroening-labs/mcheck/internal/expr"

// Result is the decision procedure's verdict.
type Result int

const (
	SAT Result = iota
	UNSAT
	ERROR
)

func (r Result) String() string {
	switch r {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	default:
		return "ERROR"
	}
}

// Backend is the collaborator contract: assert constraints, intern an
// expression as a solver handle for later trace extraction, and run
// the decision procedure.
type Backend interface {
	SetToTrue(e expr.Expr)
	SetToFalse(e expr.Expr)
	Handle(e expr.Expr) expr.Expr
	DecProc() Result
}

// Factory produces a fresh Backend; the induction driver acquires one
// per property per step-case iteration and lets it go out of scope on
// every exit path.
type Factory func() Backend
