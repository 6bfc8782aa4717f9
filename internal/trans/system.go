// Package trans implements the transition-system and expression-
// instantiation collaborators: everything the core treats as external
// (the unwinder, frame instantiation, and lasso symbols) but still
// needs a concrete realization of to run end-to-end.
package trans

import (
	"fmt"

	"github.com/kroening-labs/mcheck/internal/expr"
)

// System is the opaque transition system: a transition relation and
// an initial-state predicate, both expressed over "current-state" /
// "next-state" symbols that Instantiate renames per timeframe.
type System struct {
	Builder   *expr.Builder
	TransExpr expr.Expr // relates frame c to frame c+1 when instantiated at c
	InitExpr  expr.Expr // the initial-state predicate, instantiated at frame 0
}

// NewSystem builds a transition system over the given builder.
func NewSystem(b *expr.Builder, trans, init expr.Expr) *System {
	return &System{Builder: b, TransExpr: trans, InitExpr: init}
}

// Instantiate renames the state symbols of phi to their frame-c
// copies, within an unwinding of length noTimeframes. Symbols are
// opaque predicate leaves here (bit-blasting is out of scope), so
// instantiation is a deterministic textual decoration; composite
// nodes are rebuilt with instantiated children.
func Instantiate(b *expr.Builder, phi expr.Expr, c, noTimeframes int) expr.Expr {
	return instantiateRec(b, phi, c, noTimeframes)
}

// InstantiateProperty is the same as Instantiate, but additionally
// validates that phi is a pure state formula (no temporal operators
// remain); it panics-as-invariant-violation otherwise, mirroring the
// original's DATA_INVARIANT, since reaching this with a temporal
// operator left over is a bug in the obligation compiler, not a
// user-facing error.
func InstantiateProperty(b *expr.Builder, phi expr.Expr, c, noTimeframes int) expr.Expr {
	if phi.Kind().IsTemporal() {
		panic(fmt.Sprintf("trans: InstantiateProperty called on temporal kind %s", phi.Kind()))
	}
	return Instantiate(b, phi, c, noTimeframes)
}

func instantiateRec(b *expr.Builder, phi expr.Expr, c, n int) expr.Expr {
	switch phi.Kind() {
	case expr.KindPredicate:
		name := phi.PredicateName()
		if len(name) > 0 && name[len(name)-1] == '\'' {
			// A primed symbol refers to the successor state, i.e. the
			// transition relation's "next" copy.
			return b.Predicate(fmt.Sprintf("%s@%d", name[:len(name)-1], c+1))
		}
		return b.Predicate(fmt.Sprintf("%s@%d", name, c))
	case expr.KindBoolConst:
		return phi
	case expr.KindNot:
		return b.Not(instantiateRec(b, phi.Op(), c, n))
	case expr.KindAnd:
		return b.And(instantiateOps(b, phi.Ops(), c, n)...)
	case expr.KindOr:
		return b.Or(instantiateOps(b, phi.Ops(), c, n)...)
	case expr.KindImplies:
		return b.Implies(instantiateRec(b, phi.LHS(), c, n), instantiateRec(b, phi.RHS(), c, n))
	case expr.KindEq:
		return b.Eq(instantiateRec(b, phi.LHS(), c, n), instantiateRec(b, phi.RHS(), c, n))
	case expr.KindIf:
		return b.If(
			instantiateRec(b, phi.Cond(), c, n),
			instantiateRec(b, phi.Then(), c, n),
			instantiateRec(b, phi.Else(), c, n),
		)
	default:
		// Temporal operators never reach instantiation directly; the
		// obligation compiler strips them before calling Instantiate.
		panic(fmt.Sprintf("trans: cannot instantiate temporal kind %s", phi.Kind()))
	}
}

func instantiateOps(b *expr.Builder, ops []expr.Expr, c, n int) []expr.Expr {
	out := make([]expr.Expr, len(ops))
	for i, op := range ops {
		out[i] = instantiateRec(b, op, c, n)
	}
	return out
}

// LassoSymbol returns a fresh boolean expression meaning "the state
// at frame k+1 equals the state at frame l", interning on (l, k) so
// repeated requests for the same loop closure return the same
// symbol.
func LassoSymbol(b *expr.Builder, l, k int) expr.Expr {
	return b.Predicate(fmt.Sprintf("__lasso_%d_%d", l, k))
}

// Unwind asserts the relation between every consecutive pair of the
// noTimeframes copies into the solver. withInitial suppresses the
// initial-state predicate when false, as required by the induction
// step case.
func Unwind(b *expr.Builder, sys *System, solver Solver, noTimeframes int, withInitial bool) {
	if withInitial && !sys.InitExpr.IsZero() {
		solver.SetToTrue(Instantiate(b, sys.InitExpr, 0, noTimeframes))
	}
	for c := 0; c+1 < noTimeframes; c++ {
		solver.SetToTrue(Instantiate(b, sys.TransExpr, c, noTimeframes))
	}
}

// Solver is the minimal slice of the decision-procedure collaborator
// that Unwind needs; internal/decision.Backend satisfies it.
type Solver interface {
	SetToTrue(expr.Expr)
}
