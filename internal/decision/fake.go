package decision

import "github.com/kroening-labs/mcheck/internal/expr"

// FakeBackend is an in-memory decision procedure over the core's
// opaque predicate atoms: every distinct instantiated predicate name
// is an independent boolean variable, and satisfiability is decided
// by brute-force enumeration. It exists so the induction driver and
// obligation compiler can be exercised end-to-end in tests without a
// real SMT solver; it is not meant to scale past the handful of
// atoms a unit test introduces.
type FakeBackend struct {
	b           *expr.Builder
	constraints []expr.Expr
	handles     map[uintptr]expr.Expr
	model       map[string]bool
}

// NewFakeBackend returns an empty fake decision procedure that builds
// any negated constraints it needs through b.
func NewFakeBackend(b *expr.Builder) *FakeBackend {
	return &FakeBackend{b: b, handles: map[uintptr]expr.Expr{}}
}

// NewFakeFactory returns a decision.Factory that mints fresh
// FakeBackends sharing b, for use as the induction driver's solver
// factory in tests.
func NewFakeFactory(b *expr.Builder) Factory {
	return func() Backend { return NewFakeBackend(b) }
}

func (f *FakeBackend) SetToTrue(e expr.Expr) {
	f.constraints = append(f.constraints, e)
}

func (f *FakeBackend) SetToFalse(e expr.Expr) {
	f.constraints = append(f.constraints, f.b.Not(e))
}

func (f *FakeBackend) Handle(e expr.Expr) expr.Expr {
	f.handles[e.Id()] = e
	return e
}

func (f *FakeBackend) DecProc() Result {
	f.model = nil
	atoms := map[string]struct{}{}
	for _, c := range f.constraints {
		collectAtoms(c, atoms)
	}
	names := make([]string, 0, len(atoms))
	for a := range atoms {
		names = append(names, a)
	}

	if len(names) > 24 {
		// A real backend would never need this; the fake one is only
		// meant for small test fixtures.
		return ERROR
	}

	assignment := make(map[string]bool, len(names))
	if searchSAT(names, 0, assignment, f.constraints) {
		f.model = assignment
		return SAT
	}
	return UNSAT
}

// Model returns the last satisfying assignment found by DecProc, or
// nil if the last call was UNSAT/ERROR or DecProc was never called.
func (f *FakeBackend) Model() map[string]bool { return f.model }

func searchSAT(names []string, i int, assignment map[string]bool, constraints []expr.Expr) bool {
	if i == len(names) {
		for _, c := range constraints {
			if !evalAtom(c, assignment) {
				return false
			}
		}
		return true
	}
	for _, v := range [2]bool{false, true} {
		assignment[names[i]] = v
		if searchSAT(names, i+1, assignment, constraints) {
			return true
		}
	}
	delete(assignment, names[i])
	return false
}

func collectAtoms(e expr.Expr, out map[string]struct{}) {
	if e.Kind() == expr.KindPredicate {
		out[e.PredicateName()] = struct{}{}
		return
	}
	for _, op := range e.Operands() {
		collectAtoms(op, out)
	}
}

func evalAtom(e expr.Expr, assignment map[string]bool) bool {
	switch e.Kind() {
	case expr.KindBoolConst:
		return e.BoolValue()
	case expr.KindPredicate:
		return assignment[e.PredicateName()]
	case expr.KindNot:
		return !evalAtom(e.Op(), assignment)
	case expr.KindAnd:
		for _, op := range e.Ops() {
			if !evalAtom(op, assignment) {
				return false
			}
		}
		return true
	case expr.KindOr:
		for _, op := range e.Ops() {
			if evalAtom(op, assignment) {
				return true
			}
		}
		return false
	case expr.KindImplies:
		return !evalAtom(e.LHS(), assignment) || evalAtom(e.RHS(), assignment)
	case expr.KindEq:
		return evalAtom(e.LHS(), assignment) == evalAtom(e.RHS(), assignment)
	case expr.KindIf:
		if evalAtom(e.Cond(), assignment) {
			return evalAtom(e.Then(), assignment)
		}
		return evalAtom(e.Else(), assignment)
	default:
		panic("decision: FakeBackend cannot evaluate temporal kind " + e.Kind().String())
	}
}
