package decision

import (
	"github.com/aclements/go-z3/z3"

	"github.com/kroening-labs/mcheck/internal/expr"
)

// Z3Backend is a thin propositional encoding over go-z3: every
// interned predicate leaf becomes an opaque boolean constant (the
// word-level expression it stands for is bit-blasted upstream, out of
// scope here — see trans.System), and the remaining connectives are
// the direct z3.Bool equivalents.
type Z3Backend struct {
	ctx    *z3.Context
	solver *z3.Solver
	cache  map[uintptr]z3.Bool
}

// NewZ3Backend creates a fresh go-z3-backed decision procedure.
func NewZ3Backend() *Z3Backend {
	cfg := z3.NewContextConfig()
	ctx := z3.NewContext(cfg)
	return &Z3Backend{
		ctx:    ctx,
		solver: z3.NewSolver(ctx),
		cache:  map[uintptr]z3.Bool{},
	}
}

// NewZ3Factory returns a decision.Factory that mints fresh Z3Backends.
func NewZ3Factory() Factory {
	return func() Backend { return NewZ3Backend() }
}

func (z *Z3Backend) SetToTrue(e expr.Expr) {
	z.solver.Assert(z.convert(e))
}

func (z *Z3Backend) SetToFalse(e expr.Expr) {
	z.solver.Assert(z.convert(e).Not())
}

func (z *Z3Backend) Handle(e expr.Expr) expr.Expr {
	z.convert(e)
	return e
}

func (z *Z3Backend) DecProc() Result {
	ok, err := z.solver.Check()
	if err != nil {
		return ERROR
	}
	if ok {
		return SAT
	}
	return UNSAT
}

func (z *Z3Backend) convert(e expr.Expr) z3.Bool {
	if v, ok := z.cache[e.Id()]; ok {
		return v
	}

	var result z3.Bool
	switch e.Kind() {
	case expr.KindBoolConst:
		result = z.ctx.FromBool(e.BoolValue())
	case expr.KindPredicate:
		result = z.ctx.BoolConst(e.PredicateName())
	case expr.KindNot:
		result = z.convert(e.Op()).Not()
	case expr.KindAnd:
		ops := e.Ops()
		result = z.convert(ops[0])
		for _, op := range ops[1:] {
			result = result.And(z.convert(op))
		}
	case expr.KindOr:
		ops := e.Ops()
		result = z.convert(ops[0])
		for _, op := range ops[1:] {
			result = result.Or(z.convert(op))
		}
	case expr.KindImplies:
		lhs, rhs := z.convert(e.LHS()), z.convert(e.RHS())
		result = lhs.Not().Or(rhs)
	case expr.KindEq:
		lhs, rhs := z.convert(e.LHS()), z.convert(e.RHS())
		result = lhs.Iff(rhs)
	case expr.KindIf:
		cond, t, f := z.convert(e.Cond()), z.convert(e.Then()), z.convert(e.Else())
		result = cond.And(t).Or(cond.Not().And(f))
	default:
		panic("decision: Z3Backend cannot handle temporal kind " + e.Kind().String())
	}

	z.cache[e.Id()] = result
	return result
}
