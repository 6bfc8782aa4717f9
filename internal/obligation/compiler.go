// Package obligation implements the obligation compiler: it
// translates a property expression, already (or lazily, via Negate)
// in negation-normal form, into per-timeframe boolean obligations over
// an unwound transition system.
package obligation

import (
	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/sequence"
	"github.com/kroening-labs/mcheck/internal/trans"
)

// Obligations computes obligations(phi, t, N): phi is a property
// expression, t is the starting timeframe (0 <= t < N), and N is the
// unwinding bound. The caller is responsible for having established
// NNF upstream; a leftover negation that this compiler cannot dualize
// fails with an *NNFFailureError.
func Obligations(b *expr.Builder, phi expr.Expr, t, noTimeframes int) (Set, error) {
	switch phi.Kind() {
	case expr.KindAG, expr.KindG, expr.KindSVAAlways:
		op := phi.Op()
		obligations := NewSet()
		for c := t; c < noTimeframes; c++ {
			rec, err := Obligations(b, op, c, noTimeframes)
			if err != nil {
				return Set{}, err
			}
			obligations.Add(rec)
		}
		return obligations, nil

	case expr.KindSVAEventually:
		op := phi.Op()
		from, to, _, _ := phi.Range()
		if t+from >= noTimeframes || t+to >= noTimeframes {
			return Single(noTimeframes-1, b.True()), nil
		}
		var disjuncts []expr.Expr
		for u := t + from; u <= t+to; u++ {
			rec, err := Obligations(b, op, u, noTimeframes)
			if err != nil {
				return Set{}, err
			}
			_, e := rec.Conjunction(b)
			disjuncts = append(disjuncts, e)
		}
		return Single(noTimeframes-1, b.Or(disjuncts...)), nil

	case expr.KindAF, expr.KindF, expr.KindSVASEventually:
		phiOp := phi.Op()
		obligations := NewSet()

		var phiDisjuncts []expr.Expr
		for j := t; j < noTimeframes; j++ {
			rec, err := Obligations(b, phiOp, j, noTimeframes)
			if err != nil {
				return Set{}, err
			}
			_, e := rec.Conjunction(b)
			phiDisjuncts = append(phiDisjuncts, e)
		}
		phiDisjunction := b.Or(phiDisjuncts...)

		for k := t + 1; k < noTimeframes; k++ {
			for l := t; l < k; l++ {
				lasso := trans.LassoSymbol(b, l, k)
				obligations.AddExpr(k, b.Or(b.Not(lasso), phiDisjunction))
			}
		}
		return obligations, nil

	case expr.KindSVARangedSEventually:
		op := phi.Op()
		from, to, _, unbounded := phi.Range()
		if from < 0 {
			return Set{}, ErrIndexOutOfRange
		}
		if unbounded {
			return Set{}, ErrUnboundedRange
		}
		from = min(noTimeframes-1, t+from)
		to = min(t+to, noTimeframes-1)

		var disjuncts []expr.Expr
		time := 0
		for c := from; c <= to; c++ {
			rec, err := Obligations(b, op, c, noTimeframes)
			if err != nil {
				return Set{}, err
			}
			ct, e := rec.Conjunction(b)
			if ct > time {
				time = ct
			}
			disjuncts = append(disjuncts, e)
		}
		return Single(time, b.Or(disjuncts...)), nil

	case expr.KindSVARangedAlways, expr.KindSVASAlways:
		op := phi.Op()
		from, toRaw, _, unbounded := phi.Range()
		if from < 0 {
			return Set{}, ErrIndexOutOfRange
		}
		from = t + from
		to := toRaw
		if unbounded {
			to = noTimeframes - 1
		} else {
			to = min(t+toRaw, noTimeframes-1)
		}

		obligations := NewSet()
		for c := from; c <= to; c++ {
			rec, err := Obligations(b, op, c, noTimeframes)
			if err != nil {
				return Set{}, err
			}
			obligations.Add(rec)
		}
		return obligations, nil

	case expr.KindX, expr.KindAX, expr.KindSVANextTime, expr.KindSVASNextTime:
		next := t + 1
		op := phi.Op()
		if next < noTimeframes {
			return Obligations(b, op, next, noTimeframes)
		}
		return Single(noTimeframes-1, b.True()), nil

	case expr.KindU, expr.KindSVASUntil:
		p, q := phi.LHS(), phi.RHS()
		tmp := b.And(b.F(q), b.WeakU(p, q))
		return Obligations(b, tmp, t, noTimeframes)

	case expr.KindWeakU, expr.KindSVAUntil:
		p, q := phi.LHS(), phi.RHS()
		var tail expr.Expr
		if t+1 < noTimeframes {
			tail = b.And(p, b.X(phi))
		} else {
			tail = p
		}
		return Obligations(b, b.Or(q, tail), t, noTimeframes)

	case expr.KindR:
		p, q := phi.LHS(), phi.RHS()
		var expansion expr.Expr
		if t+1 < noTimeframes {
			expansion = b.And(q, b.Or(p, b.X(phi)))
		} else {
			expansion = q
		}
		return Obligations(b, expansion, t, noTimeframes)

	case expr.KindStrongR:
		// Deliberately reuses the weak-until rewrite (flagged open
		// question in the design notes: do not "fix" without owner
		// confirmation).
		p, q := phi.LHS(), phi.RHS()
		tmp := b.And(b.F(q), b.WeakU(p, q))
		return Obligations(b, tmp, t, noTimeframes)

	case expr.KindSVAUntilWith:
		return Obligations(b, b.R(phi.RHS(), phi.LHS()), t, noTimeframes)

	case expr.KindSVASUntilWith:
		return Obligations(b, b.StrongR(phi.RHS(), phi.LHS()), t, noTimeframes)

	case expr.KindAnd:
		obligations := NewSet()
		for _, op := range phi.Ops() {
			rec, err := Obligations(b, op, t, noTimeframes)
			if err != nil {
				return Set{}, err
			}
			obligations.Add(rec)
		}
		return obligations, nil

	case expr.KindOr:
		maxT := 0
		var disjuncts []expr.Expr
		for _, op := range phi.Ops() {
			rec, err := Obligations(b, op, t, noTimeframes)
			if err != nil {
				return Set{}, err
			}
			ct, e := rec.Conjunction(b)
			if ct > maxT {
				maxT = ct
			}
			disjuncts = append(disjuncts, e)
		}
		return Single(maxT, b.Or(disjuncts...)), nil

	case expr.KindEq:
		lhs, rhs := phi.LHS(), phi.RHS()
		tmp := b.And(b.Implies(lhs, rhs), b.Implies(rhs, lhs))
		return Obligations(b, tmp, t, noTimeframes)

	case expr.KindImplies:
		tmp := b.Or(b.Not(phi.LHS()), phi.RHS())
		return Obligations(b, tmp, t, noTimeframes)

	case expr.KindIf:
		cond := trans.InstantiateProperty(b, phi.Cond(), t, noTimeframes)
		tRec, err := Obligations(b, phi.Then(), t, noTimeframes)
		if err != nil {
			return Set{}, err
		}
		fRec, err := Obligations(b, phi.Else(), t, noTimeframes)
		if err != nil {
			return Set{}, err
		}
		tt, te := tRec.Conjunction(b)
		ft, fe := fRec.Conjunction(b)
		return Single(max(tt, ft), b.If(cond, te, fe)), nil

	case expr.KindNot:
		return obligationsNot(b, phi, t, noTimeframes)

	case expr.KindSVAImplies:
		return Obligations(b, b.Implies(phi.LHS(), phi.RHS()), t, noTimeframes)

	case expr.KindSVAIff:
		return Obligations(b, b.Eq(phi.LHS(), phi.RHS()), t, noTimeframes)

	case expr.KindSVAOverlappedImplication, expr.KindSVANonOverlappedImplication:
		return obligationsImplication(b, phi, t, noTimeframes)

	case expr.KindSVAOverlappedFollowedBy, expr.KindSVANonOverlappedFollowedBy:
		return obligationsFollowedBy(b, phi, t, noTimeframes)

	case expr.KindSVAStrong, expr.KindSVAWeak, expr.KindSVAImplicitStrong, expr.KindSVAImplicitWeak:
		matches := sequence.Instantiate(b, phi.Op(), semanticsOf(phi.Kind()), t, noTimeframes)
		var disjuncts []expr.Expr
		maxT := t
		for _, m := range matches {
			if m.Empty {
				continue
			}
			disjuncts = append(disjuncts, m.Condition)
			if m.EndTime > maxT {
				maxT = m.EndTime
			}
		}
		return Single(maxT, b.Or(disjuncts...)), nil

	default:
		// Any other expression is a state predicate.
		return Single(t, trans.InstantiateProperty(b, phi, t, noTimeframes)), nil
	}
}

// ObligationsAt is the one-argument entry point: obligations(phi, N),
// defaulting the starting timeframe to 0.
func ObligationsAt(b *expr.Builder, phi expr.Expr, noTimeframes int) (Set, error) {
	return Obligations(b, phi, 0, noTimeframes)
}

func obligationsNot(b *expr.Builder, phi expr.Expr, t, noTimeframes int) (Set, error) {
	op := phi.Op()

	if op.Kind() == expr.KindPredicate {
		return Single(t, trans.InstantiateProperty(b, phi, t, noTimeframes)), nil
	}

	if negated, ok := Negate(b, op); ok {
		return Obligations(b, negated, t, noTimeframes)
	}

	if op.Kind().IsSVASequenceWrapper() {
		matches := sequence.Instantiate(b, op.Op(), semanticsOf(op.Kind()), t, noTimeframes)
		obligations := NewSet()
		for _, m := range matches {
			if m.Empty {
				continue
			}
			obligations.AddExpr(m.EndTime, b.Not(m.Condition))
		}
		return obligations, nil
	}

	if op.Kind().IsTemporal() {
		return Set{}, newNNFFailure(op.Kind())
	}

	return Single(t, trans.InstantiateProperty(b, phi, t, noTimeframes)), nil
}

func obligationsImplication(b *expr.Builder, phi expr.Expr, t, noTimeframes int) (Set, error) {
	nonOverlapped := phi.Kind() == expr.KindSVANonOverlappedImplication
	lhsMatches := sequence.Instantiate(b, phi.LHS(), sequence.Strong, t, noTimeframes)

	result := NewSet()
	for _, m := range lhsMatches {
		tRhs := m.EndTime
		if nonOverlapped {
			tRhs++
		}
		if tRhs >= noTimeframes {
			return Single(noTimeframes-1, b.True()), nil
		}

		rhsObligations, err := Obligations(b, phi.RHS(), tRhs, noTimeframes)
		if err != nil {
			return Set{}, err
		}
		for ti, exprs := range rhsObligations.Map {
			result.AddExpr(ti, b.Implies(m.Condition, b.And(exprs...)))
		}
	}
	return result, nil
}

func obligationsFollowedBy(b *expr.Builder, phi expr.Expr, t, noTimeframes int) (Set, error) {
	nonOverlapped := phi.Kind() == expr.KindSVANonOverlappedFollowedBy
	matches := sequence.Instantiate(b, phi.LHS(), sequence.Strong, t, noTimeframes)

	var disjuncts []expr.Expr
	maxT := t
	for _, m := range matches {
		propertyStart := m.EndTime
		if nonOverlapped {
			propertyStart++
		}
		if propertyStart >= noTimeframes {
			if noTimeframes-1 > maxT {
				maxT = noTimeframes - 1
			}
			disjuncts = append(disjuncts, m.Condition)
			continue
		}
		rec, err := Obligations(b, phi.RHS(), propertyStart, noTimeframes)
		if err != nil {
			return Set{}, err
		}
		ct, e := rec.Conjunction(b)
		disjuncts = append(disjuncts, b.And(m.Condition, e))
		if ct > maxT {
			maxT = ct
		}
	}
	return Single(maxT, b.Or(disjuncts...)), nil
}

func semanticsOf(k expr.Kind) sequence.Semantics {
	switch k {
	case expr.KindSVAStrong, expr.KindSVAImplicitStrong:
		return sequence.Strong
	default:
		return sequence.Weak
	}
}
