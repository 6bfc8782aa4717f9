package expr

// Negate computes a dual of phi equivalent to ¬phi, with the negation
// pushed one level down rather than left wrapping the whole formula.
// It returns ok=false when phi has no dual form expressible in this
// grammar (the CTL EU operator, or an SVA sequence-property wrapper,
// whose negation needs match points rather than a syntactic dual).
func Negate(b *Builder, phi Expr) (negated Expr, ok bool) {
	switch phi.Kind() {
	case KindBoolConst:
		return b.Bool(!phi.BoolValue()), true
	case KindPredicate:
		// An atom has no further dual; wrapping it in Not makes no
		// progress, so callers fall back to their own Not-wrapping
		// (negateOrPanic, or a leaf fast path in the callers that
		// unwrap a top-level Not directly).
		return Expr{}, false
	case KindNot:
		return phi.Op(), true
	case KindAnd:
		return b.Or(negateAll(b, phi.Ops())...), true
	case KindOr:
		return b.And(negateAll(b, phi.Ops())...), true
	case KindImplies:
		return b.And(phi.LHS(), negateOrPanic(b, phi.RHS())), true
	case KindIf:
		return b.If(phi.Cond(), negateOrPanic(b, phi.Then()), negateOrPanic(b, phi.Else())), true

	// LTL: X is self-dual (no path quantifier); F/G and U/R are
	// classic duals; weak_U and strong_R are duals of one another.
	case KindX:
		return b.X(negateOrPanic(b, phi.Op())), true
	case KindF:
		return b.G(negateOrPanic(b, phi.Op())), true
	case KindG:
		return b.F(negateOrPanic(b, phi.Op())), true
	case KindU:
		return b.R(negateOrPanic(b, phi.LHS()), negateOrPanic(b, phi.RHS())), true
	case KindR:
		return b.U(negateOrPanic(b, phi.LHS()), negateOrPanic(b, phi.RHS())), true
	case KindWeakU:
		return b.StrongR(negateOrPanic(b, phi.LHS()), negateOrPanic(b, phi.RHS())), true
	case KindStrongR:
		return b.WeakU(negateOrPanic(b, phi.LHS()), negateOrPanic(b, phi.RHS())), true

	// CTL: AX/EX, AF/EG, AG/EF are the classical path-quantifier duals.
	case KindAX:
		return b.EX(negateOrPanic(b, phi.Op())), true
	case KindEX:
		return b.AX(negateOrPanic(b, phi.Op())), true
	case KindAF:
		return b.EG(negateOrPanic(b, phi.Op())), true
	case KindEG:
		return b.AF(negateOrPanic(b, phi.Op())), true
	case KindAG:
		return b.EF(negateOrPanic(b, phi.Op())), true
	case KindEF:
		return b.AG(negateOrPanic(b, phi.Op())), true

	// SVA property operators that mirror an LTL dual pair directly.
	case KindSVAAlways:
		return b.SVASEventually(negateOrPanic(b, phi.Op())), true
	case KindSVASEventually:
		return b.SVAAlways(negateOrPanic(b, phi.Op())), true
	case KindSVANextTime:
		return b.SVASNextTime(negateOrPanic(b, phi.Op())), true
	case KindSVASNextTime:
		return b.SVANextTime(negateOrPanic(b, phi.Op())), true
	case KindSVAEventually:
		from, to, _, _ := phi.Range()
		return b.SVARangedAlways(from, to, false, negateOrPanic(b, phi.Op())), true
	case KindSVARangedAlways:
		from, to, _, unbounded := phi.Range()
		if unbounded {
			return Expr{}, false
		}
		return b.SVAEventually(from, to, negateOrPanic(b, phi.Op())), true
	case KindSVASAlways:
		from, to, _, unbounded := phi.Range()
		return b.SVARangedSEventually(from, to, unbounded, negateOrPanic(b, phi.Op())), true
	case KindSVARangedSEventually:
		from, to, _, unbounded := phi.Range()
		return b.SVASAlways(from, to, unbounded, negateOrPanic(b, phi.Op())), true

	case KindSVAImplies:
		return Negate(b, b.Implies(phi.LHS(), phi.RHS()))
	case KindSVAIff:
		// Not reducible to a single dual without expanding to the
		// equivalent implies-pair first; callers fall back to wrapping.
		return b.Not(phi), false

	default:
		return Expr{}, false
	}
}

func negateAll(b *Builder, ops []Expr) []Expr {
	out := make([]Expr, len(ops))
	for i, op := range ops {
		out[i] = negateOrPanic(b, op)
	}
	return out
}

// negateOrPanic is used where the outer call's own support story
// already guarantees a dual exists (negating a recursively
// well-formed subformula of something already proved dualizable).
func negateOrPanic(b *Builder, phi Expr) Expr {
	n, ok := Negate(b, phi)
	if !ok {
		return b.Not(phi)
	}
	return n
}
