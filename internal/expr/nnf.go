package expr

// ToNNF pushes negations down to the atoms of phi, reusing the same
// duality table as a single-level Negate. It returns ok=false at the
// first Not it cannot push further (wrapping a CTL EU or an SVA
// sequence-property wrapper), leaving the remaining tree untouched;
// callers that need a hard failure (as opposed to a status
// transition) should report this as an NNFFailure.
func ToNNF(b *Builder, phi Expr) (Expr, bool) {
	switch phi.Kind() {
	case KindNot:
		op := phi.Op()
		if op.Kind() == KindPredicate {
			// Negation of an atom is already NNF; Negate reports no
			// dual here specifically so this case doesn't loop trying
			// to push the Not past something with nothing beneath it.
			return phi, true
		}
		dual, ok := Negate(b, op)
		if !ok {
			return phi, false
		}
		return ToNNF(b, dual)

	case KindBoolConst, KindPredicate:
		return phi, true

	case KindAnd:
		return nnfNary(b, phi, b.And)
	case KindOr:
		return nnfNary(b, phi, b.Or)

	case KindImplies:
		lhs, ok1 := ToNNF(b, phi.LHS())
		rhs, ok2 := ToNNF(b, phi.RHS())
		return b.Implies(lhs, rhs), ok1 && ok2

	case KindEq:
		lhs, ok1 := ToNNF(b, phi.LHS())
		rhs, ok2 := ToNNF(b, phi.RHS())
		return b.Eq(lhs, rhs), ok1 && ok2

	case KindIf:
		cond, ok1 := ToNNF(b, phi.Cond())
		t, ok2 := ToNNF(b, phi.Then())
		f, ok3 := ToNNF(b, phi.Else())
		return b.If(cond, t, f), ok1 && ok2 && ok3

	case KindX, KindF, KindG, KindAX, KindAF, KindAG, KindEX, KindEF, KindEG,
		KindSVAAlways, KindSVASEventually, KindSVANextTime, KindSVASNextTime,
		KindSVAStrong, KindSVAWeak, KindSVAImplicitStrong, KindSVAImplicitWeak,
		KindSVABoolean:
		op, ok := ToNNF(b, phi.Op())
		return rebuildUnary(b, phi, op), ok

	case KindSVAEventually, KindSVARangedAlways, KindSVASAlways, KindSVARangedSEventually,
		KindSVASeqRepetitionStar, KindSVACycleDelay:
		op, ok := ToNNF(b, phi.Op())
		from, to, isRange, unbounded := phi.Range()
		return b.intern(&rangedNode{k: phi.Kind(), op: op, from: from, to: to, isRange: isRange, unbounded: unbounded}), ok

	case KindU, KindR, KindWeakU, KindStrongR, KindEU,
		KindSVAUntil, KindSVASUntil, KindSVAUntilWith, KindSVASUntilWith,
		KindSVAImplies, KindSVAIff,
		KindSVAOverlappedImplication, KindSVANonOverlappedImplication,
		KindSVAOverlappedFollowedBy, KindSVANonOverlappedFollowedBy,
		KindSVASeqConcatenation, KindSVASeqAnd:
		lhs, ok1 := ToNNF(b, phi.LHS())
		rhs, ok2 := ToNNF(b, phi.RHS())
		return rebuildBinary(b, phi, lhs, rhs), ok1 && ok2

	case KindSVASeqOr:
		return nnfNary(b, phi, b.SVASeqOr)

	default:
		return phi, true
	}
}

func nnfNary(b *Builder, phi Expr, rebuild func(...Expr) Expr) (Expr, bool) {
	ops := phi.Ops()
	out := make([]Expr, len(ops))
	ok := true
	for i, op := range ops {
		var oop bool
		out[i], oop = ToNNF(b, op)
		ok = ok && oop
	}
	return rebuild(out...), ok
}

func rebuildUnary(b *Builder, phi, op Expr) Expr {
	return b.unary(phi.Kind(), op)
}

func rebuildBinary(b *Builder, phi, lhs, rhs Expr) Expr {
	return b.binary(phi.Kind(), lhs, rhs)
}
