package expr

import "sync"

// Builder interns expression nodes keyed by structural hash: a cache
// lookup either returns an existing node (making structural equality
// a pointer comparison) or the newly built node is inserted. The core
// itself is single-threaded (see package induction), but the lock is
// kept because a Builder is typically shared across an entire run and
// nothing in this package assumes single-threaded access.
type Builder struct {
	mu    sync.Mutex
	cache map[uint64][]internalNode

	trueExpr  Expr
	falseExpr Expr
}

// NewBuilder creates an empty, interned expression builder.
func NewBuilder() *Builder {
	b := &Builder{cache: map[uint64][]internalNode{}}
	b.trueExpr = b.intern(&boolConstNode{value: true})
	b.falseExpr = b.intern(&boolConstNode{value: false})
	return b
}

func (b *Builder) intern(n internalNode) Expr {
	b.mu.Lock()
	defer b.mu.Unlock()

	h := n.hash()
	for _, cand := range b.cache[h] {
		if cand.deepEq(n) {
			return Expr{n: cand}
		}
	}
	b.cache[h] = append(b.cache[h], n)
	return Expr{n: n}
}

// True and False return the builder's canonical boolean constants.
func (b *Builder) True() Expr  { return b.trueExpr }
func (b *Builder) False() Expr { return b.falseExpr }

// Bool returns True() or False() depending on v.
func (b *Builder) Bool(v bool) Expr {
	if v {
		return b.trueExpr
	}
	return b.falseExpr
}

// Predicate wraps an opaque state formula (owned by the word-level
// layer, out of scope here) identified by its textual form.
func (b *Builder) Predicate(name string) Expr {
	return b.intern(&predicateNode{name: name})
}

func (b *Builder) unary(k Kind, op Expr) Expr {
	return b.intern(&unaryNode{k: k, op: op})
}

func (b *Builder) binary(k Kind, lhs, rhs Expr) Expr {
	return b.intern(&binaryNode{k: k, lhs: lhs, rhs: rhs})
}

func (b *Builder) nary(k Kind, ops []Expr) Expr {
	cp := make([]Expr, len(ops))
	copy(cp, ops)
	return b.intern(&naryNode{k: k, ops: cp})
}

// Not/And/Or/Implies/Eq/If: propositional connectives, usable both
// over plain state predicates and as part of a temporal formula.

func (b *Builder) Not(op Expr) Expr { return b.unary(KindNot, op) }

// And returns the conjunction of ops; the empty conjunction is true,
// and a singleton conjunction is returned unwrapped.
func (b *Builder) And(ops ...Expr) Expr {
	switch len(ops) {
	case 0:
		return b.True()
	case 1:
		return ops[0]
	default:
		return b.nary(KindAnd, ops)
	}
}

// Or returns the disjunction of ops; the empty disjunction is false,
// and a singleton disjunction is returned unwrapped.
func (b *Builder) Or(ops ...Expr) Expr {
	switch len(ops) {
	case 0:
		return b.False()
	case 1:
		return ops[0]
	default:
		return b.nary(KindOr, ops)
	}
}
func (b *Builder) Implies(lhs, rhs Expr) Expr  { return b.binary(KindImplies, lhs, rhs) }
func (b *Builder) Eq(lhs, rhs Expr) Expr       { return b.binary(KindEq, lhs, rhs) }
func (b *Builder) If(cond, t, f Expr) Expr     { return b.intern(&iteNode{cond: cond, t: t, f: f}) }

// Linear-time operators.

func (b *Builder) X(op Expr) Expr       { return b.unary(KindX, op) }
func (b *Builder) F(op Expr) Expr       { return b.unary(KindF, op) }
func (b *Builder) G(op Expr) Expr       { return b.unary(KindG, op) }
func (b *Builder) U(p, q Expr) Expr     { return b.binary(KindU, p, q) }
func (b *Builder) R(p, q Expr) Expr     { return b.binary(KindR, p, q) }
func (b *Builder) WeakU(p, q Expr) Expr   { return b.binary(KindWeakU, p, q) }
func (b *Builder) StrongR(p, q Expr) Expr { return b.binary(KindStrongR, p, q) }

// CTL subset.

func (b *Builder) AX(op Expr) Expr   { return b.unary(KindAX, op) }
func (b *Builder) AF(op Expr) Expr   { return b.unary(KindAF, op) }
func (b *Builder) AG(op Expr) Expr   { return b.unary(KindAG, op) }
func (b *Builder) EX(op Expr) Expr   { return b.unary(KindEX, op) }
func (b *Builder) EF(op Expr) Expr   { return b.unary(KindEF, op) }
func (b *Builder) EG(op Expr) Expr   { return b.unary(KindEG, op) }
func (b *Builder) EU(p, q Expr) Expr { return b.binary(KindEU, p, q) }

// SVA property operators.

func (b *Builder) SVAAlways(op Expr) Expr { return b.unary(KindSVAAlways, op) }

func (b *Builder) SVAEventually(from, to int, op Expr) Expr {
	return b.intern(&rangedNode{k: KindSVAEventually, op: op, from: from, to: to, isRange: true})
}

func (b *Builder) SVASEventually(op Expr) Expr { return b.unary(KindSVASEventually, op) }

func (b *Builder) SVARangedSEventually(from, to int, unbounded bool, op Expr) Expr {
	return b.intern(&rangedNode{
		k: KindSVARangedSEventually, op: op, from: from, to: to,
		isRange: true, unbounded: unbounded,
	})
}

func (b *Builder) SVARangedAlways(from, to int, unbounded bool, op Expr) Expr {
	return b.intern(&rangedNode{
		k: KindSVARangedAlways, op: op, from: from, to: to,
		isRange: true, unbounded: unbounded,
	})
}

func (b *Builder) SVASAlways(from, to int, unbounded bool, op Expr) Expr {
	return b.intern(&rangedNode{
		k: KindSVASAlways, op: op, from: from, to: to,
		isRange: true, unbounded: unbounded,
	})
}

func (b *Builder) SVANextTime(op Expr) Expr  { return b.unary(KindSVANextTime, op) }
func (b *Builder) SVASNextTime(op Expr) Expr { return b.unary(KindSVASNextTime, op) }

func (b *Builder) SVAUntil(p, q Expr) Expr      { return b.binary(KindSVAUntil, p, q) }
func (b *Builder) SVASUntil(p, q Expr) Expr     { return b.binary(KindSVASUntil, p, q) }
func (b *Builder) SVAUntilWith(p, q Expr) Expr  { return b.binary(KindSVAUntilWith, p, q) }
func (b *Builder) SVASUntilWith(p, q Expr) Expr { return b.binary(KindSVASUntilWith, p, q) }
func (b *Builder) SVAImplies(p, q Expr) Expr    { return b.binary(KindSVAImplies, p, q) }
func (b *Builder) SVAIff(p, q Expr) Expr        { return b.binary(KindSVAIff, p, q) }

func (b *Builder) SVAOverlappedImplication(seq, rhs Expr) Expr {
	return b.binary(KindSVAOverlappedImplication, seq, rhs)
}

func (b *Builder) SVANonOverlappedImplication(seq, rhs Expr) Expr {
	return b.binary(KindSVANonOverlappedImplication, seq, rhs)
}

func (b *Builder) SVAOverlappedFollowedBy(seq, rhs Expr) Expr {
	return b.binary(KindSVAOverlappedFollowedBy, seq, rhs)
}

func (b *Builder) SVANonOverlappedFollowedBy(seq, rhs Expr) Expr {
	return b.binary(KindSVANonOverlappedFollowedBy, seq, rhs)
}

// Sequence shapes.

func (b *Builder) SVABoolean(op Expr) Expr { return b.unary(KindSVABoolean, op) }

func (b *Builder) SVASeqConcatenation(lhs, rhs Expr) Expr {
	return b.binary(KindSVASeqConcatenation, lhs, rhs)
}

// SVASeqRepetitionStarFixed builds [*n].
func (b *Builder) SVASeqRepetitionStarFixed(n int, op Expr) Expr {
	return b.intern(&rangedNode{k: KindSVASeqRepetitionStar, op: op, from: n, isRange: false})
}

// SVASeqRepetitionStarRange builds [*from:to]; unbounded sets [*from:$] / [*].
func (b *Builder) SVASeqRepetitionStarRange(from, to int, unbounded bool, op Expr) Expr {
	return b.intern(&rangedNode{
		k: KindSVASeqRepetitionStar, op: op, from: from, to: to,
		isRange: true, unbounded: unbounded,
	})
}

// SVACycleDelayExact builds ##n seq.
func (b *Builder) SVACycleDelayExact(n int, op Expr) Expr {
	return b.intern(&rangedNode{k: KindSVACycleDelay, op: op, from: n, isRange: false})
}

// SVACycleDelayRange builds ##[from:to] seq; unbounded sets ##[from:$].
func (b *Builder) SVACycleDelayRange(from, to int, unbounded bool, op Expr) Expr {
	return b.intern(&rangedNode{
		k: KindSVACycleDelay, op: op, from: from, to: to,
		isRange: true, unbounded: unbounded,
	})
}

func (b *Builder) SVASeqAnd(lhs, rhs Expr) Expr { return b.binary(KindSVASeqAnd, lhs, rhs) }
func (b *Builder) SVASeqOr(ops ...Expr) Expr    { return b.nary(KindSVASeqOr, ops) }

func (b *Builder) SVAStrong(seq Expr) Expr         { return b.unary(KindSVAStrong, seq) }
func (b *Builder) SVAWeak(seq Expr) Expr           { return b.unary(KindSVAWeak, seq) }
func (b *Builder) SVAImplicitStrong(seq Expr) Expr { return b.unary(KindSVAImplicitStrong, seq) }
func (b *Builder) SVAImplicitWeak(seq Expr) Expr   { return b.unary(KindSVAImplicitWeak, seq) }
