package expr

import (
	"fmt"
	"strings"
)

// internalNode is the private representation behind every interned
// Expr: callers only ever see the exported *Expr wrapper, never this
// type.
type internalNode interface {
	kind() Kind
	operands() []Expr
	rawPtr() uintptr
	hash() uint64
	deepEq(internalNode) bool
	String() string
}

// Expr is a structurally-shared, immutable node in the expression
// graph. Two Exprs are structurally equal iff they are the same
// pointer, because every node is produced through a Builder's
// interning cache.
type Expr struct {
	n internalNode
}

// Kind returns the node's tag.
func (e Expr) Kind() Kind { return e.n.kind() }

// Operands returns the node's children, in order. Leaves return nil.
func (e Expr) Operands() []Expr { return e.n.operands() }

// Id returns a stable identity for the node, suitable as a map key;
// after interning, structural equality and Id equality coincide.
func (e Expr) Id() uintptr { return e.n.rawPtr() }

func (e Expr) String() string { return e.n.String() }

// Equal is structural equality, which after interning is pointer
// equality on the underlying node.
func (e Expr) Equal(o Expr) bool { return e.n.rawPtr() == o.n.rawPtr() }

// IsZero reports whether e is the zero Expr (no node), used as a
// "missing" sentinel in places that would otherwise need a pointer.
func (e Expr) IsZero() bool { return e.n == nil }

/*
 * Leaves.
 */

type predicateNode struct{ name string }

func (n *predicateNode) kind() Kind        { return KindPredicate }
func (n *predicateNode) operands() []Expr  { return nil }
func (n *predicateNode) rawPtr() uintptr   { return rawPtrOf(n) }
func (n *predicateNode) String() string    { return n.name }
func (n *predicateNode) hash() uint64      { return hashString("predicate", n.name) }
func (n *predicateNode) deepEq(o internalNode) bool {
	op, ok := o.(*predicateNode)
	return ok && op.name == n.name
}

type boolConstNode struct{ value bool }

func (n *boolConstNode) kind() Kind       { return KindBoolConst }
func (n *boolConstNode) operands() []Expr { return nil }
func (n *boolConstNode) rawPtr() uintptr  { return rawPtrOf(n) }
func (n *boolConstNode) String() string {
	if n.value {
		return "true"
	}
	return "false"
}
func (n *boolConstNode) hash() uint64 { return hashString("bool_const", fmt.Sprint(n.value)) }
func (n *boolConstNode) deepEq(o internalNode) bool {
	on, ok := o.(*boolConstNode)
	return ok && on.value == n.value
}

/*
 * Unary: Not, X, AX, F, AF, G, AG, EX, EF, EG, sva_always,
 * sva_s_eventually, sva_nexttime, sva_s_nexttime, and the four
 * sequence-to-property wrappers.
 */

type unaryNode struct {
	k  Kind
	op Expr
}

func (n *unaryNode) kind() Kind       { return n.k }
func (n *unaryNode) operands() []Expr { return []Expr{n.op} }
func (n *unaryNode) rawPtr() uintptr  { return rawPtrOf(n) }
func (n *unaryNode) String() string   { return fmt.Sprintf("%s(%s)", n.k, n.op) }
func (n *unaryNode) hash() uint64     { return hashNode(n.k, n.op) }
func (n *unaryNode) deepEq(o internalNode) bool {
	on, ok := o.(*unaryNode)
	return ok && on.k == n.k && on.op.Equal(n.op)
}

/*
 * Binary: U, R, weak_U, strong_R, Eq, Implies, sva_until(_with),
 * sva_s_until(_with), sva_implies, sva_iff, the implication/followed-by
 * operators, EU, sequence concatenation and sva_and (sequence).
 */

type binaryNode struct {
	k        Kind
	lhs, rhs Expr
}

func (n *binaryNode) kind() Kind       { return n.k }
func (n *binaryNode) operands() []Expr { return []Expr{n.lhs, n.rhs} }
func (n *binaryNode) rawPtr() uintptr  { return rawPtrOf(n) }
func (n *binaryNode) String() string   { return fmt.Sprintf("%s(%s, %s)", n.k, n.lhs, n.rhs) }
func (n *binaryNode) hash() uint64     { return hashNode(n.k, n.lhs, n.rhs) }
func (n *binaryNode) deepEq(o internalNode) bool {
	on, ok := o.(*binaryNode)
	return ok && on.k == n.k && on.lhs.Equal(n.lhs) && on.rhs.Equal(n.rhs)
}

/*
 * N-ary: And, Or, sva_or (sequence).
 */

type naryNode struct {
	k    Kind
	ops  []Expr
}

func (n *naryNode) kind() Kind       { return n.k }
func (n *naryNode) operands() []Expr { return n.ops }
func (n *naryNode) rawPtr() uintptr  { return rawPtrOf(n) }
func (n *naryNode) String() string {
	parts := make([]string, len(n.ops))
	for i, o := range n.ops {
		parts[i] = o.String()
	}
	return fmt.Sprintf("%s(%s)", n.k, strings.Join(parts, ", "))
}
func (n *naryNode) hash() uint64 { return hashNode(n.k, n.ops...) }
func (n *naryNode) deepEq(o internalNode) bool {
	on, ok := o.(*naryNode)
	if !ok || on.k != n.k || len(on.ops) != len(n.ops) {
		return false
	}
	for i := range n.ops {
		if !on.ops[i].Equal(n.ops[i]) {
			return false
		}
	}
	return true
}

/*
 * if(cond, true_case, false_case)
 */

type iteNode struct {
	cond, t, f Expr
}

func (n *iteNode) kind() Kind       { return KindIf }
func (n *iteNode) operands() []Expr { return []Expr{n.cond, n.t, n.f} }
func (n *iteNode) rawPtr() uintptr  { return rawPtrOf(n) }
func (n *iteNode) String() string   { return fmt.Sprintf("if(%s, %s, %s)", n.cond, n.t, n.f) }
func (n *iteNode) hash() uint64     { return hashNode(KindIf, n.cond, n.t, n.f) }
func (n *iteNode) deepEq(o internalNode) bool {
	on, ok := o.(*iteNode)
	return ok && on.cond.Equal(n.cond) && on.t.Equal(n.t) && on.f.Equal(n.f)
}

/*
 * Ranged operators: sva_eventually[from..to], sva_ranged_always,
 * sva_s_always, sva_ranged_s_eventually, sva_sequence_repetition_star
 * ([*n] and [*n:m]), sva_cycle_delay (exact and ranged).
 *
 * unbounded == true represents "$" (infinity) on the upper end,
 * whatever value to holds; for sva_sequence_repetition_star with no
 * range given at all ([*]), unbounded is set and from/to are
 * meaningless.
 */

type rangedNode struct {
	k          Kind
	op         Expr
	from, to   int
	isRange    bool // false: a single fixed count/delay (From used, To ignored)
	unbounded  bool // "$" on the upper end
}

func (n *rangedNode) kind() Kind       { return n.k }
func (n *rangedNode) operands() []Expr { return []Expr{n.op} }
func (n *rangedNode) rawPtr() uintptr  { return rawPtrOf(n) }
func (n *rangedNode) String() string {
	switch {
	case n.unbounded:
		return fmt.Sprintf("%s[%d:$](%s)", n.k, n.from, n.op)
	case n.isRange:
		return fmt.Sprintf("%s[%d:%d](%s)", n.k, n.from, n.to, n.op)
	default:
		return fmt.Sprintf("%s[%d](%s)", n.k, n.from, n.op)
	}
}
func (n *rangedNode) hash() uint64 {
	return hashNode(n.k, n.op) ^ uint64(n.from)<<1 ^ uint64(n.to)<<17 ^ boolHash(n.isRange, n.unbounded)
}
func (n *rangedNode) deepEq(o internalNode) bool {
	on, ok := o.(*rangedNode)
	return ok && on.k == n.k && on.op.Equal(n.op) && on.from == n.from &&
		on.to == n.to && on.isRange == n.isRange && on.unbounded == n.unbounded
}

func boolHash(bs ...bool) uint64 {
	var h uint64
	for i, b := range bs {
		if b {
			h |= 1 << uint(i)
		}
	}
	return h
}
