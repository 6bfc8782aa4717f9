package obligation

import "github.com/kroening-labs/mcheck/internal/expr"

// Set maps a timeframe index to the list of boolean expressions that
// must all hold at that timeframe. Every key t present in a Set built
// by Obligations satisfies 0 <= t < the bound it was built against.
type Set struct {
	Map map[int][]expr.Expr
}

// NewSet returns an empty obligation set.
func NewSet() Set {
	return Set{Map: map[int][]expr.Expr{}}
}

// Single returns a set with exactly one obligation.
func Single(t int, e expr.Expr) Set {
	return Set{Map: map[int][]expr.Expr{t: {e}}}
}

// AddExpr appends a single obligation at timeframe t.
func (s *Set) AddExpr(t int, e expr.Expr) {
	s.Map[t] = append(s.Map[t], e)
}

// Add merges another set into s (multiset union per key).
func (s *Set) Add(other Set) {
	for t, exprs := range other.Map {
		s.Map[t] = append(s.Map[t], exprs...)
	}
}

// Conjunction returns (T, e): T is the latest timeframe appearing in
// the set (0 if empty), and e is a single expression equivalent to
// the conjunction of every obligation across all timeframes. The
// caller is responsible for instantiating each conjunct at its own
// key; here the conjuncts are assumed already appropriately
// expressed (either already instantiated, or still symbolic and
// meant to be combined as-is, matching how property.cpp's
// obligationst::conjunction is used purely as bookkeeping prior to
// final instantiation).
func (s *Set) Conjunction(b *expr.Builder) (int, expr.Expr) {
	t := 0
	var all []expr.Expr
	for k, exprs := range s.Map {
		if k > t {
			t = k
		}
		all = append(all, exprs...)
	}
	return t, b.And(all...)
}
