// Package sequence implements the SVA sequence engine: it expands a
// sequence expression into a finite set of match shapes, or reports
// "unsupported" by returning the empty set.
package sequence

import "github.com/kroening-labs/mcheck/internal/expr"

// Match is an ordered sequence of per-cycle boolean conditions. The
// start cycle is implicit from the caller's context; Length equals
// len(CondVector).
type Match struct {
	CondVector []expr.Expr
}

// Length returns the number of cycles the match consumes.
func (m Match) Length() int { return len(m.CondVector) }

// Empty reports whether m consumes zero cycles.
func (m Match) Empty() bool { return len(m.CondVector) == 0 }

// TrueMatch returns the n-cycle match whose every condition is the
// builder's "true" constant, used to prepend a cycle delay.
func TrueMatch(b *expr.Builder, n int) Match {
	cv := make([]expr.Expr, n)
	for i := range cv {
		cv[i] = b.True()
	}
	return Match{CondVector: cv}
}

// Concat is non-overlapping concatenation: length(a)+length(b).
func Concat(a, b Match) Match {
	cv := make([]expr.Expr, 0, len(a.CondVector)+len(b.CondVector))
	cv = append(cv, a.CondVector...)
	cv = append(cv, b.CondVector...)
	return Match{CondVector: cv}
}

// OverlappingConcat merges the final cycle of a with the first cycle
// of b by conjunction; both operands must be non-empty. Resulting
// length is len(a)+len(b)-1.
func OverlappingConcat(b *expr.Builder, a, bm Match) Match {
	if a.Empty() || bm.Empty() {
		panic("sequence: OverlappingConcat requires non-empty operands")
	}
	aLast := a.CondVector[len(a.CondVector)-1]
	head := make([]expr.Expr, len(a.CondVector)-1)
	copy(head, a.CondVector[:len(a.CondVector)-1])

	tail := make([]expr.Expr, len(bm.CondVector))
	copy(tail, bm.CondVector)
	tail[0] = b.And(aLast, tail[0])

	return Concat(Match{CondVector: head}, Match{CondVector: tail})
}

// Repeat yields n copies of m concatenated non-overlappingly; length
// n*len(m). Repeat(_, 0) yields the empty match regardless of m.
func Repeat(m Match, n int) Match {
	result := Match{CondVector: []expr.Expr{}}
	for i := 0; i < n; i++ {
		result = Concat(result, m)
	}
	return result
}
