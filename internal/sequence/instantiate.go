package sequence

import (
	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/trans"
)

// Semantics selects how a sequence's matches are treated when the
// unwinding boundary is reached before a match can complete. Strong:
// a non-matching (truncated) suffix is a property failure. Weak: a
// non-matching suffix at the boundary is vacuously acceptable.
type Semantics int

const (
	Strong Semantics = iota
	Weak
)

// MatchPoint is a fully instantiated match: the timeframe at which it
// ends, and a single boolean expression (the per-cycle conditions
// instantiated at their respective frames and conjoined) that holds
// iff the sequence matched.
type MatchPoint struct {
	EndTime   int
	Condition expr.Expr
	// Empty marks a zero-cycle match ("no cycles consumed"); per the
	// empty-match design note, callers that would otherwise falsify an
	// obligation with a single-frame condition must skip these.
	Empty bool
	// Truncated reports whether the match shape was cut short by the
	// unwinding bound; only meaningful to callers that care, kept for
	// diagnostics.
	Truncated bool
}

// Instantiate expands seq into its match shapes and instantiates each
// one starting at frame `current` within a `noTimeframes`-frame
// unwinding. Empty-length shapes (zero cycles consumed) are kept in
// the result with Condition equal to "true" and EndTime == current-1;
// callers must skip them when they'd otherwise falsify an obligation
// with a zero-cycle match.
func Instantiate(b *expr.Builder, seq expr.Expr, semantics Semantics, current, noTimeframes int) []MatchPoint {
	shapes := Matches(b, seq)
	points := make([]MatchPoint, 0, len(shapes))

	for _, m := range shapes {
		if m.Empty() {
			points = append(points, MatchPoint{EndTime: current - 1, Condition: b.True(), Empty: true})
			continue
		}

		length := m.Length()
		endTime := current + length - 1

		if endTime >= noTimeframes {
			if semantics == Strong {
				// The match cannot complete within the bound: a strong
				// sequence cannot be confirmed, so this shape contributes
				// no match point.
				continue
			}
			// Weak: only the cycles up to the bound are known; the
			// unseen suffix is accepted vacuously.
			visible := noTimeframes - current
			if visible < 0 {
				visible = 0
			}
			points = append(points, MatchPoint{
				EndTime:   noTimeframes - 1,
				Condition: conjoinCycles(b, m.CondVector[:visible], current, noTimeframes),
				Truncated: true,
			})
			continue
		}

		points = append(points, MatchPoint{
			EndTime:   endTime,
			Condition: conjoinCycles(b, m.CondVector, current, noTimeframes),
		})
	}

	return points
}

func conjoinCycles(b *expr.Builder, condVector []expr.Expr, current, noTimeframes int) expr.Expr {
	conjuncts := make([]expr.Expr, len(condVector))
	for i, c := range condVector {
		conjuncts[i] = trans.InstantiateProperty(b, c, current+i, noTimeframes)
	}
	return b.And(conjuncts...)
}
