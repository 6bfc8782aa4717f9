package sequence

import "github.com/kroening-labs/mcheck/internal/expr"

// Matches expands a sequence expression into its finite set of match
// shapes, following the structural recursion of the sequence
// operator table. An empty return means "unsupported in this
// engine": unbounded repetition ([*n:$], [*]), unbounded delay, or an
// operator outside the supported set.
func Matches(b *expr.Builder, seq expr.Expr) []Match {
	switch seq.Kind() {
	case expr.KindSVABoolean:
		return []Match{{CondVector: []expr.Expr{seq.Op()}}}

	case expr.KindSVASeqConcatenation:
		lhs := Matches(b, seq.LHS())
		rhs := Matches(b, seq.RHS())
		if len(lhs) == 0 || len(rhs) == 0 {
			return nil
		}
		result := make([]Match, 0, len(lhs)*len(rhs))
		for _, ml := range lhs {
			for _, mr := range rhs {
				result = append(result, OverlappingConcat(b, ml, mr))
			}
		}
		return result

	case expr.KindSVASeqRepetitionStar:
		opMatches := Matches(b, seq.Op())
		if len(opMatches) == 0 {
			return nil
		}
		from, to, isRange, unbounded := seq.Range()
		if unbounded {
			// [*n:$] or [*]: unbounded repetition is not compiled.
			return nil
		}
		var result []Match
		if isRange {
			// [*n:m): n inclusive, m exclusive, per spec's table.
			for n := from; n < to; n++ {
				for _, m := range opMatches {
					result = append(result, Repeat(m, n))
				}
			}
		} else {
			// [*n]
			for _, m := range opMatches {
				result = append(result, Repeat(m, from))
			}
		}
		return result

	case expr.KindSVACycleDelay:
		opMatches := Matches(b, seq.Op())
		if len(opMatches) == 0 {
			return nil
		}
		from, to, isRange, unbounded := seq.Range()
		if !isRange {
			delay := TrueMatch(b, from)
			result := make([]Match, len(opMatches))
			for i, m := range opMatches {
				result[i] = Concat(delay, m)
			}
			return result
		}
		if unbounded {
			return nil // can't encode
		}
		var result []Match
		for i := from; i <= to; i++ {
			delay := TrueMatch(b, i)
			for _, m := range opMatches {
				result = append(result, Concat(delay, m))
			}
		}
		return result

	case expr.KindSVASeqAnd:
		lhs := Matches(b, seq.LHS())
		rhs := Matches(b, seq.RHS())
		if len(lhs) == 0 || len(rhs) == 0 {
			return nil
		}
		result := make([]Match, 0, len(lhs)*len(rhs))
		for _, ml := range lhs {
			for _, mr := range rhs {
				result = append(result, seqAnd(b, ml, mr))
			}
		}
		return result

	case expr.KindSVASeqOr:
		var result []Match
		for _, op := range seq.Ops() {
			opMatches := Matches(b, op)
			if len(opMatches) == 0 {
				return nil // any unsupported operand makes the whole union unsupported
			}
			result = append(result, opMatches...)
		}
		return result

	default:
		return nil // unsupported
	}
}

// seqAnd implements IEEE 1800-2017 16.9.5: both operands must match
// starting at the same cycle; the composite's length is the longer
// operand's, with the shorter one padded by implicit "true".
func seqAnd(b *expr.Builder, lhs, rhs Match) Match {
	n := len(lhs.CondVector)
	if len(rhs.CondVector) > n {
		n = len(rhs.CondVector)
	}
	cv := make([]expr.Expr, n)
	for i := 0; i < n; i++ {
		var conjuncts []expr.Expr
		if i < len(lhs.CondVector) {
			conjuncts = append(conjuncts, lhs.CondVector[i])
		}
		if i < len(rhs.CondVector) {
			conjuncts = append(conjuncts, rhs.CondVector[i])
		}
		cv[i] = b.And(conjuncts...)
	}
	return Match{CondVector: cv}
}
