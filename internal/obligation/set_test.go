package obligation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kroening-labs/mcheck/internal/expr"
)

func TestSetAddMergesPerKey(t *testing.T) {
	b := expr.NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	s := Single(0, p)
	s.Add(Single(0, q))
	s.Add(Single(1, q))

	require.Len(t, s.Map[0], 2)
	require.Len(t, s.Map[1], 1)
}

func TestSetConjunctionPicksLatestTimeframe(t *testing.T) {
	b := expr.NewBuilder()
	p, q, r := b.Predicate("p"), b.Predicate("q"), b.Predicate("r")

	s := NewSet()
	s.AddExpr(0, p)
	s.AddExpr(3, q)
	s.AddExpr(1, r)

	latest, conj := s.Conjunction(b)
	require.Equal(t, 3, latest)
	require.True(t, conj.Kind() == expr.KindAnd)
}

func TestSetConjunctionOfEmptySetIsZeroAndTrue(t *testing.T) {
	b := expr.NewBuilder()
	s := NewSet()
	latest, conj := s.Conjunction(b)
	require.Equal(t, 0, latest)
	require.Equal(t, b.True().Id(), conj.Id())
}
