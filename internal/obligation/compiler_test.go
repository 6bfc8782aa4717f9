package obligation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/trans"
)

func TestObligationsGUnionsEveryTimeframe(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")

	s, err := Obligations(b, b.G(p), 0, 3)
	require.NoError(t, err)

	for c := 0; c < 3; c++ {
		require.Contains(t, s.Map, c)
		require.Equal(t, trans.InstantiateProperty(b, p, c, 3).Id(), s.Map[c][0].Id())
	}
}

func TestObligationsXAtLastFrameIsVacuouslyTrue(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")
	const n = 4

	s, err := Obligations(b, b.X(p), n-1, n)
	require.NoError(t, err)

	_, conj := s.Conjunction(b)
	require.Equal(t, b.True().Id(), conj.Id())
}

func TestObligationsSVAEventuallyZeroZeroIsImmediate(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")
	const n = 2

	s, err := Obligations(b, b.SVAEventually(0, 0, p), 0, n)
	require.NoError(t, err)

	_, conj := s.Conjunction(b)
	want := trans.InstantiateProperty(b, p, 0, n)
	require.Equal(t, want.Id(), conj.Id())
}

func TestObligationsAFWithUnitBoundHasNoLassoObligations(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")

	s, err := Obligations(b, b.AF(p), 0, 1)
	require.NoError(t, err)
	require.Empty(t, s.Map, "with N=1 there is no k>t frame to close a lasso against")
}

func TestObligationsNotOfPredicateInstantiatesDirectly(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")
	const n = 3

	s, err := Obligations(b, b.Not(p), 1, n)
	require.NoError(t, err)

	want := trans.InstantiateProperty(b, b.Not(p), 1, n)
	require.Equal(t, want.Id(), s.Map[1][0].Id())
}

func TestObligationsNotEUReportsNNFFailure(t *testing.T) {
	b := expr.NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	_, err := Obligations(b, b.Not(b.EU(p, q)), 0, 3)
	require.Error(t, err)

	var nnfErr *NNFFailureError
	require.ErrorAs(t, err, &nnfErr)
	require.Equal(t, expr.KindEU, nnfErr.Op)
}

func TestObligationsImpliesRewritesToOrNot(t *testing.T) {
	b := expr.NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")
	const n = 2

	got, err := Obligations(b, b.Implies(p, q), 0, n)
	require.NoError(t, err)

	want, err := Obligations(b, b.Or(b.Not(p), q), 0, n)
	require.NoError(t, err)

	_, gotE := got.Conjunction(b)
	_, wantE := want.Conjunction(b)
	require.Equal(t, wantE.Id(), gotE.Id())
}

func TestObligationsAndMergesBothConjuncts(t *testing.T) {
	b := expr.NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")
	const n = 2

	s, err := Obligations(b, b.And(b.G(p), b.G(q)), 0, n)
	require.NoError(t, err)

	for c := 0; c < n; c++ {
		require.Len(t, s.Map[c], 2)
	}
}

func TestObligationsSVANonOverlappedImplicationSkipsUnreachableConsequent(t *testing.T) {
	b := expr.NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")
	const n = 1

	seq := b.SVABoolean(p)
	s, err := Obligations(b, b.SVANonOverlappedImplication(seq, q), 0, n)
	require.NoError(t, err)

	_, conj := s.Conjunction(b)
	require.Equal(t, b.True().Id(), conj.Id(), "a consequent starting past the bound is vacuously true")
}
