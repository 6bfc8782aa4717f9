package obligation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kroening-labs/mcheck/internal/expr"
)

type identityHandler struct{}

func (identityHandler) Handle(e expr.Expr) expr.Expr { return e }

func TestToHandlesDefaultsUnoccupiedSlotsToTrue(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")

	s := Single(1, p)
	handles := ToHandles(b, s, 3, identityHandler{})

	require.Len(t, handles, 3)
	require.Equal(t, b.True().Id(), handles[0].Id())
	require.Equal(t, p.Id(), handles[1].Id())
	require.Equal(t, b.True().Id(), handles[2].Id())
}

func TestToHandlesConjoinsMultipleObligationsAtOneSlot(t *testing.T) {
	b := expr.NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	s := NewSet()
	s.AddExpr(0, p)
	s.AddExpr(0, q)

	handles := ToHandles(b, s, 1, identityHandler{})
	require.Equal(t, b.And(p, q).Id(), handles[0].Id())
}

func TestToHandlesDropsOutOfRangeTimeframes(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")

	s := Single(5, p)
	handles := ToHandles(b, s, 2, identityHandler{})

	require.Len(t, handles, 2)
	for _, h := range handles {
		require.Equal(t, b.True().Id(), h.Id())
	}
}
