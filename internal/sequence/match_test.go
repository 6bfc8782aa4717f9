package sequence

import (
	"testing"

	"github.com/kroening-labs/mcheck/internal/expr"
)

func TestConcatLength(t *testing.T) {
	b := expr.NewBuilder()
	a := Match{CondVector: []expr.Expr{b.Predicate("p"), b.Predicate("q")}}
	bm := Match{CondVector: []expr.Expr{b.Predicate("r")}}

	got := Concat(a, bm)
	if got.Length() != a.Length()+bm.Length() {
		t.Errorf("Concat length = %d, want %d", got.Length(), a.Length()+bm.Length())
	}
}

func TestOverlappingConcatLength(t *testing.T) {
	b := expr.NewBuilder()
	a := Match{CondVector: []expr.Expr{b.Predicate("p"), b.Predicate("q")}}
	bm := Match{CondVector: []expr.Expr{b.Predicate("r"), b.Predicate("s")}}

	got := OverlappingConcat(b, a, bm)
	want := a.Length() + bm.Length() - 1
	if got.Length() != want {
		t.Errorf("OverlappingConcat length = %d, want %d", got.Length(), want)
	}
	if got.CondVector[1].Id() != b.And(b.Predicate("q"), b.Predicate("r")).Id() {
		t.Error("the shared cycle should conjoin the last condition of a with the first of b")
	}
}

func TestOverlappingConcatPanicsOnEmpty(t *testing.T) {
	b := expr.NewBuilder()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on an empty operand")
		}
	}()
	OverlappingConcat(b, Match{}, Match{CondVector: []expr.Expr{b.Predicate("p")}})
}

func TestRepeatZeroIsEmpty(t *testing.T) {
	b := expr.NewBuilder()
	m := Match{CondVector: []expr.Expr{b.Predicate("p")}}
	got := Repeat(m, 0)
	if !got.Empty() {
		t.Error("Repeat(m, 0) should be empty regardless of m")
	}
}

func TestRepeatLength(t *testing.T) {
	b := expr.NewBuilder()
	m := Match{CondVector: []expr.Expr{b.Predicate("p"), b.Predicate("q")}}
	got := Repeat(m, 3)
	if got.Length() != 3*m.Length() {
		t.Errorf("Repeat length = %d, want %d", got.Length(), 3*m.Length())
	}
}
