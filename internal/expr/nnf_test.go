package expr

import "testing"

func TestNegateDeMorgan(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	dual, ok := Negate(b, b.And(p, q))
	if !ok {
		t.Fatal("And should have a dual")
	}
	want := b.Or(b.Not(p), b.Not(q))
	if dual.Id() != want.Id() {
		t.Errorf("got %s, want %s", dual, want)
	}
}

func TestNegateCTLDuals(t *testing.T) {
	b := NewBuilder()
	p := b.Predicate("p")

	cases := []struct {
		phi, want Expr
	}{
		{b.AG(p), b.EF(b.Not(p))},
		{b.EF(p), b.AG(b.Not(p))},
		{b.AF(p), b.EG(b.Not(p))},
		{b.EG(p), b.AF(b.Not(p))},
		{b.AX(p), b.EX(b.Not(p))},
	}
	for _, c := range cases {
		dual, ok := Negate(b, c.phi)
		if !ok {
			t.Errorf("%s: expected a dual", c.phi)
			continue
		}
		if dual.Id() != c.want.Id() {
			t.Errorf("%s: got %s, want %s", c.phi, dual, c.want)
		}
	}
}

func TestNegateWeakUStrongRAreDuals(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	dual, ok := Negate(b, b.WeakU(p, q))
	if !ok {
		t.Fatal("weak_U should have a dual")
	}
	want := b.StrongR(b.Not(p), b.Not(q))
	if dual.Id() != want.Id() {
		t.Errorf("got %s, want %s", dual, want)
	}
}

func TestNegateEUHasNoDual(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	if _, ok := Negate(b, b.EU(p, q)); ok {
		t.Error("EU has no syntactic dual in this grammar")
	}
}

func TestNegateSVAIffHasNoDual(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	if _, ok := Negate(b, b.SVAIff(p, q)); ok {
		t.Error("sva_iff has no single-step dual")
	}
}

func TestNegateSVARangedEventuallyAlwaysDuals(t *testing.T) {
	b := NewBuilder()
	p := b.Predicate("p")

	ev := b.SVAEventually(2, 5, p)
	dual, ok := Negate(b, ev)
	if !ok {
		t.Fatal("sva_eventually[2:5] should have a dual")
	}
	from, to, isRange, unbounded := dual.Range()
	if dual.Kind() != KindSVARangedAlways || from != 2 || to != 5 || !isRange || unbounded {
		t.Errorf("unexpected dual %s (%d %d %v %v)", dual, from, to, isRange, unbounded)
	}
}

func TestNegateUnboundedRangedAlwaysHasNoDual(t *testing.T) {
	b := NewBuilder()
	p := b.Predicate("p")

	always := b.SVARangedAlways(0, 0, true, p)
	if _, ok := Negate(b, always); ok {
		t.Error("an unbounded sva_ranged_always cannot dualize to a bounded sva_eventually")
	}
}

func TestToNNFPushesThroughAndOr(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	phi := b.Not(b.And(p, q))
	nnf, ok := ToNNF(b, phi)
	if !ok {
		t.Fatal("expected NNF conversion to succeed")
	}
	want := b.Or(b.Not(p), b.Not(q))
	if nnf.Id() != want.Id() {
		t.Errorf("got %s, want %s", nnf, want)
	}
}

func TestToNNFPushesThroughNestedCTL(t *testing.T) {
	b := NewBuilder()
	p := b.Predicate("p")

	phi := b.Not(b.AG(b.Not(p)))
	nnf, ok := ToNNF(b, phi)
	if !ok {
		t.Fatal("expected NNF conversion to succeed")
	}
	want := b.EF(p)
	if nnf.Id() != want.Id() {
		t.Errorf("got %s, want %s", nnf, want)
	}
}

func TestToNNFFailsOnNegatedEU(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	phi := b.Not(b.EU(p, q))
	_, ok := ToNNF(b, phi)
	if ok {
		t.Error("negated EU has no NNF in this grammar and should fail")
	}
}

func TestToNNFFailsOnNegatedSVAIff(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	phi := b.Not(b.SVAIff(p, q))
	_, ok := ToNNF(b, phi)
	if ok {
		t.Error("negated sva_iff has no NNF and should fail")
	}
}

func TestToNNFNegatedPredicateTerminates(t *testing.T) {
	b := NewBuilder()
	p := b.Predicate("p")

	phi := b.Not(p)
	nnf, ok := ToNNF(b, phi)
	if !ok {
		t.Fatal("negation of an atom is already NNF")
	}
	if nnf.Id() != phi.Id() {
		t.Errorf("got %s, want %s unchanged", nnf, phi)
	}
}

func TestToNNFLeavesAlreadyNNFUnchanged(t *testing.T) {
	b := NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")

	phi := b.AG(b.Or(p, b.Not(q)))
	nnf, ok := ToNNF(b, phi)
	if !ok {
		t.Fatal("expected NNF conversion to succeed")
	}
	if nnf.Id() != phi.Id() {
		t.Errorf("already-NNF formula should be unchanged: got %s, want %s", nnf, phi)
	}
}
