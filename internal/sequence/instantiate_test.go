package sequence

import (
	"testing"

	"github.com/kroening-labs/mcheck/internal/expr"
)

func TestInstantiateWithinBound(t *testing.T) {
	b := expr.NewBuilder()
	p, q := b.Predicate("p"), b.Predicate("q")
	seq := b.SVASeqConcatenation(b.SVABoolean(p), b.SVABoolean(q))

	points := Instantiate(b, seq, Strong, 0, 5)
	if len(points) != 1 {
		t.Fatalf("expected one match point, got %d", len(points))
	}
	if points[0].Truncated {
		t.Error("a match well within the bound should not be marked truncated")
	}
	if points[0].EndTime != 0 {
		t.Errorf("p ##1 q starting at 0 should overlap onto end time 0, got %d", points[0].EndTime)
	}
}

func TestInstantiateStrongDropsTruncatedMatch(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")
	seq := b.SVASeqRepetitionStarFixed(4, b.SVABoolean(p))

	points := Instantiate(b, seq, Strong, 0, 2)
	if len(points) != 0 {
		t.Errorf("a strong sequence that cannot complete within the bound should contribute no match point, got %v", points)
	}
}

func TestInstantiateWeakAcceptsTruncatedMatch(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")
	seq := b.SVASeqRepetitionStarFixed(4, b.SVABoolean(p))

	points := Instantiate(b, seq, Weak, 0, 2)
	if len(points) != 1 {
		t.Fatalf("expected one truncated-but-accepted match point, got %d", len(points))
	}
	if !points[0].Truncated {
		t.Error("expected the weak match to be marked truncated")
	}
	if points[0].EndTime != 1 {
		t.Errorf("truncated weak match should end at the last visible frame, got %d", points[0].EndTime)
	}
}

func TestInstantiateEmptyMatchIsMarked(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")
	seq := b.SVASeqRepetitionStarFixed(0, b.SVABoolean(p))

	points := Instantiate(b, seq, Strong, 2, 5)
	if len(points) != 1 || !points[0].Empty {
		t.Fatalf("a zero-cycle repetition should yield a single Empty match point, got %v", points)
	}
	if points[0].EndTime != 1 {
		t.Errorf("an empty match starting at 2 should report EndTime 1 (current-1), got %d", points[0].EndTime)
	}
}
