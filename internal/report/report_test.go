package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/property"
)

func TestFromRecordsPreservesOrder(t *testing.T) {
	b := expr.NewBuilder()
	p := b.Predicate("p")

	r1 := property.NewRecord(b, "second", b.AG(p))
	r2 := property.NewRecord(b, "first", b.AG(p))

	entries := FromRecords([]*property.Record{r1, r2})
	if entries[0].Name != "second" || entries[1].Name != "first" {
		t.Errorf("FromRecords should preserve input order, got %v", entries)
	}
}

func TestWriteTextIncludesReasonAndLength(t *testing.T) {
	entries := []Entry{
		{Name: "proved_one", Status: "proved", Reason: "2-induction"},
		{Name: "refuted_one", Status: "refuted", CounterexampleLength: 3},
		{Name: "open_one", Status: "open"},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, entries); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "proved (2-induction)") {
		t.Errorf("missing reason in output: %s", out)
	}
	if !strings.Contains(out, "refuted (length 3)") {
		t.Errorf("missing counterexample length in output: %s", out)
	}
	if !strings.Contains(out, "open_one") || !strings.Contains(out, "open") {
		t.Errorf("missing bare status in output: %s", out)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	entries := []Entry{
		{Name: "p1", Status: "proved", Reason: "1-induction"},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, entries); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got []Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0] != entries[0] {
		t.Errorf("got %v, want %v", got, entries)
	}
}
