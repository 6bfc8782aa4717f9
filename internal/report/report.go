// Package report formats a completed induction.ResultSet for display:
// a minimal text table and a JSON encoding, deliberately scoped down
// since full counterexample trace extraction is out of scope (see
// internal/trans.Trace).
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kroening-labs/mcheck/internal/property"
)

// Entry is the flattened, serializable view of a single property
// record.
type Entry struct {
	Name                 string `json:"name"`
	Status               string `json:"status"`
	Reason               string `json:"reason,omitempty"`
	CounterexampleLength int    `json:"counterexample_length,omitempty"`
}

// FromRecords flattens property records into report entries,
// preserving their original order.
func FromRecords(records []*property.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Name:                 r.Name,
			Status:               r.Status.String(),
			Reason:               r.Reason,
			CounterexampleLength: r.CounterexampleLength,
		}
	}
	return entries
}

// WriteText writes a fixed-width, one-line-per-property text report.
func WriteText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-32s %s\n", e.Name, statusLine(e)); err != nil {
			return err
		}
	}
	return nil
}

func statusLine(e Entry) string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%s (%s)", e.Status, e.Reason)
	case e.CounterexampleLength > 0:
		return fmt.Sprintf("%s (length %d)", e.Status, e.CounterexampleLength)
	default:
		return e.Status
	}
}

// WriteJSON writes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
