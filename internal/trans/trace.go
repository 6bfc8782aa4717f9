package trans

// Trace is a placeholder counterexample-trace type. Populating it
// requires model extraction from a concrete decision procedure, which
// is out of scope here; callers that need trace data must adapt a
// decision.Backend themselves.
type Trace struct {
	Length int
}
