// Package config is the flat struct bound directly from cobra flags,
// preferring a concrete struct over an interface or a DI container.
package config

// Config holds every CLI-settable option for a single mcheck run.
type Config struct {
	// Bound is the k-induction bound as given on the CLI. Whether it
	// was given at all is tracked by BoundSet, not by its value; the
	// caller resolves it through EffectiveBound before passing it down
	// to induction.Run.
	Bound int

	// BoundSet reports whether --bound was explicitly passed, so the
	// k=0 default-and-warn advisory can be distinguished from an
	// explicit --bound=0.
	BoundSet bool

	PropertyFile string
	JSON         bool
	Solver       string
}

// EffectiveBound resolves the "special case k=0" rule: when --bound
// was not supplied at all, default to k=1. Returns the resolved bound
// and whether the advisory default was applied.
func (c Config) EffectiveBound() (k int, defaulted bool) {
	if !c.BoundSet {
		return 1, true
	}
	return c.Bound, false
}
