// Package induction implements the k-induction driver: a base case, a
// step case, and the status reconciliation between them, following
// ebmc's k_induction.cpp.
package induction

import (
	"github.com/sirupsen/logrus"

	"github.com/kroening-labs/mcheck/internal/decision"
	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/obligation"
	"github.com/kroening-labs/mcheck/internal/property"
	"github.com/kroening-labs/mcheck/internal/trans"
)

// ResultSet is the entry point's return value: the same property
// records passed in, now reconciled.
type ResultSet struct {
	Properties []*property.Record
}

// Run implements k_induction(k, T, P, solver_factory) → ResultSet.
// log may be nil, in which case a disabled logger is used.
func Run(b *expr.Builder, k int, sys *trans.System, props []*property.Record, factory decision.Factory, log *logrus.Logger) (ResultSet, error) {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	if len(props) == 0 {
		return ResultSet{}, obligation.ErrNoProperties
	}

	// have_supported_property fast-fail: the shape check alone,
	// independent of status, run before anything else (supplemented
	// feature #6).
	anySupported := false
	for _, p := range props {
		if p.SupportsKInduction() {
			anySupported = true
			break
		}
	}
	if !anySupported {
		for _, p := range props {
			if p.Status != property.StatusAssumed && p.Status != property.StatusDisabled && p.Status != property.StatusProved {
				p.Status = property.StatusUnsupported
			}
		}
		return ResultSet{Properties: props}, obligation.ErrNoSupportedProperty
	}

	// Step 2: mark every non-disabled, non-proved property whose shape
	// k-induction cannot handle as unsupported. An assumed property of
	// such a shape is marked unsupported as well, so it is no longer
	// asserted as an assumption, and the fact is remembered for the
	// final reconciliation.
	assumptionUnsupported := false
	for _, p := range props {
		if p.SupportsKInduction() {
			continue
		}
		if p.Status == property.StatusAssumed {
			assumptionUnsupported = true
			p.Status = property.StatusUnsupported
			continue
		}
		if p.Status != property.StatusDisabled && p.Status != property.StatusProved {
			p.Status = property.StatusUnsupported
		}
	}

	if err := runBaseCase(b, k, sys, props, factory, log); err != nil {
		return ResultSet{}, err
	}

	if err := runStepCase(b, k, sys, props, factory, log); err != nil {
		return ResultSet{}, err
	}

	if assumptionUnsupported {
		for _, p := range props {
			if p.Status == property.StatusRefuted {
				log.WithField("property", p.Name).Info("demoting refuted to inconclusive: an assumption is unsupported")
				p.Status = property.StatusInconclusive
			}
		}
	}

	return ResultSet{Properties: props}, nil
}
