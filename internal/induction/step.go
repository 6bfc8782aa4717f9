package induction

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kroening-labs/mcheck/internal/decision"
	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/obligation"
	"github.com/kroening-labs/mcheck/internal/property"
	"github.com/kroening-labs/mcheck/internal/trans"
)

// runStepCase reproduces induction_step's asymmetric indexing exactly:
// the unwinding (and the assumption assertions) spans k+1 frames, the
// target property's body is asserted over [0, k) instantiated within
// a k-frame unwinding (the second argument to instantiate is k, not
// k+1), and only the final, k-th frame is instantiated within the
// full k+1 unwinding and negated.
func runStepCase(b *expr.Builder, k int, sys *trans.System, props []*property.Record, factory decision.Factory, log *logrus.Logger) error {
	noTimeframes := k + 1
	log.WithField("no_timeframes", noTimeframes).Info("induction step")

	for _, p := range props {
		switch p.Status {
		case property.StatusDisabled, property.StatusFailure, property.StatusAssumed,
			property.StatusUnsupported, property.StatusProved, property.StatusRefuted:
			continue
		}

		backend := factory()
		trans.Unwind(b, sys, backend, noTimeframes, false)

		for _, a := range props {
			if a.Status != property.StatusAssumed {
				continue
			}
			body := a.Normalized.Op()
			for c := 0; c < noTimeframes; c++ {
				backend.SetToTrue(trans.InstantiateProperty(b, body, c, noTimeframes))
			}
		}

		body := p.Normalized.Op()
		for c := 0; c < noTimeframes-1; c++ {
			backend.SetToTrue(trans.InstantiateProperty(b, body, c, noTimeframes-1))
		}
		backend.SetToFalse(trans.InstantiateProperty(b, body, noTimeframes-1, noTimeframes))

		result := backend.DecProc()
		switch result {
		case decision.SAT:
			log.WithField("property", p.Name).Info("step case SAT: inconclusive")
			p.Status = property.StatusInconclusive
		case decision.UNSAT:
			technique := strconv.Itoa(noTimeframes-1) + "-induction"
			log.WithFields(logrus.Fields{"property": p.Name, "technique": technique}).Info("step case UNSAT: proved")
			p.Status = property.StatusProved
			p.Reason = technique
		default:
			p.MarkFailure("solver error in step case")
			return obligation.ErrSolverError
		}
	}
	return nil
}
