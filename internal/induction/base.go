package induction

import (
	"github.com/sirupsen/logrus"

	"github.com/kroening-labs/mcheck/internal/decision"
	"github.com/kroening-labs/mcheck/internal/expr"
	"github.com/kroening-labs/mcheck/internal/obligation"
	"github.com/kroening-labs/mcheck/internal/property"
	"github.com/kroening-labs/mcheck/internal/trans"
)

// runBaseCase checks each still-open property by bounded model
// checking. The retrieved sources stop at "run bmc(k, ...)" without
// bmc.cpp's own body, so the incremental bound search below is this
// driver's own design: for each still-open property, grow the
// unwinding bound n from 1 to k one frame at a time, checking
// ¬obligations(normalized, 0, n) for satisfiability at each n. The
// first n that turns up SAT is exactly the minimal counterexample
// length (no model inspection needed, staying well inside the "no
// trace extraction" boundary); reaching n=k with every step UNSAT
// leaves the property open for the step case.
func runBaseCase(b *expr.Builder, k int, sys *trans.System, props []*property.Record, factory decision.Factory, log *logrus.Logger) error {
	log.WithField("k", k).Info("induction base")

	for _, p := range props {
		if p.IsSettled() {
			continue
		}

		for n := 1; n <= k; n++ {
			result, err := checkBound(b, n, sys, props, p, factory)
			if err != nil {
				return err
			}
			switch result {
			case decision.SAT:
				log.WithFields(logrus.Fields{"property": p.Name, "length": n}).Info("base case refuted")
				p.Status = property.StatusRefuted
				p.CounterexampleLength = n
			case decision.UNSAT:
				continue
			case decision.ERROR:
				p.MarkFailure("solver error in base case")
				return obligation.ErrSolverError
			}
			break
		}
	}
	return nil
}

// checkBound asserts the transition system unwound to n frames with
// the initial state, every assumed property's body across all n
// frames, and the negation of target's obligations; SAT means target
// is violated within n frames.
func checkBound(b *expr.Builder, n int, sys *trans.System, all []*property.Record, target *property.Record, factory decision.Factory) (decision.Result, error) {
	backend := factory()
	trans.Unwind(b, sys, backend, n, true)

	for _, a := range all {
		if a.Status != property.StatusAssumed {
			continue
		}
		body := a.Normalized.Op()
		for c := 0; c < n; c++ {
			backend.SetToTrue(trans.InstantiateProperty(b, body, c, n))
		}
	}

	obligations, err := obligation.Obligations(b, target.Normalized, 0, n)
	if err != nil {
		if isShapeError(err) {
			target.Status = property.StatusUnsupported
			return decision.UNSAT, nil
		}
		return decision.ERROR, err
	}

	handles := obligation.ToHandles(b, obligations, n, backend)
	backend.SetToFalse(b.And(handles...))

	return backend.DecProc(), nil
}

func isShapeError(err error) bool {
	_, ok := err.(*obligation.NNFFailureError)
	return ok
}
