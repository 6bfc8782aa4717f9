package obligation

import "github.com/kroening-labs/mcheck/internal/expr"

// Handler is the slice of the decision-procedure collaborator that
// ToHandles needs: turning a boolean expression into an internalized
// handle suitable for later model extraction. internal/decision.Backend
// satisfies this.
type Handler interface {
	Handle(expr.Expr) expr.Expr
}

// ToHandles implements property.cpp's final property(...) step:
// conjoin the obligations at each occupied timeframe, hand the result
// through the solver's handle constructor, and place it into slot t_i
// of a length-noTimeframes vector initialized with true. This is the
// per-frame "property holds" handle list the induction driver asserts
// against.
func ToHandles(b *expr.Builder, s Set, noTimeframes int, h Handler) []expr.Expr {
	out := make([]expr.Expr, noTimeframes)
	for i := range out {
		out[i] = b.True()
	}
	for t, exprs := range s.Map {
		if t < 0 || t >= noTimeframes {
			continue
		}
		out[t] = h.Handle(b.And(exprs...))
	}
	return out
}
