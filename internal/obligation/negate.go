package obligation

import "github.com/kroening-labs/mcheck/internal/expr"

// Negate is the obligation compiler's entry point onto the shared
// duality table: computing the dual of phi one level down, used by
// the `not` rewrite rule before falling back to sequence-wrapper
// match-point negation or an NNFFailure.
func Negate(b *expr.Builder, phi expr.Expr) (expr.Expr, bool) {
	return expr.Negate(b, phi)
}
