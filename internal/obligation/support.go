package obligation

import "github.com/kroening-labs/mcheck/internal/expr"

// Category classifies a property expression's top-level vocabulary,
// mirroring bmc_supports_property's LTL/CTL/SVA triage.
type Category int

const (
	CategoryLTL Category = iota
	CategoryCTL
	CategorySVA
	CategoryUnknown
)

func hasCTLOperator(e expr.Expr) bool {
	switch e.Kind() {
	case expr.KindAX, expr.KindAF, expr.KindAG, expr.KindEX, expr.KindEF, expr.KindEG, expr.KindEU:
		return true
	}
	for _, op := range e.Operands() {
		if hasCTLOperator(op) {
			return true
		}
	}
	return false
}

func hasSVAOperator(e expr.Expr) bool {
	if e.Kind() >= expr.KindSVAAlways && e.Kind() <= expr.KindSVAImplicitWeak {
		return true
	}
	for _, op := range e.Operands() {
		if hasSVAOperator(op) {
			return true
		}
	}
	return false
}

// Classify reports which category a top-level property expression
// falls into: CTL if it contains a CTL path-quantified operator, SVA
// if it contains an SVA-specific operator (and no CTL operator), LTL
// otherwise.
func Classify(e expr.Expr) Category {
	switch {
	case hasCTLOperator(e):
		return CategoryCTL
	case hasSVAOperator(e):
		return CategorySVA
	default:
		return CategoryLTL
	}
}

// SupportsCTL implements bmc_supports_CTL_property: the common
// ACTL∩LTL fragment (Maidl) of state predicates, conjunctions, and
// AX/AF/AG recursively. Any property with no CTL operator at all is
// trivially supported (it's really an LTL/SVA property).
func SupportsCTL(e expr.Expr) bool {
	if !hasCTLOperator(e) {
		return true
	}
	switch e.Kind() {
	case expr.KindAnd:
		for _, op := range e.Ops() {
			if !SupportsCTL(op) {
				return false
			}
		}
		return true
	case expr.KindAX, expr.KindAF, expr.KindAG:
		return SupportsCTL(e.Op())
	default:
		return false
	}
}

// SupportsProperty implements bmc_supports_property: LTL and SVA
// properties are always supported by the compiler itself (support or
// lack thereof shows up later, as an NNFFailure/UnboundedRange/etc.
// during compilation); CTL properties must additionally satisfy
// SupportsCTL.
func SupportsProperty(e expr.Expr) bool {
	switch Classify(e) {
	case CategoryCTL:
		return SupportsCTL(e)
	case CategoryLTL, CategorySVA:
		return true
	default:
		return false
	}
}

// SupportsKInduction implements k_induction.cpp's narrower
// "supported" predicate: a property is eligible for k-induction only
// if its shape is exactly AG phi / G phi / sva_always phi with a
// non-temporal phi.
func SupportsKInduction(e expr.Expr) bool {
	switch e.Kind() {
	case expr.KindAG, expr.KindG, expr.KindSVAAlways:
		return !e.Op().Kind().IsTemporal()
	default:
		return false
	}
}
