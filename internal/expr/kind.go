// Package expr implements the shared expression AST described by the
// core's data model: immutable, structurally-shared nodes tagged by a
// kind, interned so that structural equality reduces to pointer equality.
package expr

// Kind tags every node in the expression graph. The set mirrors the
// fixed list of boolean connectives, linear-time operators, the CTL
// subset, and the SVA assertion vocabulary.
type Kind int

const (
	KindPredicate Kind = iota // opaque state formula, owned by the word-level layer
	KindBoolConst

	KindNot
	KindAnd
	KindOr
	KindImplies
	KindEq
	KindIf

	// Linear-time operators.
	KindX
	KindF
	KindG
	KindU
	KindR
	KindWeakU
	KindStrongR

	// CTL subset.
	KindAX
	KindAF
	KindAG
	KindEX
	KindEF
	KindEG
	KindEU

	// SVA property operators.
	KindSVAAlways
	KindSVAEventually
	KindSVASEventually
	KindSVARangedSEventually
	KindSVARangedAlways
	KindSVASAlways
	KindSVANextTime
	KindSVASNextTime
	KindSVAUntil
	KindSVASUntil
	KindSVAUntilWith
	KindSVASUntilWith
	KindSVAImplies
	KindSVAIff
	KindSVAOverlappedImplication
	KindSVANonOverlappedImplication
	KindSVAOverlappedFollowedBy
	KindSVANonOverlappedFollowedBy

	// SVA sequence operators (these describe the shape of a sequence,
	// not a property; they only ever appear as the operand of the
	// wrappers below or inside another sequence operator).
	KindSVASeqAnd
	KindSVASeqOr
	KindSVASeqConcatenation
	KindSVASeqRepetitionStar
	KindSVACycleDelay
	KindSVABoolean

	// Sequence-to-property wrappers.
	KindSVAStrong
	KindSVAWeak
	KindSVAImplicitStrong
	KindSVAImplicitWeak
)

var kindNames = map[Kind]string{
	KindPredicate:                    "predicate",
	KindBoolConst:                    "bool_const",
	KindNot:                          "not",
	KindAnd:                          "and",
	KindOr:                           "or",
	KindImplies:                      "implies",
	KindEq:                           "equal",
	KindIf:                           "if",
	KindX:                            "X",
	KindF:                            "F",
	KindG:                            "G",
	KindU:                            "U",
	KindR:                            "R",
	KindWeakU:                        "weak_U",
	KindStrongR:                      "strong_R",
	KindAX:                           "AX",
	KindAF:                           "AF",
	KindAG:                           "AG",
	KindEX:                           "EX",
	KindEF:                           "EF",
	KindEG:                           "EG",
	KindEU:                           "EU",
	KindSVAAlways:                    "sva_always",
	KindSVAEventually:                "sva_eventually",
	KindSVASEventually:               "sva_s_eventually",
	KindSVARangedSEventually:         "sva_ranged_s_eventually",
	KindSVARangedAlways:              "sva_ranged_always",
	KindSVASAlways:                   "sva_s_always",
	KindSVANextTime:                  "sva_nexttime",
	KindSVASNextTime:                 "sva_s_nexttime",
	KindSVAUntil:                     "sva_until",
	KindSVASUntil:                    "sva_s_until",
	KindSVAUntilWith:                 "sva_until_with",
	KindSVASUntilWith:                "sva_s_until_with",
	KindSVAImplies:                   "sva_implies",
	KindSVAIff:                       "sva_iff",
	KindSVAOverlappedImplication:     "sva_overlapped_implication",
	KindSVANonOverlappedImplication:  "sva_non_overlapped_implication",
	KindSVAOverlappedFollowedBy:      "sva_overlapped_followed_by",
	KindSVANonOverlappedFollowedBy:   "sva_nonoverlapped_followed_by",
	KindSVASeqAnd:                    "sva_and",
	KindSVASeqOr:                     "sva_or",
	KindSVASeqConcatenation:          "sva_sequence_concatenation",
	KindSVASeqRepetitionStar:         "sva_sequence_repetition_star",
	KindSVACycleDelay:                "sva_cycle_delay",
	KindSVABoolean:                   "sva_boolean",
	KindSVAStrong:                    "sva_strong",
	KindSVAWeak:                      "sva_weak",
	KindSVAImplicitStrong:            "sva_implicit_strong",
	KindSVAImplicitWeak:              "sva_implicit_weak",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// IsTemporal reports whether a kind carries time-dependent semantics,
// i.e. it is neither a plain state predicate nor a boolean connective
// over state predicates.
func (k Kind) IsTemporal() bool {
	switch k {
	case KindPredicate, KindBoolConst, KindNot, KindAnd, KindOr, KindImplies, KindEq, KindIf:
		return false
	default:
		return true
	}
}

// IsSVASequence reports whether a kind denotes a sequence shape rather
// than a property.
func (k Kind) IsSVASequence() bool {
	switch k {
	case KindSVASeqAnd, KindSVASeqOr, KindSVASeqConcatenation,
		KindSVASeqRepetitionStar, KindSVACycleDelay, KindSVABoolean:
		return true
	default:
		return false
	}
}

// IsSVASequenceWrapper reports whether a kind wraps a sequence into a
// property (sva_strong / sva_weak / implicit variants).
func (k Kind) IsSVASequenceWrapper() bool {
	switch k {
	case KindSVAStrong, KindSVAWeak, KindSVAImplicitStrong, KindSVAImplicitWeak:
		return true
	default:
		return false
	}
}
