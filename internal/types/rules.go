// internal/types/rules.go
package types

/*
 * Domain types for eligibility screening.
 *
 * Provides EligibilityRule, RawHit, ProgramMatch, InteractionRule and
 * BenefitInteraction used by internal/screening. These types are wire-format
 * agnostic on the storage side - the rule store owns row-to-type conversion,
 * the importer owns file-to-type conversion.
 *
 * Lifecycle: rule values are read-only for the duration of one evaluation;
 * everything derived (hits, matches, interactions) is created fresh per
 * screening call and never retained.
 */

import "time"

// EligibilityRule is one declarative rule mapping a condition tree to a
// benefit program with a base certainty.
type EligibilityRule struct {
	RuleID         RuleID     `json:"ruleId"`
	ProgramID      string     `json:"programId"`
	ProgramName    string     `json:"programName"`
	Jurisdiction   string     `json:"jurisdiction"`
	Conditions     Condition  `json:"conditions"`
	BaseCertainty  float64    `json:"baseCertainty"`
	EffectiveFrom  time.Time  `json:"effectiveFrom"`
	EffectiveUntil *time.Time `json:"effectiveUntil,omitempty"`
	Active         bool       `json:"active"`
}

// EffectiveAt reports whether the rule is inside its effective window.
// A nil EffectiveUntil means no upper bound.
func (r EligibilityRule) EffectiveAt(at time.Time) bool {
	if at.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveUntil != nil && at.After(*r.EffectiveUntil) {
		return false
	}
	return true
}

// RawHit is one rule firing for a program, before dedup and ranking.
type RawHit struct {
	RuleID      RuleID  `json:"ruleId"`
	ProgramID   string  `json:"programId"`
	ProgramName string  `json:"programName"`
	Certainty   float64 `json:"certainty"`
}

// ConfidenceLevel is the coarse display bucket derived from a confidence score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ProgramMatch is the per-program screening result: exactly one exists per
// distinct program id in a result set.
type ProgramMatch struct {
	ProgramID            string          `json:"programId"`
	ProgramName          string          `json:"programName"`
	ConfidenceScore      float64         `json:"confidenceScore"`
	ConfidenceLevel      ConfidenceLevel `json:"confidenceLevel"`
	MatchedRuleIDs       []RuleID        `json:"matchedRuleIds"`
	RequiredDocuments    []string        `json:"requiredDocuments"`
	RecommendedDocuments []string        `json:"recommendedDocuments"`
}

// DocumentChecklist is a documentation catalog entry split by required flag.
type DocumentChecklist struct {
	Required    []string `json:"required"`
	Recommended []string `json:"recommended"`
}

// Severity classifies how strongly two benefit programs interact.
type Severity string

const (
	SeverityBlocking      Severity = "blocking"
	SeverityReducing      Severity = "reducing"
	SeverityInformational Severity = "informational"
)

// KnownSeverity reports whether s is one of the three severity levels.
func KnownSeverity(s Severity) bool {
	switch s {
	case SeverityBlocking, SeverityReducing, SeverityInformational:
		return true
	}
	return false
}

// InteractionRule declares that a set of programs, if all matched together,
// warrants a warning. ProgramIDs order is irrelevant; two or more required.
type InteractionRule struct {
	ID               InteractionRuleID `json:"id"`
	ProgramIDs       []string          `json:"programIds"`
	Severity         Severity          `json:"severity"`
	Description      string            `json:"description"`
	AffectedPrograms []string          `json:"affectedPrograms"`
}

// BenefitInteraction is one fired interaction warning.
type BenefitInteraction struct {
	InteractionRuleID InteractionRuleID `json:"interactionRuleId"`
	Severity          Severity          `json:"severity"`
	Description       string            `json:"description"`
	ProgramNames      []string          `json:"programNames"`
}
