// internal/screening/engine.go
package screening

import (
	"time"

	"github.com/benefitpath/screener/internal/types"
)

/*
 * Rule engine orchestration.
 *
 * Runs every active, effective rule's condition tree against one fact map
 * and collects raw hits with per-rule certainty.
 *
 * Failure isolation: a rule that fails compilation (unknown operator,
 * structurally invalid tree) is skipped and its id recorded in
 * FailedRuleIDs. One corrupt rule never aborts a screening, and a
 * malformed rule never counts as a match.
 *
 * Ordering: hits preserve the input rule order. The scorer imposes the
 * final ranking; the engine only guarantees stability for a fixed rule
 * list.
 */

// EngineResult carries raw hits plus the side-channel list of rules that
// could not be evaluated.
type EngineResult struct {
	Hits          []types.RawHit `json:"matches"`
	FailedRuleIDs []types.RuleID `json:"failedRuleIds"`
}

// EvaluateEligibility evaluates all rules against the fact map as of now.
// The store pre-filters active, jurisdiction-matched rules; the engine
// re-checks the active flag and effective window since callers may hand it
// an unfiltered list.
func EvaluateEligibility(rules []types.EligibilityRule, facts types.FactMap, now time.Time) EngineResult {
	result := EngineResult{
		Hits:          []types.RawHit{},
		FailedRuleIDs: []types.RuleID{},
	}

	for _, rule := range rules {
		if !rule.Active || !rule.EffectiveAt(now) {
			continue
		}

		compiled, err := CompileRule(rule)
		if err != nil {
			result.FailedRuleIDs = append(result.FailedRuleIDs, rule.RuleID)
			continue
		}

		if Evaluate(compiled.Root, facts) {
			result.Hits = append(result.Hits, types.RawHit{
				RuleID:      compiled.RuleID,
				ProgramID:   compiled.ProgramID,
				ProgramName: compiled.ProgramName,
				Certainty:   compiled.Certainty,
			})
		}
	}

	return result
}
