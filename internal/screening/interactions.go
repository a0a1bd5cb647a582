// internal/screening/interactions.go
package screening

import "github.com/benefitpath/screener/internal/types"

/*
 * Benefit interaction detection.
 *
 * A second, independent rule pass over the final ranked match list: an
 * interaction rule fires iff every one of its program ids is present in
 * the match set. Set containment makes the check order- and
 * duplicate-independent; shuffling the matches never changes which rules
 * fire.
 *
 * Runs strictly after dedup, never interleaved with it: an interaction
 * rule must see the final deduplicated program set, otherwise two rules
 * hitting the same program could be miscounted as two different programs.
 *
 * Results keep interaction-rule definition order. Severity is carried but
 * never used for ordering here; re-sorting warnings for display is the
 * caller's call.
 */

// DetectInteractions cross-checks matched programs against interaction
// rules. Matches are read-only; the result is built fresh per call.
func DetectInteractions(matches []types.ProgramMatch, rules []types.InteractionRule) []types.BenefitInteraction {
	names := make(map[string]string, len(matches))
	for _, m := range matches {
		names[m.ProgramID] = m.ProgramName
	}

	interactions := []types.BenefitInteraction{}
	for _, rule := range rules {
		// A one-program interaction is meaningless; skip it.
		if len(rule.ProgramIDs) < 2 {
			continue
		}
		if !allPresent(rule.ProgramIDs, names) {
			continue
		}

		programNames := make([]string, 0, len(rule.ProgramIDs))
		seen := make(map[string]struct{}, len(rule.ProgramIDs))
		for _, id := range rule.ProgramIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			programNames = append(programNames, names[id])
		}

		interactions = append(interactions, types.BenefitInteraction{
			InteractionRuleID: rule.ID,
			Severity:          rule.Severity,
			Description:       rule.Description,
			ProgramNames:      programNames,
		})
	}

	return interactions
}

// allPresent reports whether every id is a key of the match set.
func allPresent(ids []string, set map[string]string) bool {
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
