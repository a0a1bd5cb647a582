// internal/screening/score.go
package screening

import (
	"sort"
	"strings"

	"github.com/benefitpath/screener/internal/types"
)

/*
 * Confidence scoring and ranking.
 *
 * Converts raw hits into per-program matches:
 *   1. Dedup: group hits by program id; confidence is the maximum certainty
 *      in the group (a program is only as uncertain as its best-supporting
 *      rule); matchedRuleIds is the full sorted set of contributing rules
 *      for explainability, not scoring.
 *   2. Bucket: fixed thresholds map the continuous score to high/medium/low.
 *   3. Rank: confidence descending, then program name ascending
 *      (case-insensitive), then program id. The trailing id tiebreak keeps
 *      output byte-identical across runs even for identically named
 *      programs; determinism is a hard requirement.
 *   4. Enrich: split the catalog's document list by its required flag. A
 *      program with no catalog entry gets empty lists; many programs have
 *      no checklist yet.
 */

// Confidence level thresholds. Fixed constants, not per-rule configuration.
const (
	HighConfidenceThreshold   = 0.75
	MediumConfidenceThreshold = 0.4
)

// DocumentationCatalog looks up the document checklist for a program.
// Implemented by catalog.Catalog; tests supply small literal maps.
type DocumentationCatalog interface {
	Documentation(programID string) (types.DocumentChecklist, bool)
}

// ConfidenceLevelFor buckets a confidence score for display.
func ConfidenceLevelFor(score float64) types.ConfidenceLevel {
	switch {
	case score >= HighConfidenceThreshold:
		return types.ConfidenceHigh
	case score >= MediumConfidenceThreshold:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// ScoreAndRank deduplicates, scores, ranks and enriches raw hits.
// Output contains exactly one ProgramMatch per distinct program id.
// A nil catalog yields empty document lists throughout.
func ScoreAndRank(hits []types.RawHit, catalog DocumentationCatalog) []types.ProgramMatch {
	type group struct {
		name    string
		score   float64
		ruleIDs map[types.RuleID]struct{}
	}

	groups := make(map[string]*group, len(hits))
	for _, hit := range hits {
		certainty := ClampCertainty(hit.Certainty)
		g, ok := groups[hit.ProgramID]
		if !ok {
			g = &group{name: hit.ProgramName, score: certainty, ruleIDs: map[types.RuleID]struct{}{}}
			groups[hit.ProgramID] = g
		} else if certainty > g.score {
			// The best-supporting rule also names the program.
			g.score = certainty
			g.name = hit.ProgramName
		}
		g.ruleIDs[hit.RuleID] = struct{}{}
	}

	matches := make([]types.ProgramMatch, 0, len(groups))
	for programID, g := range groups {
		ruleIDs := make([]types.RuleID, 0, len(g.ruleIDs))
		for id := range g.ruleIDs {
			ruleIDs = append(ruleIDs, id)
		}
		sort.Slice(ruleIDs, func(i, j int) bool { return ruleIDs[i] < ruleIDs[j] })

		required, recommended := []string{}, []string{}
		if catalog != nil {
			if checklist, ok := catalog.Documentation(programID); ok {
				required = append(required, checklist.Required...)
				recommended = append(recommended, checklist.Recommended...)
			}
		}

		matches = append(matches, types.ProgramMatch{
			ProgramID:            programID,
			ProgramName:          g.name,
			ConfidenceScore:      g.score,
			ConfidenceLevel:      ConfidenceLevelFor(g.score),
			MatchedRuleIDs:       ruleIDs,
			RequiredDocuments:    required,
			RecommendedDocuments: recommended,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.ConfidenceScore != b.ConfidenceScore {
			return a.ConfidenceScore > b.ConfidenceScore
		}
		an, bn := strings.ToLower(a.ProgramName), strings.ToLower(b.ProgramName)
		if an != bn {
			return an < bn
		}
		return a.ProgramID < b.ProgramID
	})

	return matches
}
