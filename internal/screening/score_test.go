// internal/screening/score_test.go
package screening

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/benefitpath/screener/internal/types"
)

// mapCatalog is a literal in-memory documentation catalog for tests.
type mapCatalog map[string]types.DocumentChecklist

func (c mapCatalog) Documentation(programID string) (types.DocumentChecklist, bool) {
	checklist, ok := c[programID]
	return checklist, ok
}

func TestScoreAndRank_SingleHit(t *testing.T) {
	catalog := mapCatalog{
		"va-disability-compensation": {
			Required:    []string{"DD-214"},
			Recommended: []string{"Buddy statements"},
		},
	}
	hits := []types.RawHit{
		{RuleID: "rule-001", ProgramID: "va-disability-compensation", ProgramName: "VA Disability Compensation", Certainty: 0.9},
	}

	matches := ScoreAndRank(hits, catalog)
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(matches))
	}
	m := matches[0]
	if m.ConfidenceScore != 0.9 || m.ConfidenceLevel != types.ConfidenceHigh {
		t.Errorf("score/level = %v/%v, want 0.9/high", m.ConfidenceScore, m.ConfidenceLevel)
	}
	if len(m.RequiredDocuments) != 1 || m.RequiredDocuments[0] != "DD-214" {
		t.Errorf("RequiredDocuments = %v", m.RequiredDocuments)
	}
	if len(m.RecommendedDocuments) != 1 {
		t.Errorf("RecommendedDocuments = %v", m.RecommendedDocuments)
	}
}

// Two rules supporting the same program collapse into one match carrying
// the best certainty and both rule ids.
func TestScoreAndRank_DeduplicatesByProgram(t *testing.T) {
	hits := []types.RawHit{
		{RuleID: "rule-a", ProgramID: "snap-ky", ProgramName: "SNAP (Kentucky)", Certainty: 0.5},
		{RuleID: "rule-b", ProgramID: "snap-ky", ProgramName: "SNAP (Kentucky)", Certainty: 0.8},
	}

	matches := ScoreAndRank(hits, nil)
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(matches))
	}
	m := matches[0]
	if m.ConfidenceScore != 0.8 {
		t.Errorf("ConfidenceScore = %v, want 0.8 (max of group)", m.ConfidenceScore)
	}
	want := []types.RuleID{"rule-a", "rule-b"}
	if !reflect.DeepEqual(m.MatchedRuleIDs, want) {
		t.Errorf("MatchedRuleIDs = %v, want %v", m.MatchedRuleIDs, want)
	}
}

func TestScoreAndRank_ConfidenceLevels(t *testing.T) {
	tests := []struct {
		score float64
		want  types.ConfidenceLevel
	}{
		{score: 1.0, want: types.ConfidenceHigh},
		{score: 0.75, want: types.ConfidenceHigh},
		{score: 0.74, want: types.ConfidenceMedium},
		{score: 0.4, want: types.ConfidenceMedium},
		{score: 0.39, want: types.ConfidenceLow},
		{score: 0.0, want: types.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f", tt.score), func(t *testing.T) {
			if got := ConfidenceLevelFor(tt.score); got != tt.want {
				t.Errorf("ConfidenceLevelFor(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

// A corrupt certainty above 1 clamps to 1.0 and stays high confidence.
func TestScoreAndRank_ClampsCorruptCertainty(t *testing.T) {
	hits := []types.RawHit{
		{RuleID: "rule-x", ProgramID: "prog", ProgramName: "Program", Certainty: 1.4},
	}
	matches := ScoreAndRank(hits, nil)
	if matches[0].ConfidenceScore != 1.0 {
		t.Errorf("ConfidenceScore = %v, want 1.0", matches[0].ConfidenceScore)
	}
	if matches[0].ConfidenceLevel != types.ConfidenceHigh {
		t.Errorf("ConfidenceLevel = %v, want high", matches[0].ConfidenceLevel)
	}
}

func TestScoreAndRank_Ranking(t *testing.T) {
	hits := []types.RawHit{
		{RuleID: "r1", ProgramID: "p-low", ProgramName: "Zeta Aid", Certainty: 0.3},
		{RuleID: "r2", ProgramID: "p-tie-b", ProgramName: "beta Grant", Certainty: 0.6},
		{RuleID: "r3", ProgramID: "p-high", ProgramName: "Mid Help", Certainty: 0.9},
		{RuleID: "r4", ProgramID: "p-tie-a", ProgramName: "Alpha Grant", Certainty: 0.6},
	}

	matches := ScoreAndRank(hits, nil)
	var order []string
	for _, m := range matches {
		order = append(order, m.ProgramID)
	}
	// Score descending; 0.6 tie broken by name ascending case-insensitive.
	want := []string{"p-high", "p-tie-a", "p-tie-b", "p-low"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("ranking = %v, want %v", order, want)
	}
}

func TestScoreAndRank_UnknownProgramEmptyDocuments(t *testing.T) {
	hits := []types.RawHit{
		{RuleID: "r1", ProgramID: "no-checklist-yet", ProgramName: "New Program", Certainty: 0.5},
	}
	matches := ScoreAndRank(hits, mapCatalog{})
	m := matches[0]
	if m.RequiredDocuments == nil || m.RecommendedDocuments == nil {
		t.Fatal("document lists must be non-nil")
	}
	if len(m.RequiredDocuments) != 0 || len(m.RecommendedDocuments) != 0 {
		t.Errorf("documents = %v/%v, want empty", m.RequiredDocuments, m.RecommendedDocuments)
	}
}

// genHits builds arbitrary hit sets from integer seeds: program from a
// small pool so duplicates are common, certainty stepped across the
// confidence buckets.
func genHits() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 999)).Map(func(seeds []int) []types.RawHit {
		hits := make([]types.RawHit, len(seeds))
		for i, seed := range seeds {
			program := seed % 7
			hits[i] = types.RawHit{
				RuleID:      types.RuleID(fmt.Sprintf("rule-%03d", i)),
				ProgramID:   fmt.Sprintf("prog-%d", program),
				ProgramName: fmt.Sprintf("Program %d", program),
				Certainty:   float64(seed%11) / 10.0,
			}
		}
		return hits
	})
}

// Property: at most one match per program id, for any hit set.
func TestScoreAndRank_PropertyDedupInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("one match per program id", prop.ForAll(
		func(hits []types.RawHit) bool {
			matches := ScoreAndRank(hits, nil)
			seen := make(map[string]bool)
			for _, m := range matches {
				if seen[m.ProgramID] {
					return false
				}
				seen[m.ProgramID] = true
			}
			return true
		},
		genHits(),
	))

	properties.TestingRun(t)
}

// Property: output sorted by score descending, name ascending on ties.
func TestScoreAndRank_PropertyRankingInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("adjacent pairs are ordered", prop.ForAll(
		func(hits []types.RawHit) bool {
			matches := ScoreAndRank(hits, nil)
			for i := 1; i < len(matches); i++ {
				a, b := matches[i-1], matches[i]
				if a.ConfidenceScore < b.ConfidenceScore {
					return false
				}
				if a.ConfidenceScore == b.ConfidenceScore && a.ProgramName > b.ProgramName {
					return false
				}
			}
			return true
		},
		genHits(),
	))

	properties.TestingRun(t)
}

// Property: scoring twice on identical input yields identical output,
// independent of hit order.
func TestScoreAndRank_PropertyIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("deterministic and order-independent", prop.ForAll(
		func(hits []types.RawHit, rotate int) bool {
			first := ScoreAndRank(hits, nil)
			second := ScoreAndRank(hits, nil)
			if !reflect.DeepEqual(first, second) {
				return false
			}
			if len(hits) == 0 {
				return true
			}
			// Rotated input must produce the same ranked output.
			k := rotate % len(hits)
			rotated := append(append([]types.RawHit{}, hits[k:]...), hits[:k]...)
			third := ScoreAndRank(rotated, nil)
			return reflect.DeepEqual(first, third)
		},
		genHits(),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
