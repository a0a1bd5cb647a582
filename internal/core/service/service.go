// Package service wires the rule store, documentation catalog and
// screening core into one screening operation.
//
// Thin orchestration layer: load snapshot -> evaluate -> score -> detect.
// No business rules live here; the core packages own all decision logic.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/benefitpath/screener/internal/core/catalog"
	"github.com/benefitpath/screener/internal/core/store"
	"github.com/benefitpath/screener/internal/screening"
	"github.com/benefitpath/screener/internal/types"
)

// Result is one complete screening outcome.
type Result struct {
	Jurisdiction  string                     `json:"jurisdiction"`
	Matches       []types.ProgramMatch       `json:"matches"`
	Interactions  []types.BenefitInteraction `json:"interactions"`
	FailedRuleIDs []types.RuleID             `json:"failedRuleIds"`
	EvaluatedAt   time.Time                  `json:"evaluatedAt"`
}

// Screener runs benefit screenings against the rule store.
type Screener struct {
	store   *store.Store
	catalog *catalog.Catalog
	now     func() time.Time
}

// New creates a Screener with its collaborators.
func New(s *store.Store, c *catalog.Catalog) (*Screener, error) {
	if s == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if c == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	return &Screener{store: s, catalog: c, now: time.Now}, nil
}

// WithClock overrides the screening clock. Tests pin it for reproducible
// effective-window filtering and report timestamps.
func (s *Screener) WithClock(now func() time.Time) *Screener {
	s.now = now
	return s
}

// Screen evaluates one fact map against the jurisdiction's active rules.
//
// Pipeline: fact map -> rule engine -> raw hits -> confidence scorer ->
// ranked matches -> interaction detector -> warnings. Data flows strictly
// downward; each stage sees only its input. Rules the store or engine
// could not use are folded into FailedRuleIDs - a screening never fails
// outright because of one bad rule.
func (s *Screener) Screen(ctx context.Context, jurisdiction string, facts types.FactMap) (*Result, error) {
	now := s.now().UTC()
	cache := store.NewCache(s.store)

	rules, malformed, err := cache.ActiveRules(ctx, jurisdiction, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	interactionRules, err := cache.InteractionRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load interaction rules: %w", err)
	}

	engineResult := screening.EvaluateEligibility(rules, facts, now)
	matches := screening.ScoreAndRank(engineResult.Hits, s.catalog)
	interactions := screening.DetectInteractions(matches, interactionRules)

	failed := append([]types.RuleID{}, malformed...)
	failed = append(failed, engineResult.FailedRuleIDs...)

	return &Result{
		Jurisdiction:  jurisdiction,
		Matches:       matches,
		Interactions:  interactions,
		FailedRuleIDs: failed,
		EvaluatedAt:   now,
	}, nil
}
