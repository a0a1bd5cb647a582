// internal/core/store/cache.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/benefitpath/screener/internal/types"
)

/*
 * Request-scoped rule snapshot cache.
 *
 * A screening may consult the same jurisdiction's rules more than once
 * (eligibility pass, explain pass); the cache memoizes loads so the store
 * is hit at most once per snapshot per request.
 *
 * Explicitly an object handed into the evaluation call, not module-level
 * mutable state: concurrent screenings each own their cache, so they stay
 * independently testable and share nothing. The snapshot a cache hands out
 * is immutable for the cache's lifetime even if the store is written to
 * concurrently.
 */

// snapshot is one memoized rule load.
type snapshot struct {
	rules     []types.EligibilityRule
	malformed []types.RuleID
}

// Cache memoizes rule store loads for the duration of one request.
type Cache struct {
	store *Store

	mu           sync.Mutex
	rules        map[string]snapshot // keyed by jurisdiction
	interactions []types.InteractionRule
	loadedInter  bool
}

// NewCache creates an empty cache over the store.
// Create one per screening request and discard it with the request.
func NewCache(s *Store) *Cache {
	return &Cache{store: s, rules: make(map[string]snapshot)}
}

// ActiveRules returns the memoized active-rule snapshot for the
// jurisdiction, loading it on first use. The asOf instant of the first
// load wins for the cache's lifetime; a request has exactly one "now".
func (c *Cache) ActiveRules(ctx context.Context, jurisdiction string, asOf time.Time) ([]types.EligibilityRule, []types.RuleID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap, ok := c.rules[jurisdiction]; ok {
		return snap.rules, snap.malformed, nil
	}

	rules, malformed, err := c.store.LoadActiveRules(ctx, jurisdiction, asOf)
	if err != nil {
		return nil, nil, err
	}
	c.rules[jurisdiction] = snapshot{rules: rules, malformed: malformed}
	return rules, malformed, nil
}

// InteractionRules returns the memoized interaction rule set, loading it
// on first use.
func (c *Cache) InteractionRules(ctx context.Context) ([]types.InteractionRule, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loadedInter {
		return c.interactions, nil
	}

	rules, err := c.store.LoadInteractionRules(ctx)
	if err != nil {
		return nil, err
	}
	c.interactions = rules
	c.loadedInter = true
	return rules, nil
}
