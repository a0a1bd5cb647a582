package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benefitpath/screener/internal/types"
)

// The snapshot a cache hands out must not change when the store is written
// to after the first load.
func TestCache_SnapshotIsolation(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.InsertRule(ctx, storeRule("ky", "prog-a", 0.5, true))
	require.NoError(t, err)

	cache := NewCache(s)
	first, _, err := cache.ActiveRules(ctx, "ky", asOf)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Write after the snapshot was taken.
	_, err = s.InsertRule(ctx, storeRule("ky", "prog-b", 0.5, true))
	require.NoError(t, err)

	second, _, err := cache.ActiveRules(ctx, "ky", asOf)
	require.NoError(t, err)
	assert.Len(t, second, 1, "memoized snapshot must not see later writes")

	// A fresh cache sees the new rule.
	fresh, _, err := NewCache(s).ActiveRules(ctx, "ky", asOf)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestCache_PerJurisdiction(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	asOf := time.Now().UTC()

	_, err := s.InsertRule(ctx, storeRule("ky", "prog-ky", 0.5, true))
	require.NoError(t, err)
	_, err = s.InsertRule(ctx, storeRule("oh", "prog-oh", 0.5, true))
	require.NoError(t, err)

	cache := NewCache(s)
	ky, _, err := cache.ActiveRules(ctx, "ky", asOf)
	require.NoError(t, err)
	oh, _, err := cache.ActiveRules(ctx, "oh", asOf)
	require.NoError(t, err)

	require.Len(t, ky, 1)
	require.Len(t, oh, 1)
	assert.Equal(t, "prog-ky", ky[0].ProgramID)
	assert.Equal(t, "prog-oh", oh[0].ProgramID)
}

func TestCache_InteractionRulesMemoized(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.InsertInteractionRule(ctx, types.InteractionRule{
		ProgramIDs: []string{"a", "b"},
		Severity:   types.SeverityInformational,
	})
	require.NoError(t, err)

	cache := NewCache(s)
	first, err := cache.InteractionRules(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = s.InsertInteractionRule(ctx, types.InteractionRule{
		ProgramIDs: []string{"c", "d"},
		Severity:   types.SeverityInformational,
	})
	require.NoError(t, err)

	second, err := cache.InteractionRules(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 1, "memoized interaction set must not see later writes")
}
