package types

import "github.com/google/uuid"

// RuleID represents a UUIDv7 eligibility rule identifier.
// String alias enables type safety while maintaining JSON string serialization.
// UUIDv7 time-ordering ensures sequential IDs cluster in B-tree indexes.
type RuleID string

// InteractionRuleID represents a UUIDv7 interaction rule identifier.
type InteractionRuleID string

// NewRuleID generates a UUIDv7 rule identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRuleID() RuleID {
	return RuleID(uuid.Must(uuid.NewV7()).String())
}

// NewInteractionRuleID generates a UUIDv7 interaction rule identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewInteractionRuleID() InteractionRuleID {
	return InteractionRuleID(uuid.Must(uuid.NewV7()).String())
}

// ParseRuleID validates and converts a string to RuleID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the store.
func ParseRuleID(s string) (RuleID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", err
	}
	return RuleID(s), nil
}

// ParseInteractionRuleID validates and converts a string to InteractionRuleID.
func ParseInteractionRuleID(s string) (InteractionRuleID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", err
	}
	return InteractionRuleID(s), nil
}
