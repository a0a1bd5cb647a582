// Package store implements the persistent rule store collaborator.
//
// The screening core never queries a database: this package hands it
// already-deserialized, already-filtered rule snapshots. Row-to-domain
// conversion happens here, including the base certainty clamp and the
// effective-window filter. A rule whose conditions column fails to
// deserialize is reported by id instead of aborting the snapshot load;
// one corrupt row never blocks a screening.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/benefitpath/screener/internal/core/db"
	"github.com/benefitpath/screener/internal/screening"
	"github.com/benefitpath/screener/internal/types"
)

// Store provides read and import access to eligibility and interaction rules.
type Store struct {
	queries *db.Queries
	sqldb   *sqlx.DB
}

// New creates a Store over an open database handle.
func New(database *sqlx.DB) (*Store, error) {
	if database == nil {
		return nil, fmt.Errorf("database cannot be nil")
	}
	queries, err := db.LoadQueries(database)
	if err != nil {
		return nil, fmt.Errorf("failed to load queries: %w", err)
	}
	return &Store{queries: queries, sqldb: database}, nil
}

// ruleRow mirrors the rules table.
type ruleRow struct {
	RuleID         string  `db:"rule_id"`
	ProgramID      string  `db:"program_id"`
	ProgramName    string  `db:"program_name"`
	Jurisdiction   string  `db:"jurisdiction"`
	Conditions     string  `db:"conditions"`
	BaseCertainty  float64 `db:"base_certainty"`
	EffectiveFrom  string  `db:"effective_from"`
	EffectiveUntil *string `db:"effective_until"`
	Active         int     `db:"active"`
	CreatedAt      string  `db:"created_at"`
}

// interactionRow mirrors the interaction_rules table.
type interactionRow struct {
	InteractionRuleID string `db:"interaction_rule_id"`
	ProgramIDs        string `db:"program_ids"`
	Severity          string `db:"severity"`
	Description       string `db:"description"`
	AffectedPrograms  string `db:"affected_programs"`
	Position          int    `db:"position"`
}

// LoadActiveRules returns the active, jurisdiction-matched, effective rules
// as of asOf, in stable created_at order. Rules whose stored condition tree
// or timestamps cannot be deserialized are skipped and reported in
// malformed; the caller folds them into the screening's failed rule ids.
// The returned slice is a fresh snapshot: no later store write mutates it.
func (s *Store) LoadActiveRules(ctx context.Context, jurisdiction string, asOf time.Time) (rules []types.EligibilityRule, malformed []types.RuleID, err error) {
	var rows []ruleRow
	if err := s.queries.Select(ctx, "list-active-rules", &rows, jurisdiction); err != nil {
		return nil, nil, fmt.Errorf("failed to query rules: %w", err)
	}

	rules = make([]types.EligibilityRule, 0, len(rows))
	malformed = []types.RuleID{}
	for _, row := range rows {
		rule, err := row.toDomain()
		if err != nil {
			malformed = append(malformed, types.RuleID(row.RuleID))
			continue
		}
		if !rule.EffectiveAt(asOf) {
			continue
		}
		rules = append(rules, rule)
	}
	return rules, malformed, nil
}

// toDomain converts a row to the domain rule, clamping certainty at
// ingestion so one corrupt definition cannot remove a valid program.
func (row ruleRow) toDomain() (types.EligibilityRule, error) {
	var conditions types.Condition
	if err := json.Unmarshal([]byte(row.Conditions), &conditions); err != nil {
		return types.EligibilityRule{}, err
	}

	effectiveFrom, err := time.Parse(time.RFC3339, row.EffectiveFrom)
	if err != nil {
		return types.EligibilityRule{}, err
	}

	var effectiveUntil *time.Time
	if row.EffectiveUntil != nil && *row.EffectiveUntil != "" {
		t, err := time.Parse(time.RFC3339, *row.EffectiveUntil)
		if err != nil {
			return types.EligibilityRule{}, err
		}
		effectiveUntil = &t
	}

	return types.EligibilityRule{
		RuleID:         types.RuleID(row.RuleID),
		ProgramID:      row.ProgramID,
		ProgramName:    row.ProgramName,
		Jurisdiction:   row.Jurisdiction,
		Conditions:     conditions,
		BaseCertainty:  screening.ClampCertainty(row.BaseCertainty),
		EffectiveFrom:  effectiveFrom,
		EffectiveUntil: effectiveUntil,
		Active:         row.Active != 0,
	}, nil
}

// LoadInteractionRules returns all interaction rules in definition order.
func (s *Store) LoadInteractionRules(ctx context.Context) ([]types.InteractionRule, error) {
	var rows []interactionRow
	if err := s.queries.Select(ctx, "list-interaction-rules", &rows); err != nil {
		return nil, fmt.Errorf("failed to query interaction rules: %w", err)
	}

	rules := make([]types.InteractionRule, 0, len(rows))
	for _, row := range rows {
		var programIDs, affected []string
		if err := json.Unmarshal([]byte(row.ProgramIDs), &programIDs); err != nil {
			return nil, fmt.Errorf("interaction rule %s: %w", row.InteractionRuleID, err)
		}
		if err := json.Unmarshal([]byte(row.AffectedPrograms), &affected); err != nil {
			return nil, fmt.Errorf("interaction rule %s: %w", row.InteractionRuleID, err)
		}
		rules = append(rules, types.InteractionRule{
			ID:               types.InteractionRuleID(row.InteractionRuleID),
			ProgramIDs:       programIDs,
			Severity:         types.Severity(row.Severity),
			Description:      row.Description,
			AffectedPrograms: affected,
		})
	}
	return rules, nil
}

// InsertRule persists one eligibility rule. Generates a rule id when the
// definition carries none (importer convenience).
func (s *Store) InsertRule(ctx context.Context, rule types.EligibilityRule) (types.RuleID, error) {
	if rule.RuleID == "" {
		rule.RuleID = types.NewRuleID()
	}

	conditions, err := json.Marshal(rule.Conditions)
	if err != nil {
		return "", fmt.Errorf("failed to encode conditions: %w", err)
	}

	var effectiveUntil *string
	if rule.EffectiveUntil != nil {
		ts := rule.EffectiveUntil.UTC().Format(time.RFC3339)
		effectiveUntil = &ts
	}

	active := 0
	if rule.Active {
		active = 1
	}

	_, err = s.queries.Exec(ctx, "insert-rule",
		string(rule.RuleID),
		rule.ProgramID,
		rule.ProgramName,
		rule.Jurisdiction,
		string(conditions),
		screening.ClampCertainty(rule.BaseCertainty),
		rule.EffectiveFrom.UTC().Format(time.RFC3339),
		effectiveUntil,
		active,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert rule: %w", err)
	}
	return rule.RuleID, nil
}

// InsertInteractionRule persists one interaction rule at the next position.
// Validates the two-program minimum and severity here: interaction rules
// have no per-rule isolation pass, so a bad one is rejected at import.
func (s *Store) InsertInteractionRule(ctx context.Context, rule types.InteractionRule) (types.InteractionRuleID, error) {
	if len(rule.ProgramIDs) < 2 {
		return "", types.ErrTooFewPrograms
	}
	if !types.KnownSeverity(rule.Severity) {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownSeverity, rule.Severity)
	}
	if rule.ID == "" {
		rule.ID = types.NewInteractionRuleID()
	}

	programIDs, err := json.Marshal(rule.ProgramIDs)
	if err != nil {
		return "", err
	}
	affected := rule.AffectedPrograms
	if affected == nil {
		affected = []string{}
	}
	affectedJSON, err := json.Marshal(affected)
	if err != nil {
		return "", err
	}

	var row struct {
		Position int `db:"position"`
	}
	if err := s.queries.Get(ctx, "max-interaction-position", &row); err != nil {
		return "", fmt.Errorf("failed to query interaction position: %w", err)
	}

	_, err = s.queries.Exec(ctx, "insert-interaction-rule",
		string(rule.ID),
		string(programIDs),
		string(rule.Severity),
		rule.Description,
		string(affectedJSON),
		row.Position+1,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert interaction rule: %w", err)
	}
	return rule.ID, nil
}

// ListRules returns every stored rule regardless of state, for the CLI.
// Malformed rows are returned with a zero condition tree rather than
// skipped: an operator listing rules needs to see the corrupt ones.
func (s *Store) ListRules(ctx context.Context) ([]types.EligibilityRule, error) {
	var rows []ruleRow
	if err := s.queries.Select(ctx, "list-rules", &rows); err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}

	rules := make([]types.EligibilityRule, 0, len(rows))
	for _, row := range rows {
		rule, err := row.toDomain()
		if err != nil {
			rule = types.EligibilityRule{
				RuleID:       types.RuleID(row.RuleID),
				ProgramID:    row.ProgramID,
				ProgramName:  row.ProgramName,
				Jurisdiction: row.Jurisdiction,
				Active:       row.Active != 0,
			}
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// CountRules returns the number of stored eligibility rules.
func (s *Store) CountRules(ctx context.Context) (int, error) {
	var count int
	if err := s.queries.Get(ctx, "count-rules", &count); err != nil {
		return 0, fmt.Errorf("failed to count rules: %w", err)
	}
	return count, nil
}
