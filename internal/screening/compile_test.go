// internal/screening/compile_test.go
package screening

import (
	"errors"
	"testing"
	"time"

	"github.com/benefitpath/screener/internal/types"
)

func validRule(conditions types.Condition) types.EligibilityRule {
	return types.EligibilityRule{
		RuleID:        "rule-001",
		ProgramID:     "va-disability-compensation",
		ProgramName:   "VA Disability Compensation",
		Jurisdiction:  "us-federal",
		Conditions:    conditions,
		BaseCertainty: 0.9,
		EffectiveFrom: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
}

func TestCompileRule_Valid(t *testing.T) {
	rule := validRule(types.All(
		types.Compare("hasServiceConnectedDisability", types.OpEqual, types.StringValue("yes")),
	))

	compiled, err := CompileRule(rule)
	if err != nil {
		t.Fatalf("CompileRule() error = %v, want nil", err)
	}
	if compiled.RuleID != "rule-001" || compiled.ProgramID != "va-disability-compensation" {
		t.Errorf("compiled = %+v", compiled)
	}
	if compiled.Certainty != 0.9 {
		t.Errorf("Certainty = %v, want 0.9", compiled.Certainty)
	}
}

func TestCompileRule_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		conditions types.Condition
		wantErr    error
	}{
		{
			name:       "unknown operator",
			conditions: types.Compare("a", "matches", types.StringValue("x")),
			wantErr:    types.ErrUnknownOperator,
		},
		{
			name:       "empty fact name",
			conditions: types.Compare("", types.OpEqual, types.StringValue("x")),
			wantErr:    types.ErrMalformedCondition,
		},
		{
			name:       "in with scalar comparand",
			conditions: types.Compare("a", types.OpIn, types.StringValue("x")),
			wantErr:    types.ErrMalformedCondition,
		},
		{
			name:       "notIn with scalar comparand",
			conditions: types.Compare("a", types.OpNotIn, types.NumberValue(1)),
			wantErr:    types.ErrMalformedCondition,
		},
		{
			name:       "equal with list comparand",
			conditions: types.Compare("a", types.OpEqual, types.ListValue("x")),
			wantErr:    types.ErrMalformedCondition,
		},
		{
			name:       "not without child",
			conditions: types.Condition{Kind: types.CondNot},
			wantErr:    types.ErrMalformedCondition,
		},
		{
			name: "malformed node buried in valid tree",
			conditions: types.All(
				types.Compare("a", types.OpEqual, types.StringValue("x")),
				types.Any(types.Compare("b", "regex", types.StringValue("y"))),
			),
			wantErr: types.ErrUnknownOperator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileRule(validRule(tt.conditions))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CompileRule() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompileRule_ClampsCertainty(t *testing.T) {
	tests := []struct {
		name      string
		certainty float64
		want      float64
	}{
		{name: "above range", certainty: 1.4, want: 1.0},
		{name: "below range", certainty: -0.2, want: 0.0},
		{name: "in range untouched", certainty: 0.85, want: 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validRule(types.All())
			rule.BaseCertainty = tt.certainty
			compiled, err := CompileRule(rule)
			if err != nil {
				t.Fatalf("CompileRule() error = %v", err)
			}
			if compiled.Certainty != tt.want {
				t.Errorf("Certainty = %v, want %v", compiled.Certainty, tt.want)
			}
		})
	}
}

// Compilation orders group children cheapest-first so evaluation
// short-circuits as early as possible.
func TestCompileRule_CostOrdersChildren(t *testing.T) {
	rule := validRule(types.All(
		types.Compare("programs", types.OpIn, types.ListValue("a", "b")), // cost 8
		types.Compare("rating", types.OpGreaterThan, types.NumberValue(50)), // cost 7
		types.Compare("state", types.OpEqual, types.StringValue("KY")),      // cost 5
	))

	compiled, err := CompileRule(rule)
	if err != nil {
		t.Fatalf("CompileRule() error = %v", err)
	}

	got := make([]types.Operator, 0, 3)
	for _, child := range compiled.Root.Children {
		got = append(got, child.Operator)
	}
	want := []types.Operator{types.OpEqual, types.OpGreaterThan, types.OpIn}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("child order = %v, want %v", got, want)
		}
	}
}

// Equal-cost children keep declaration order: identical snapshots must
// always evaluate identically.
func TestCompileRule_StableForEqualCost(t *testing.T) {
	rule := validRule(types.Any(
		types.Compare("first", types.OpEqual, types.StringValue("1")),
		types.Compare("second", types.OpEqual, types.StringValue("2")),
		types.Compare("third", types.OpEqual, types.StringValue("3")),
	))

	compiled, err := CompileRule(rule)
	if err != nil {
		t.Fatalf("CompileRule() error = %v", err)
	}

	wantFacts := []string{"first", "second", "third"}
	for i, child := range compiled.Root.Children {
		if child.Fact != wantFacts[i] {
			t.Fatalf("child %d = %s, want %s", i, child.Fact, wantFacts[i])
		}
	}
}
