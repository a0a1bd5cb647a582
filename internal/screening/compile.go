// internal/screening/compile.go
package screening

import (
	"fmt"
	"sort"

	"github.com/benefitpath/screener/internal/types"
)

/*
 * Rule compilation and validation.
 *
 * Compiles types.EligibilityRule to CompiledRule with a validated,
 * cost-ordered condition tree and a clamped certainty.
 *
 * Compilation workflow:
 *   1. Validate the condition tree (operator set, comparand shapes, node
 *      structure)
 *   2. Stable-sort All/Any children by ascending cost
 *   3. Clamp base certainty into [0, 1]
 *
 * Why compile-time validation: the engine's failure-isolation contract
 * hinges on detecting a malformed rule before evaluation. Compilation is
 * the per-rule boundary where an unsupported operator or wrong-shape
 * comparand turns into a recorded failure instead of a thrown error or,
 * worse, a silent match.
 *
 * Why stable sort: equal-cost children must keep declaration order so that
 * identical inputs always evaluate identically.
 */

// CompiledRule is a validated rule ready for evaluation.
type CompiledRule struct {
	RuleID      types.RuleID
	ProgramID   string
	ProgramName string
	Certainty   float64 // clamped to [0, 1]
	Root        types.Condition
}

// CompileRule validates and pre-processes a rule for evaluation.
// Returns an error wrapping ErrUnknownOperator or ErrMalformedCondition
// when the condition tree is unusable; the engine isolates such rules.
func CompileRule(rule types.EligibilityRule) (*CompiledRule, error) {
	root, err := compileCondition(rule.Conditions)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", rule.RuleID, err)
	}

	return &CompiledRule{
		RuleID:      rule.RuleID,
		ProgramID:   rule.ProgramID,
		ProgramName: rule.ProgramName,
		Certainty:   ClampCertainty(rule.BaseCertainty),
		Root:        root,
	}, nil
}

// compileCondition validates one node and returns a cost-ordered copy.
func compileCondition(cond types.Condition) (types.Condition, error) {
	switch cond.Kind {
	case types.CondComparison:
		if err := validateComparison(cond); err != nil {
			return types.Condition{}, err
		}
		return cond, nil

	case types.CondAll, types.CondAny:
		children := make([]types.Condition, 0, len(cond.Children))
		for _, child := range cond.Children {
			cc, err := compileCondition(child)
			if err != nil {
				return types.Condition{}, err
			}
			children = append(children, cc)
		}
		// Cheapest-first, stable: equal-cost children keep declaration order.
		sort.SliceStable(children, func(i, j int) bool {
			return conditionCost(children[i]) < conditionCost(children[j])
		})
		return types.Condition{Kind: cond.Kind, Children: children}, nil

	case types.CondNot:
		if cond.Child == nil {
			return types.Condition{}, types.ErrMalformedCondition
		}
		cc, err := compileCondition(*cond.Child)
		if err != nil {
			return types.Condition{}, err
		}
		return types.Condition{Kind: types.CondNot, Child: &cc}, nil

	default:
		return types.Condition{}, types.ErrMalformedCondition
	}
}

// validateComparison checks the operator set and comparand shape.
// in/notIn require a list comparand; every other operator requires a
// scalar. A wrong-shape comparand is a defect in the rule definition, not
// in the screener's answers, so it malforms the rule rather than silently
// never matching.
func validateComparison(cond types.Condition) error {
	if !cond.Operator.Known() {
		return fmt.Errorf("%w: %q", types.ErrUnknownOperator, cond.Operator)
	}
	if cond.Fact == "" {
		return types.ErrMalformedCondition
	}
	isList := cond.Value.Kind == types.KindList
	switch cond.Operator {
	case types.OpIn, types.OpNotIn:
		if !isList {
			return fmt.Errorf("%w: %s comparand must be a list", types.ErrMalformedCondition, cond.Operator)
		}
	default:
		if isList {
			return fmt.Errorf("%w: %s comparand must be a scalar", types.ErrMalformedCondition, cond.Operator)
		}
	}
	return nil
}

// ClampCertainty pins a certainty into [0, 1].
// Out-of-range values come from corrupt rule definitions; clamping keeps an
// otherwise-valid program in the results instead of rejecting the rule.
func ClampCertainty(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
