// internal/screening/evaluate.go
package screening

import "github.com/benefitpath/screener/internal/types"

/*
 * Condition tree evaluation.
 *
 * Evaluate is a single pure recursive function over the closed condition
 * variant. It is total for well-formed input: missing facts, type
 * mismatches and unknown operators all evaluate to false rather than
 * raising, per the closed-world policy. Structural validation lives in
 * compile.go so that evaluation never has an error path.
 *
 * Short-circuit semantics: All stops at the first false child, Any stops
 * at the first true child. Conditions are side-effect free, so this is a
 * performance contract, not a correctness one; compilation cost-orders
 * children to maximize the benefit.
 */

// Evaluate checks the condition tree against the fact map.
// A Comparison whose fact is absent from the map evaluates false regardless
// of operator: an unanswered question never satisfies a condition.
func Evaluate(cond types.Condition, facts types.FactMap) bool {
	switch cond.Kind {
	case types.CondComparison:
		fact, ok := facts[cond.Fact]
		if !ok {
			return false
		}
		return compare(cond.Operator, fact, cond.Value)

	case types.CondAll:
		// Empty conjunction is vacuously true.
		for _, child := range cond.Children {
			if !Evaluate(child, facts) {
				return false
			}
		}
		return true

	case types.CondAny:
		// Empty disjunction is false.
		for _, child := range cond.Children {
			if Evaluate(child, facts) {
				return true
			}
		}
		return false

	case types.CondNot:
		if cond.Child == nil {
			return false
		}
		return !Evaluate(*cond.Child, facts)

	default:
		return false
	}
}
