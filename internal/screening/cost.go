// internal/screening/cost.go
package screening

import "github.com/benefitpath/screener/internal/types"

/*
 * Cost model for condition evaluation ordering.
 *
 * Assigns each node an estimated evaluation cost so that compilation can
 * stable-sort All/Any children cheapest-first. Evaluating cheaper
 * comparisons first maximizes short-circuit benefit: for non-qualifying
 * screenings, an equal check (cost 5) running before an in check (cost 8)
 * ends the group sooner on average.
 *
 * Why stable sort: equal-cost children must keep their declaration order so
 * identical rule snapshots always evaluate identically.
 */

// Operator base costs. Equality is cheapest, numeric parsing next,
// membership scans most expensive.
const (
	costEqual    = 5
	costOrdering = 7
	costMember   = 8

	// Composite node overhead per child, dominated by recursion.
	costComposite = 1
)

// conditionCost computes the estimated cost of evaluating one node.
// Composite nodes cost the sum of their children; negation is free beyond
// its child.
func conditionCost(cond types.Condition) int {
	switch cond.Kind {
	case types.CondComparison:
		return operatorCost(cond.Operator)
	case types.CondAll, types.CondAny:
		total := costComposite
		for _, child := range cond.Children {
			total += conditionCost(child)
		}
		return total
	case types.CondNot:
		if cond.Child == nil {
			return costComposite
		}
		return costComposite + conditionCost(*cond.Child)
	default:
		return costComposite
	}
}

// operatorCost returns the base cost for a comparison operator.
func operatorCost(op types.Operator) int {
	switch op {
	case types.OpEqual, types.OpNotEqual:
		return costEqual
	case types.OpGreaterThan, types.OpGreaterThanOrEqual, types.OpLessThan, types.OpLessThanOrEqual:
		return costOrdering
	case types.OpIn, types.OpNotIn, types.OpContains:
		return costMember
	default:
		return costMember
	}
}
