// internal/screening/operators.go
package screening

import "github.com/benefitpath/screener/internal/types"

/*
 * Operator comparison logic.
 *
 * Implements the 9 comparison operators over the closed fact value variant.
 * All comparisons are total: a type mismatch (ordering operator on a
 * non-numeric value, contains on a scalar fact) is a deterministic
 * non-match, never an error.
 *
 * Operators:
 *   - equal/notEqual: Same-kind direct equality, mixed kinds compare by
 *     canonical string (cost 5)
 *   - greaterThan/greaterThanOrEqual/lessThan/lessThanOrEqual: Numeric
 *     comparison only; numeric strings parse, booleans and lists never
 *     compare (cost 7)
 *   - in/notIn: Membership of the fact's canonical string in the rule's
 *     list comparand (cost 8)
 *   - contains: Membership of the rule's canonical comparand in the fact's
 *     list value (cost 8)
 *
 * Why function-based: 9 operators via switch statement cleaner than 9
 * interface implementations with minimal behavior variation.
 */

// compare applies the operator with the fact value on the left and the
// rule's comparand on the right. The caller has already resolved the fact;
// missing facts never reach this function.
func compare(op types.Operator, fact, comparand types.Value) bool {
	switch op {
	case types.OpEqual:
		return fact.Equal(comparand)
	case types.OpNotEqual:
		return !fact.Equal(comparand)
	case types.OpGreaterThan:
		cmp, ok := compareNumeric(fact, comparand)
		return ok && cmp > 0
	case types.OpGreaterThanOrEqual:
		cmp, ok := compareNumeric(fact, comparand)
		return ok && cmp >= 0
	case types.OpLessThan:
		cmp, ok := compareNumeric(fact, comparand)
		return ok && cmp < 0
	case types.OpLessThanOrEqual:
		cmp, ok := compareNumeric(fact, comparand)
		return ok && cmp <= 0
	case types.OpIn:
		return compareIn(fact, comparand)
	case types.OpNotIn:
		return comparand.Kind == types.KindList && !compareIn(fact, comparand)
	case types.OpContains:
		return compareContains(fact, comparand)
	default:
		return false
	}
}

// compareNumeric performs three-way numeric comparison (-1/0/1).
// Returns ok=false when either side has no numeric reading.
func compareNumeric(a, b types.Value) (int, bool) {
	na, oka := a.AsNumber()
	nb, okb := b.AsNumber()
	if !oka || !okb {
		return 0, false
	}
	switch {
	case na < nb:
		return -1, true
	case na > nb:
		return 1, true
	default:
		return 0, true
	}
}

// compareIn tests membership of the fact's canonical string in the rule's
// list comparand. Non-list comparands never match; compilation rejects them
// so this path only defends against hand-built trees.
func compareIn(fact, comparand types.Value) bool {
	if comparand.Kind != types.KindList {
		return false
	}
	needle := fact.Canonical()
	for _, item := range comparand.List {
		if item == needle {
			return true
		}
	}
	return false
}

// compareContains tests membership of the rule's canonical comparand in the
// fact's stored list. Scalar facts never contain anything.
func compareContains(fact, comparand types.Value) bool {
	if fact.Kind != types.KindList {
		return false
	}
	needle := comparand.Canonical()
	for _, item := range fact.List {
		if item == needle {
			return true
		}
	}
	return false
}
