// internal/types/conditions.go
package types

/*
 * Condition tree domain types.
 *
 * A condition is a closed sum of four node kinds: Comparison (leaf),
 * All (conjunction), Any (disjunction), Not (negation). Trees nest to
 * arbitrary depth; they are trees by construction (built from JSON, no
 * shared references), so no runtime cycle detection is needed.
 *
 * Wire format (rule store "conditions" column and importer files):
 *   {"fact": "disabilityRating", "operator": "greaterThanOrEqual", "value": 70}
 *   {"all": [ ... ]}
 *   {"any": [ ... ]}
 *   {"not": { ... }}
 *
 * Operator strings are carried verbatim through decoding; validation of the
 * operator set happens at rule compilation so that an unsupported operator
 * isolates one rule instead of failing the whole snapshot load.
 */

import "encoding/json"

// ConditionKind discriminates the condition node variant.
type ConditionKind int

const (
	CondComparison ConditionKind = iota
	CondAll
	CondAny
	CondNot
)

// Operator names a comparison operator. Stored as its wire string so that
// unknown operators survive decoding and are rejected at compile time.
type Operator string

const (
	OpEqual              Operator = "equal"
	OpNotEqual           Operator = "notEqual"
	OpGreaterThan        Operator = "greaterThan"
	OpGreaterThanOrEqual Operator = "greaterThanOrEqual"
	OpLessThan           Operator = "lessThan"
	OpLessThanOrEqual    Operator = "lessThanOrEqual"
	OpIn                 Operator = "in"
	OpNotIn              Operator = "notIn"
	OpContains           Operator = "contains"
)

// Known reports whether the operator belongs to the supported set.
func (op Operator) Known() bool {
	switch op {
	case OpEqual, OpNotEqual, OpGreaterThan, OpGreaterThanOrEqual,
		OpLessThan, OpLessThanOrEqual, OpIn, OpNotIn, OpContains:
		return true
	}
	return false
}

// Ordering reports whether the operator requires numeric operands.
func (op Operator) Ordering() bool {
	switch op {
	case OpGreaterThan, OpGreaterThanOrEqual, OpLessThan, OpLessThanOrEqual:
		return true
	}
	return false
}

// Condition is one node of a condition tree.
// Fact, Operator and Value are set for Comparison nodes; Children for
// All/Any; Child for Not. Exactly one shape is populated per Kind.
type Condition struct {
	Kind     ConditionKind
	Fact     string
	Operator Operator
	Value    Value
	Children []Condition
	Child    *Condition
}

// All builds a conjunction node. An empty conjunction evaluates true.
func All(children ...Condition) Condition {
	return Condition{Kind: CondAll, Children: children}
}

// Any builds a disjunction node. An empty disjunction evaluates false.
func Any(children ...Condition) Condition {
	return Condition{Kind: CondAny, Children: children}
}

// Not builds a negation node.
func Not(child Condition) Condition {
	return Condition{Kind: CondNot, Child: &child}
}

// Compare builds a comparison leaf.
func Compare(fact string, op Operator, value Value) Condition {
	return Condition{Kind: CondComparison, Fact: fact, Operator: op, Value: value}
}

// MarshalJSON renders the node in its wire shape.
func (c Condition) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CondAll:
		children := c.Children
		if children == nil {
			children = []Condition{}
		}
		return json.Marshal(map[string][]Condition{"all": children})
	case CondAny:
		children := c.Children
		if children == nil {
			children = []Condition{}
		}
		return json.Marshal(map[string][]Condition{"any": children})
	case CondNot:
		return json.Marshal(map[string]*Condition{"not": c.Child})
	default:
		return json.Marshal(struct {
			Fact     string   `json:"fact"`
			Operator Operator `json:"operator"`
			Value    Value    `json:"value"`
		}{c.Fact, c.Operator, c.Value})
	}
}

// UnmarshalJSON decodes a condition node, picking the variant by which key
// is present: "all", "any", "not", or a "fact" comparison. A node that is
// none of the four decodes to ErrMalformedCondition.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return ErrMalformedCondition
	}

	if raw, ok := probe["all"]; ok {
		var children []Condition
		if err := json.Unmarshal(raw, &children); err != nil {
			return ErrMalformedCondition
		}
		*c = Condition{Kind: CondAll, Children: children}
		return nil
	}
	if raw, ok := probe["any"]; ok {
		var children []Condition
		if err := json.Unmarshal(raw, &children); err != nil {
			return ErrMalformedCondition
		}
		*c = Condition{Kind: CondAny, Children: children}
		return nil
	}
	if raw, ok := probe["not"]; ok {
		var child Condition
		if err := json.Unmarshal(raw, &child); err != nil {
			return err
		}
		*c = Condition{Kind: CondNot, Child: &child}
		return nil
	}
	if _, ok := probe["fact"]; ok {
		var leaf struct {
			Fact     string   `json:"fact"`
			Operator Operator `json:"operator"`
			Value    Value    `json:"value"`
		}
		if err := json.Unmarshal(data, &leaf); err != nil {
			return ErrMalformedCondition
		}
		*c = Condition{Kind: CondComparison, Fact: leaf.Fact, Operator: leaf.Operator, Value: leaf.Value}
		return nil
	}

	return ErrMalformedCondition
}
