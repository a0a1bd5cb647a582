// Package types provides domain models shared across screener components.
//
// Zero-dependency design: types.go, conditions.go, rules.go and errors.go use
// only encoding/json so that embedding the screening core in another binary
// pulls in no transitive weight. ID utilities in ids.go import uuid but are
// isolated for selective inclusion.
package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind discriminates the closed fact value variant.
// Facts arrive from intake as strings, numbers, booleans, or string lists;
// a closed variant makes the coercion rules explicit instead of relying on
// runtime type switching over interface{} everywhere.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
	KindList
)

// Value is a single fact value: exactly one of the four kinds.
// The zero value is the empty string.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
	List []string
}

// StringValue wraps a string fact value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// NumberValue wraps a numeric fact value.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// BoolValue wraps a boolean fact value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// ListValue wraps a string-list fact value.
func ListValue(items ...string) Value { return Value{Kind: KindList, List: items} }

// Canonical renders the value as its canonical string form.
// Numbers use the shortest representation that round-trips (70 not 70.000000)
// so that a numeric fact and its string spelling compare equal after coercion.
func (v Value) Canonical() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindList:
		return strings.Join(v.List, ",")
	default:
		return v.Str
	}
}

// AsNumber converts the value to float64 for ordering comparisons.
// Numeric strings are parsed after whitespace trimming; booleans and lists
// are never numeric. Returns false when the value has no numeric reading.
func (v Value) AsNumber() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Equal compares two values. Same-kind values compare directly; mixed kinds
// fall back to canonical string comparison per the coercion contract.
func (v Value) Equal(other Value) bool {
	if v.Kind == other.Kind {
		switch v.Kind {
		case KindString:
			return v.Str == other.Str
		case KindNumber:
			return v.Num == other.Num
		case KindBool:
			return v.Bool == other.Bool
		case KindList:
			if len(v.List) != len(other.List) {
				return false
			}
			for i := range v.List {
				if v.List[i] != other.List[i] {
					return false
				}
			}
			return true
		}
	}
	return v.Canonical() == other.Canonical()
}

// MarshalJSON renders the value as its natural JSON scalar or array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON maps a JSON scalar or array onto the closed variant.
// Array elements are canonicalized to strings; nested structures are not
// valid fact values.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := valueFromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// valueFromAny converts a decoded JSON value to the Value variant.
func valueFromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case string:
		return StringValue(t), nil
	case float64:
		return NumberValue(t), nil
	case bool:
		return BoolValue(t), nil
	case []any:
		items := make([]string, 0, len(t))
		for _, elem := range t {
			ev, err := valueFromAny(elem)
			if err != nil || ev.Kind == KindList {
				return Value{}, ErrInvalidFactValue
			}
			items = append(items, ev.Canonical())
		}
		return Value{Kind: KindList, List: items}, nil
	default:
		return Value{}, ErrInvalidFactValue
	}
}

// FactMap holds the screener's answers as a flat fact name to value mapping.
// Built once per screening request; treated as immutable during evaluation.
type FactMap map[string]Value

// ParseFactMap decodes a flat JSON object into a FactMap.
// Rejects nested objects and null values; the intake layer owns flattening.
func ParseFactMap(data []byte) (FactMap, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	facts := make(FactMap, len(raw))
	for name, msg := range raw {
		var v Value
		if err := v.UnmarshalJSON(msg); err != nil {
			return nil, err
		}
		facts[name] = v
	}
	return facts, nil
}
