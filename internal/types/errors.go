package types

import "errors"

// Sentinel errors for screening operations.
var (
	// ErrUnknownOperator indicates a condition references an operator outside
	// the supported set. Detected at rule compilation; isolates the one rule.
	ErrUnknownOperator = errors.New("unknown comparison operator")

	// ErrMalformedCondition indicates a condition node is structurally
	// invalid (none of comparison/all/any/not, or a comparand of the wrong
	// shape for its operator).
	ErrMalformedCondition = errors.New("malformed condition node")

	// ErrInvalidFactValue indicates a fact value is not a string, number,
	// boolean, or flat array of scalars.
	ErrInvalidFactValue = errors.New("invalid fact value")

	// ErrUnknownSeverity indicates an interaction rule severity outside
	// blocking/reducing/informational.
	ErrUnknownSeverity = errors.New("unknown interaction severity")

	// ErrTooFewPrograms indicates an interaction rule with fewer than two
	// program ids; a single-program interaction is meaningless.
	ErrTooFewPrograms = errors.New("interaction rule needs at least two program ids")
)
