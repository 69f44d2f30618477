package qtexcirq

import "errors"

// Sentinel errors returned by circuit construction, scheduling, and rendering.
// Wrap sites add the offending value; match with errors.Is.
var (
	// ErrValidation covers bad wire indices, duplicate wires, empty operand
	// lists, parameter arity mismatches, and initial-state arity mismatches.
	// All validation happens before any column is assigned; a circuit either
	// renders completely or not at all.
	ErrValidation = errors.New("invalid circuit")

	// ErrUnsupportedMode is returned for an unrecognized layout mode selector.
	ErrUnsupportedMode = errors.New("unsupported layout mode")
)
