package compactjson

import "errors"

// Sentinel errors returned by the formatter. Wrap sites add detail; callers
// match with errors.Is.
var (
	// ErrInvalidOptions is returned when an Options field is out of range.
	// Validation happens before any output is produced, so a failed call
	// never emits partial text.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrTooDeep is returned when the value tree nests deeper than
	// Options.MaxDepth. This is the guard against cyclic or pathologically
	// deep structures.
	ErrTooDeep = errors.New("structure exceeds maximum depth")

	// ErrUnsupportedValue is returned for values with no JSON text form,
	// such as NaN or Infinity numbers.
	ErrUnsupportedValue = errors.New("unsupported value")
)
