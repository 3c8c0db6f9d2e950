package validator

import "errors"

// Structural errors. Per-field validation failures are never reported through
// these; they are collected into a Result.
var (
	// ErrInvalidArgument is returned for malformed call-site input such as a
	// non-record data value or an empty separator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRuleDeclaration is returned when a field's rule declaration is
	// not a string, array, object or function.
	ErrInvalidRuleDeclaration = errors.New("invalid rule declaration")

	// ErrInvalidScheme is returned when a validation scheme cannot be parsed.
	ErrInvalidScheme = errors.New("invalid validation scheme")

	// ErrUnknownRule is returned when a named rule has no registered predicate.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrDuplicateRule is returned when registering a name that is already taken.
	ErrDuplicateRule = errors.New("validation rule already exists")

	// ErrInvalidPredicate is returned when registering a nil predicate.
	ErrInvalidPredicate = errors.New("validation rule must be a function")
)
