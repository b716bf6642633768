package temperament

import "errors"

var (
	// ErrConfig reports an invalid construction argument: a non-positive
	// division count or step size, a malformed ratio, or a tuning operation
	// applied to a pitch-class flavor that cannot support it.
	ErrConfig = errors.New("temperament: invalid configuration")

	// ErrDuplicateName reports an insert whose name is already claimed by a
	// different pitch class in the system.
	ErrDuplicateName = errors.New("temperament: name already in use")

	// ErrUnknownClass reports a lookup for a name no pitch class carries.
	ErrUnknownClass = errors.New("temperament: unknown pitch class")
)
