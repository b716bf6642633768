package notation

import "errors"

var (
	// ErrConfig indicates a malformed or self-contradictory Notation setup.
	// It is returned by constructors only and is not recoverable.
	ErrConfig = errors.New("notation: invalid configuration")

	// ErrSyntax indicates a note string that does not match the compiled
	// grammar or violates the simple-accidental constraint. Always
	// caller-recoverable; surface it as a user input error.
	ErrSyntax = errors.New("notation: invalid note syntax")

	// ErrDomain indicates note and accidental value domains that cannot be
	// reconciled during combination. It can only arise from an inconsistent
	// configuration table.
	ErrDomain = errors.New("notation: irreconcilable value domains")

	// ErrNotFound indicates the reverse-spelling search exhausted without a
	// match. A normal outcome for values outside the representable
	// alphabet, not an exceptional condition.
	ErrNotFound = errors.New("notation: no spelling found")
)
