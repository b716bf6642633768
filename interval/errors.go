package interval

import "errors"

var (
	// ErrBadInterval reports an interval name that does not parse or whose
	// quality cannot apply to its degree.
	ErrBadInterval = errors.New("interval: malformed interval name")

	// ErrNotation reports a notation a Namer cannot work over: not 12
	// divisions, not seven letters, or missing single-step accidentals.
	ErrNotation = errors.New("interval: unsupported notation")
)
