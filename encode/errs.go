package encode

import "errors"

var (
	// ErrValueOutOfRange reports a payload that does not fit the width
	// its variant demands, e.g. 16 values under a FixArray marker or a
	// length beyond a prefix width's capacity.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInconsistentMarker reports a stored marker byte that
	// disagrees with the marker implied by the node's variant and
	// payload.
	ErrInconsistentMarker = errors.New("inconsistent marker")

	// ErrInvalidString reports a string payload that is not valid
	// UTF-8.
	ErrInvalidString = errors.New("invalid string")
)
