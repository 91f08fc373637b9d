package decode

import "errors"

var (
	// ErrUnexpectedEOF reports a buffer that ends before a marker's
	// declared fixed or length-prefixed payload is available.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")

	// ErrInvalidMarker reports the reserved byte 0xC1 where a marker
	// was expected.
	ErrInvalidMarker = errors.New("invalid marker")

	// ErrDepthExceeded reports container nesting beyond the configured
	// recursion limit.
	ErrDepthExceeded = errors.New("depth exceeded")

	// ErrTrailingData reports unconsumed bytes after a complete
	// top-level value.
	ErrTrailingData = errors.New("trailing data")

	// ErrInvalidString reports string payload bytes that are not valid
	// UTF-8.
	ErrInvalidString = errors.New("invalid string")
)
