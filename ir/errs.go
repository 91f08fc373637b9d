package ir

import "errors"

var (
	// ErrMalformedDocument reports a document that does not follow the
	// three-field entry schema: missing or mistyped fields, an unknown
	// variant name, or a marker inconsistent with the declared variant.
	ErrMalformedDocument = errors.New("malformed document")
)
