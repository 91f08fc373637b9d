// Package decode turns MessagePack binary into ir.Node trees without
// losing the wire encoding: every decoded node keeps the marker byte
// that was actually read and the fine variant it resolved to.
//
// # Usage
//
//	node, n, err := decode.Value(data)
//
//	// Bound container nesting below the default
//	node, n, err := decode.Value(data, decode.MaxDepth(64))
//
// Value reads exactly one wire value from the front of data and
// returns how many bytes it consumed. Callers that require the buffer
// to hold exactly one value should compare n against len(data); the
// root rmpp package's Unpack does so.
//
// # Related Packages
//
//   - github.com/NoelleStern/rmpp/ir - the decoded representation
//   - github.com/NoelleStern/rmpp/encode - the inverse transform
package decode
