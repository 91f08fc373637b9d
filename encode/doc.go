// Package encode turns ir.Node trees back into MessagePack binary,
// emitting exactly the wire form each node's variant dictates.
//
// The encoder never minimizes: a node that says Int32 for the value 1
// produces the five-byte Int32 form, not a one-byte fixint. Round
// tripping a decoded buffer therefore reproduces it byte for byte.
//
// Before emission every node is validated: its stored marker must
// agree with the marker its variant and payload imply, and its payload
// must fit the width its variant declares (a fixarray of 16 values or
// a Str8 of 300 bytes cannot be represented and fails, it is not
// silently re-widened).
//
// # Usage
//
//	data, err := encode.Value(node)
//
// # Related Packages
//
//   - github.com/NoelleStern/rmpp/ir - the encoded representation
//   - github.com/NoelleStern/rmpp/decode - the inverse transform
package encode
