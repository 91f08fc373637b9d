// Package wire defines the MessagePack wire grammar: the mapping from
// each of the 256 marker byte values to a fine-grained variant, its
// basic category, and the rule for reading its payload.
//
// # Overview
//
// Every MessagePack value on the wire begins with a single marker byte.
// The marker determines the value's type family and how the bytes that
// follow it are interpreted. Some markers carry their value or length
// embedded in their own bits (fixint, fixstr, fixarray, fixmap), some
// are followed by a fixed number of payload bytes (bool, floats, sized
// integers, fixext), and some are followed by a big-endian length
// prefix and that many payload bytes or child values (str8/16/32,
// bin8/16/32, array16/32, map16/32, ext8/16/32).
//
// The grammar distinguishes fine variants (e.g. Int32 vs FixPos) beyond
// their basic category (Number) because this module's purpose is to
// preserve the exact wire encoding a producer chose, not merely the
// value it denotes.
//
// Marker 0xC1 is permanently reserved by the format and has no variant.
//
// # Related Packages
//
//   - github.com/NoelleStern/rmpp/ir - typed tree built on this grammar
//   - github.com/NoelleStern/rmpp/decode - binary to tree
//   - github.com/NoelleStern/rmpp/encode - tree to binary
package wire
