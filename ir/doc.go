// Package ir provides the typed tree representation for MessagePack
// values.
//
// # Overview
//
// The ir package defines the core data structure for representing a
// MessagePack buffer as a tree of nodes. Unlike ordinary MessagePack
// decoders, which collapse distinct wire encodings into host values,
// an ir.Node keeps the literal marker byte that introduced the value
// and the fine wire variant that was used, so that encoding the tree
// reproduces the original bytes exactly.
//
// # Node Structure
//
// A Node represents a single wire value. Nodes can be:
//
//   - Atomic: nil, booleans, integers, floats, strings, binary blobs,
//     extension payloads
//   - Composite: arrays (ordered values) and maps (ordered key/value
//     pairs)
//
// The IR works as a recursive tagged union, where the payload is
// placed in a field depending on the node's Variant. The Marker field
// holds the raw wire byte; the basic category is always derived from
// the variant, never stored.
//
// For MapType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Key order is
// preserved and significant: MessagePack maps are not order-normalized
// and keys may be of any type.
//
// # Creating Nodes
//
// Use the per-variant constructors to create nodes with a consistent
// marker:
//
//	node := ir.FromFixStr("hello")
//	num := ir.FromInt32(42)       // five wire bytes, by request
//	one := ir.FromFixPos(1)       // one wire byte
//	arr := ir.FromFixArray(ir.FromFixPos(1), ir.FromFixPos(2))
//	obj := ir.FromFixMap(ir.Pair{Key: ir.FromFixStr("k"), Value: one})
//
// The constructors do not minimize: FromInt32(1) stays Int32 on the
// wire even though the value fits a fixint.
//
// # Document Form
//
// Nodes marshal to and from a JSON document with three fields:
//
//	{"raw_marker": 195, "basic_type": "Bool",
//	 "data": {"type": "True", "value": true}}
//
// Array payloads are sequences of such documents; map payloads are
// sequences of two-element [key, value] pairs. Binary and extension
// bytes are carried as base64 text. 64-bit integers and doubles are
// emitted as plain numeric literals; magnitudes beyond a generic
// reader's safe-integer range lose precision in such readers, which is
// a documented property of the schema rather than of this package.
//
// # Thread Safety
//
// Node trees are immutable by convention once built: every transform
// produces a new tree or a new buffer. Trees may be read from multiple
// goroutines without coordination.
//
// # Related Packages
//
//   - github.com/NoelleStern/rmpp/wire - marker grammar
//   - github.com/NoelleStern/rmpp/decode - binary to Node
//   - github.com/NoelleStern/rmpp/encode - Node to binary
package ir
