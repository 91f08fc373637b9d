package ir

import (
	"github.com/NoelleStern/rmpp/wire"
)

// Node is one wire value: its raw marker byte, the fine variant the
// marker resolved to, and the payload for that variant.
type Node struct {
	Marker  byte
	Variant wire.Variant

	Bool    bool
	Uint    uint64
	Int     int64
	Float   float64
	Float32 float32
	String  string
	Bytes   []byte
	ExtType int8

	Fields []*Node
	Values []*Node
}

// Pair is one map entry. Keys may be of any node type.
type Pair struct {
	Key, Value *Node
}

// Category returns the node's basic classification, derived from its
// variant.
func (n *Node) Category() wire.Category {
	return n.Variant.Category()
}

// Pairs returns the map entries of a Map-category node, nil otherwise.
func (n *Node) Pairs() []Pair {
	if n.Category() != wire.MapCategory {
		return nil
	}
	res := make([]Pair, len(n.Fields))
	for i := range n.Fields {
		res[i] = Pair{Key: n.Fields[i], Value: n.Values[i]}
	}
	return res
}

// Len returns the child count for containers and the payload byte
// count for strings and binary, 0 otherwise.
func (n *Node) Len() int {
	switch n.Category() {
	case wire.ArrayCategory:
		return len(n.Values)
	case wire.MapCategory:
		return len(n.Fields)
	case wire.StringCategory:
		return len(n.String)
	case wire.BinaryCategory, wire.ExtensionCategory:
		return len(n.Bytes)
	}
	return 0
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Marker = n.Marker
	dst.Variant = n.Variant
	dst.Bool = n.Bool
	dst.Uint = n.Uint
	dst.Int = n.Int
	dst.Float = n.Float
	dst.Float32 = n.Float32
	dst.String = n.String
	dst.ExtType = n.ExtType
	if n.Bytes != nil {
		dst.Bytes = make([]byte, len(n.Bytes))
		copy(dst.Bytes, n.Bytes)
	}
	if n.Fields != nil {
		dst.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func FromNil() *Node {
	return &Node{Marker: 0xC0, Variant: wire.Nil}
}

func FromBool(v bool) *Node {
	if v {
		return &Node{Marker: 0xC3, Variant: wire.True, Bool: true}
	}
	return &Node{Marker: 0xC2, Variant: wire.False}
}

// FromFixPos embeds v in the marker itself. The low 7 bits carry the
// value.
func FromFixPos(v uint8) *Node {
	return &Node{Marker: v & 0x7F, Variant: wire.FixPos, Uint: uint64(v & 0x7F)}
}

// FromFixNeg embeds v, which must be in [-32, -1], in the marker's low
// 5 bits.
func FromFixNeg(v int8) *Node {
	return &Node{Marker: (byte(v) & 0x1F) | 0xE0, Variant: wire.FixNeg, Int: int64(v)}
}

func FromUint8(v uint8) *Node   { return &Node{Marker: 0xCC, Variant: wire.UInt8, Uint: uint64(v)} }
func FromUint16(v uint16) *Node { return &Node{Marker: 0xCD, Variant: wire.UInt16, Uint: uint64(v)} }
func FromUint32(v uint32) *Node { return &Node{Marker: 0xCE, Variant: wire.UInt32, Uint: uint64(v)} }
func FromUint64(v uint64) *Node { return &Node{Marker: 0xCF, Variant: wire.UInt64, Uint: v} }

func FromInt8(v int8) *Node   { return &Node{Marker: 0xD0, Variant: wire.Int8, Int: int64(v)} }
func FromInt16(v int16) *Node { return &Node{Marker: 0xD1, Variant: wire.Int16, Int: int64(v)} }
func FromInt32(v int32) *Node { return &Node{Marker: 0xD2, Variant: wire.Int32, Int: int64(v)} }
func FromInt64(v int64) *Node { return &Node{Marker: 0xD3, Variant: wire.Int64, Int: v} }

func FromF32(v float32) *Node { return &Node{Marker: 0xCA, Variant: wire.F32, Float32: v} }
func FromF64(v float64) *Node { return &Node{Marker: 0xCB, Variant: wire.F64, Float: v} }

// FromFixStr builds a fixstr node; s must be at most 31 bytes, which
// the encoder enforces.
func FromFixStr(s string) *Node {
	return &Node{Marker: 0xA0 | (byte(len(s)) & 0x1F), Variant: wire.FixStr, String: s}
}

func FromStr8(s string) *Node  { return &Node{Marker: 0xD9, Variant: wire.Str8, String: s} }
func FromStr16(s string) *Node { return &Node{Marker: 0xDA, Variant: wire.Str16, String: s} }
func FromStr32(s string) *Node { return &Node{Marker: 0xDB, Variant: wire.Str32, String: s} }

func FromBin8(b []byte) *Node  { return &Node{Marker: 0xC4, Variant: wire.Bin8, Bytes: b} }
func FromBin16(b []byte) *Node { return &Node{Marker: 0xC5, Variant: wire.Bin16, Bytes: b} }
func FromBin32(b []byte) *Node { return &Node{Marker: 0xC6, Variant: wire.Bin32, Bytes: b} }

// FromFixArray builds a fixarray node; at most 15 values, which the
// encoder enforces.
func FromFixArray(values ...*Node) *Node {
	return &Node{Marker: 0x90 | (byte(len(values)) & 0x0F), Variant: wire.FixArray, Values: values}
}

func FromArray16(values ...*Node) *Node {
	return &Node{Marker: 0xDC, Variant: wire.Array16, Values: values}
}

func FromArray32(values ...*Node) *Node {
	return &Node{Marker: 0xDD, Variant: wire.Array32, Values: values}
}

// FromFixMap builds a fixmap node; at most 15 pairs, which the encoder
// enforces.
func FromFixMap(pairs ...Pair) *Node {
	n := &Node{Marker: 0x80 | (byte(len(pairs)) & 0x0F), Variant: wire.FixMap}
	return withPairs(n, pairs)
}

func FromMap16(pairs ...Pair) *Node {
	return withPairs(&Node{Marker: 0xDE, Variant: wire.Map16}, pairs)
}

func FromMap32(pairs ...Pair) *Node {
	return withPairs(&Node{Marker: 0xDF, Variant: wire.Map32}, pairs)
}

func withPairs(n *Node, pairs []Pair) *Node {
	n.Fields = make([]*Node, len(pairs))
	n.Values = make([]*Node, len(pairs))
	for i, p := range pairs {
		n.Fields[i] = p.Key
		n.Values[i] = p.Value
	}
	return n
}

func FromFixExt1(extType int8, data []byte) *Node {
	return &Node{Marker: 0xD4, Variant: wire.FixExt1, ExtType: extType, Bytes: data}
}

func FromFixExt2(extType int8, data []byte) *Node {
	return &Node{Marker: 0xD5, Variant: wire.FixExt2, ExtType: extType, Bytes: data}
}

func FromFixExt4(extType int8, data []byte) *Node {
	return &Node{Marker: 0xD6, Variant: wire.FixExt4, ExtType: extType, Bytes: data}
}

func FromFixExt8(extType int8, data []byte) *Node {
	return &Node{Marker: 0xD7, Variant: wire.FixExt8, ExtType: extType, Bytes: data}
}

func FromFixExt16(extType int8, data []byte) *Node {
	return &Node{Marker: 0xD8, Variant: wire.FixExt16, ExtType: extType, Bytes: data}
}

func FromExt8(extType int8, data []byte) *Node {
	return &Node{Marker: 0xC7, Variant: wire.Ext8, ExtType: extType, Bytes: data}
}

func FromExt16(extType int8, data []byte) *Node {
	return &Node{Marker: 0xC8, Variant: wire.Ext16, ExtType: extType, Bytes: data}
}

func FromExt32(extType int8, data []byte) *Node {
	return &Node{Marker: 0xC9, Variant: wire.Ext32, ExtType: extType, Bytes: data}
}
