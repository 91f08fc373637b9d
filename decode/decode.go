package decode

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/NoelleStern/rmpp/ir"
	"github.com/NoelleStern/rmpp/wire"
)

// Value reads one wire value from the front of d and returns the node
// and the number of bytes consumed. Containers are read in full,
// recursively; the recursion is bounded by MaxDepth.
func Value(d []byte, opts ...Option) (*ir.Node, int, error) {
	o := &options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	node, next, err := value(d, 0, 0, o)
	if err != nil {
		return nil, 0, err
	}
	return node, next, nil
}

// value decodes the wire value at offset i and returns the offset just
// past it.
func value(d []byte, i, depth int, o *options) (*ir.Node, int, error) {
	if i >= len(d) {
		return nil, 0, fmt.Errorf("%w: need a marker at offset %d", ErrUnexpectedEOF, i)
	}
	marker := d[i]
	variant, ok := wire.Lookup(marker)
	if !ok {
		return nil, 0, fmt.Errorf("%w: reserved byte 0xC1 at offset %d", ErrInvalidMarker, i)
	}
	node := &ir.Node{Marker: marker, Variant: variant}
	i++

	switch variant {
	case wire.Nil:
		return node, i, nil
	case wire.False:
		return node, i, nil
	case wire.True:
		node.Bool = true
		return node, i, nil

	case wire.FixPos:
		node.Uint = uint64(marker)
		return node, i, nil
	case wire.FixNeg:
		node.Int = int64(int8(marker))
		return node, i, nil

	case wire.UInt8, wire.UInt16, wire.UInt32, wire.UInt64:
		_, width := variant.Rule()
		u, next, err := beUint(d, i, width)
		if err != nil {
			return nil, 0, err
		}
		node.Uint = u
		return node, next, nil

	case wire.Int8, wire.Int16, wire.Int32, wire.Int64:
		_, width := variant.Rule()
		u, next, err := beUint(d, i, width)
		if err != nil {
			return nil, 0, err
		}
		// Sign-extend from the wire width.
		shift := uint(64 - 8*width)
		node.Int = int64(u<<shift) >> shift
		return node, next, nil

	case wire.F32:
		u, next, err := beUint(d, i, 4)
		if err != nil {
			return nil, 0, err
		}
		node.Float32 = math.Float32frombits(uint32(u))
		return node, next, nil
	case wire.F64:
		u, next, err := beUint(d, i, 8)
		if err != nil {
			return nil, 0, err
		}
		node.Float = math.Float64frombits(u)
		return node, next, nil

	case wire.FixStr, wire.Str8, wire.Str16, wire.Str32:
		length, next, err := payloadLen(d, i, marker, variant)
		if err != nil {
			return nil, 0, err
		}
		raw, next, err := payload(d, next, length)
		if err != nil {
			return nil, 0, err
		}
		if !utf8.Valid(raw) {
			return nil, 0, fmt.Errorf("%w: %s payload at offset %d is not UTF-8",
				ErrInvalidString, variant, i)
		}
		node.String = string(raw)
		return node, next, nil

	case wire.Bin8, wire.Bin16, wire.Bin32:
		length, next, err := payloadLen(d, i, marker, variant)
		if err != nil {
			return nil, 0, err
		}
		raw, next, err := payload(d, next, length)
		if err != nil {
			return nil, 0, err
		}
		node.Bytes = raw
		return node, next, nil

	case wire.FixExt1, wire.FixExt2, wire.FixExt4, wire.FixExt8, wire.FixExt16,
		wire.Ext8, wire.Ext16, wire.Ext32:
		return ext(d, i, node, marker, variant)

	case wire.FixArray, wire.Array16, wire.Array32:
		length, next, err := payloadLen(d, i, marker, variant)
		if err != nil {
			return nil, 0, err
		}
		if depth >= o.maxDepth {
			return nil, 0, fmt.Errorf("%w: container at offset %d nests deeper than %d",
				ErrDepthExceeded, i-1, o.maxDepth)
		}
		// Each child occupies at least one byte; a declared count the
		// remaining buffer cannot hold fails before any allocation.
		if length > len(d)-next {
			return nil, 0, fmt.Errorf("%w: declared %d values at offset %d, %d bytes available",
				ErrUnexpectedEOF, length, i-1, len(d)-next)
		}
		node.Values = make([]*ir.Node, length)
		for k := range node.Values {
			child, n, err := value(d, next, depth+1, o)
			if err != nil {
				return nil, 0, err
			}
			node.Values[k] = child
			next = n
		}
		return node, next, nil

	case wire.FixMap, wire.Map16, wire.Map32:
		length, next, err := payloadLen(d, i, marker, variant)
		if err != nil {
			return nil, 0, err
		}
		if depth >= o.maxDepth {
			return nil, 0, fmt.Errorf("%w: container at offset %d nests deeper than %d",
				ErrDepthExceeded, i-1, o.maxDepth)
		}
		// Each pair occupies at least two bytes.
		if length > (len(d)-next)/2 {
			return nil, 0, fmt.Errorf("%w: declared %d pairs at offset %d, %d bytes available",
				ErrUnexpectedEOF, length, i-1, len(d)-next)
		}
		node.Fields = make([]*ir.Node, length)
		node.Values = make([]*ir.Node, length)
		for k := range node.Fields {
			key, n, err := value(d, next, depth+1, o)
			if err != nil {
				return nil, 0, err
			}
			val, n, err := value(d, n, depth+1, o)
			if err != nil {
				return nil, 0, err
			}
			node.Fields[k] = key
			node.Values[k] = val
			next = n
		}
		return node, next, nil
	}
	return nil, 0, fmt.Errorf("%w: byte 0x%02X at offset %d", ErrInvalidMarker, marker, i-1)
}

// ext decodes fixext and ext values: an optional length prefix, one
// extension type byte, then the data bytes.
func ext(d []byte, i int, node *ir.Node, marker byte, variant wire.Variant) (*ir.Node, int, error) {
	length, ok := variant.ExtSize()
	next := i
	if !ok {
		_, width := variant.Rule()
		u, n, err := beUint(d, i, width)
		if err != nil {
			return nil, 0, err
		}
		length, next = int(u), n
	}
	if next >= len(d) {
		return nil, 0, fmt.Errorf("%w: need an extension type byte at offset %d",
			ErrUnexpectedEOF, next)
	}
	node.ExtType = int8(d[next])
	raw, next, err := payload(d, next+1, length)
	if err != nil {
		return nil, 0, err
	}
	node.Bytes = raw
	return node, next, nil
}

// payloadLen resolves a variant's declared length: from the marker's
// own bits for embedded variants, from a big-endian prefix otherwise.
func payloadLen(d []byte, i int, marker byte, variant wire.Variant) (int, int, error) {
	switch variant {
	case wire.FixStr:
		return int(marker & 0x1F), i, nil
	case wire.FixArray, wire.FixMap:
		return int(marker & 0x0F), i, nil
	}
	_, width := variant.Rule()
	u, next, err := beUint(d, i, width)
	if err != nil {
		return 0, 0, err
	}
	return int(u), next, nil
}

// payload copies length bytes starting at i. The bound check runs
// before any allocation so a hostile declared length cannot trigger a
// large allocation against a short buffer.
func payload(d []byte, i, length int) ([]byte, int, error) {
	if length < 0 || i+length > len(d) {
		return nil, 0, fmt.Errorf("%w: declared %d payload bytes at offset %d, %d available",
			ErrUnexpectedEOF, length, i, len(d)-i)
	}
	raw := make([]byte, length)
	copy(raw, d[i:i+length])
	return raw, i + length, nil
}

func beUint(d []byte, i, width int) (uint64, int, error) {
	if i+width > len(d) {
		return 0, 0, fmt.Errorf("%w: need %d bytes at offset %d, %d available",
			ErrUnexpectedEOF, width, i, len(d)-i)
	}
	var u uint64
	for _, b := range d[i : i+width] {
		u = u<<8 | uint64(b)
	}
	return u, i + width, nil
}
