package encode

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/NoelleStern/rmpp/ir"
	"github.com/NoelleStern/rmpp/wire"
)

// Value encodes a node tree to MessagePack binary. Either the whole
// tree validates and encodes, or an error is returned and no bytes
// are; a partially written buffer is never exposed.
func Value(node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := write(buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func write(buf *bytes.Buffer, n *ir.Node) error {
	marker, err := impliedMarker(n)
	if err != nil {
		return err
	}
	if n.Marker != marker {
		return fmt.Errorf("%w: node carries 0x%02X, variant %s implies 0x%02X",
			ErrInconsistentMarker, n.Marker, n.Variant, marker)
	}
	buf.WriteByte(marker)

	switch n.Variant {
	case wire.Nil, wire.False, wire.True, wire.FixPos, wire.FixNeg:
		// The marker is the whole encoding.
		return nil

	case wire.UInt8, wire.UInt16, wire.UInt32, wire.UInt64:
		_, width := n.Variant.Rule()
		if width < 8 && n.Uint > (1<<(8*width))-1 {
			return fmt.Errorf("%w: %d does not fit %s", ErrValueOutOfRange, n.Uint, n.Variant)
		}
		writeBE(buf, n.Uint, width)
		return nil

	case wire.Int8, wire.Int16, wire.Int32, wire.Int64:
		_, width := n.Variant.Rule()
		if width < 8 {
			limit := int64(1) << (8*width - 1)
			if n.Int < -limit || n.Int > limit-1 {
				return fmt.Errorf("%w: %d does not fit %s", ErrValueOutOfRange, n.Int, n.Variant)
			}
		}
		writeBE(buf, uint64(n.Int), width)
		return nil

	case wire.F32:
		writeBE(buf, uint64(math.Float32bits(n.Float32)), 4)
		return nil
	case wire.F64:
		writeBE(buf, math.Float64bits(n.Float), 8)
		return nil

	case wire.FixStr:
		if !utf8.ValidString(n.String) {
			return fmt.Errorf("%w: %s payload is not UTF-8", ErrInvalidString, n.Variant)
		}
		buf.WriteString(n.String)
		return nil
	case wire.Str8, wire.Str16, wire.Str32:
		if !utf8.ValidString(n.String) {
			return fmt.Errorf("%w: %s payload is not UTF-8", ErrInvalidString, n.Variant)
		}
		if err := writeLen(buf, n.Variant, len(n.String)); err != nil {
			return err
		}
		buf.WriteString(n.String)
		return nil

	case wire.Bin8, wire.Bin16, wire.Bin32:
		if err := writeLen(buf, n.Variant, len(n.Bytes)); err != nil {
			return err
		}
		buf.Write(n.Bytes)
		return nil

	case wire.FixExt1, wire.FixExt2, wire.FixExt4, wire.FixExt8, wire.FixExt16:
		size, _ := n.Variant.ExtSize()
		if len(n.Bytes) != size {
			return fmt.Errorf("%w: %s needs exactly %d data bytes, have %d",
				ErrValueOutOfRange, n.Variant, size, len(n.Bytes))
		}
		buf.WriteByte(byte(n.ExtType))
		buf.Write(n.Bytes)
		return nil
	case wire.Ext8, wire.Ext16, wire.Ext32:
		if err := writeLen(buf, n.Variant, len(n.Bytes)); err != nil {
			return err
		}
		buf.WriteByte(byte(n.ExtType))
		buf.Write(n.Bytes)
		return nil

	case wire.FixArray:
		return writeValues(buf, n.Values)
	case wire.Array16, wire.Array32:
		if err := writeLen(buf, n.Variant, len(n.Values)); err != nil {
			return err
		}
		return writeValues(buf, n.Values)

	case wire.FixMap:
		return writePairs(buf, n)
	case wire.Map16, wire.Map32:
		if err := writeLen(buf, n.Variant, len(n.Fields)); err != nil {
			return err
		}
		return writePairs(buf, n)
	}
	return fmt.Errorf("%w: unknown variant %d", ErrInconsistentMarker, n.Variant)
}

// impliedMarker computes the marker byte the variant and payload
// dictate. For embedded variants this also bounds the embedded value
// or length.
func impliedMarker(n *ir.Node) (byte, error) {
	switch n.Variant {
	case wire.FixPos:
		if n.Uint > 0x7F {
			return 0, fmt.Errorf("%w: %d does not fit FixPos", ErrValueOutOfRange, n.Uint)
		}
		return byte(n.Uint), nil
	case wire.FixNeg:
		if n.Int < -32 || n.Int > -1 {
			return 0, fmt.Errorf("%w: %d does not fit FixNeg", ErrValueOutOfRange, n.Int)
		}
		return 0xE0 | (byte(n.Int) & 0x1F), nil
	case wire.FixStr:
		if len(n.String) > 0x1F {
			return 0, fmt.Errorf("%w: %d bytes do not fit FixStr", ErrValueOutOfRange, len(n.String))
		}
		return 0xA0 | byte(len(n.String)), nil
	case wire.FixArray:
		if len(n.Values) > 0x0F {
			return 0, fmt.Errorf("%w: %d values do not fit FixArray", ErrValueOutOfRange, len(n.Values))
		}
		return 0x90 | byte(len(n.Values)), nil
	case wire.FixMap:
		if len(n.Fields) != len(n.Values) {
			return 0, fmt.Errorf("%w: map holds %d keys and %d values",
				ErrValueOutOfRange, len(n.Fields), len(n.Values))
		}
		if len(n.Fields) > 0x0F {
			return 0, fmt.Errorf("%w: %d pairs do not fit FixMap", ErrValueOutOfRange, len(n.Fields))
		}
		return 0x80 | byte(len(n.Fields)), nil
	}
	m, ok := n.Variant.Marker()
	if !ok {
		return 0, fmt.Errorf("%w: unknown variant %d", ErrInconsistentMarker, n.Variant)
	}
	return m, nil
}

// writeLen emits a big-endian length prefix of the variant's declared
// width, refusing lengths beyond the width's capacity.
func writeLen(buf *bytes.Buffer, v wire.Variant, length int) error {
	_, width := v.Rule()
	if uint64(length) > (1<<(8*width))-1 {
		return fmt.Errorf("%w: length %d exceeds %s capacity", ErrValueOutOfRange, length, v)
	}
	writeBE(buf, uint64(length), width)
	return nil
}

func writeValues(buf *bytes.Buffer, values []*ir.Node) error {
	for _, v := range values {
		if err := write(buf, v); err != nil {
			return err
		}
	}
	return nil
}

func writePairs(buf *bytes.Buffer, n *ir.Node) error {
	if len(n.Fields) != len(n.Values) {
		return fmt.Errorf("%w: map holds %d keys and %d values",
			ErrValueOutOfRange, len(n.Fields), len(n.Values))
	}
	for i := range n.Fields {
		if err := write(buf, n.Fields[i]); err != nil {
			return err
		}
		if err := write(buf, n.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeBE(buf *bytes.Buffer, u uint64, width int) {
	for shift := 8 * (width - 1); shift >= 0; shift -= 8 {
		buf.WriteByte(byte(u >> shift))
	}
}
