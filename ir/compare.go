package ir

import (
	"bytes"
	"cmp"
	"math"
	"strings"

	"github.com/NoelleStern/rmpp/wire"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Ordering is by variant, then marker, then payload, then children;
// it exists to make node sets sortable and equality checkable, not to
// order the values they denote.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Variant, b.Variant); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Marker, b.Marker); c != 0 {
		return c
	}

	switch a.Category() {
	case wire.NilCategory:
		return 0
	case wire.BoolCategory:
		return compareBool(a.Bool, b.Bool)
	case wire.NumberCategory:
		return compareNumbers(a, b)
	case wire.StringCategory:
		return strings.Compare(a.String, b.String)
	case wire.BinaryCategory:
		return bytes.Compare(a.Bytes, b.Bytes)
	case wire.ExtensionCategory:
		if c := cmp.Compare(a.ExtType, b.ExtType); c != 0 {
			return c
		}
		return bytes.Compare(a.Bytes, b.Bytes)
	case wire.ArrayCategory:
		return compareValues(a.Values, b.Values)
	case wire.MapCategory:
		if c := compareValues(a.Fields, b.Fields); c != 0 {
			return c
		}
		return compareValues(a.Values, b.Values)
	}
	return 0
}

// Equal reports whether two nodes are structurally identical,
// including markers and fine variants.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareNumbers(a, b *Node) int {
	switch a.Variant {
	case wire.FixPos, wire.UInt8, wire.UInt16, wire.UInt32, wire.UInt64:
		return cmp.Compare(a.Uint, b.Uint)
	case wire.FixNeg, wire.Int8, wire.Int16, wire.Int32, wire.Int64:
		return cmp.Compare(a.Int, b.Int)
	case wire.F32:
		return cmp.Compare(math.Float32bits(a.Float32), math.Float32bits(b.Float32))
	default:
		return cmp.Compare(math.Float64bits(a.Float), math.Float64bits(b.Float))
	}
}

func compareValues(a, b []*Node) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
