package wire

// Reserved is the one marker byte the format permanently excludes.
// No variant maps to it and no value may ever carry it.
const Reserved byte = 0xC1

// Rule describes how a variant's payload follows its marker.
type Rule int

const (
	// RuleEmbedded: the value or length lives in the marker's own low
	// bits; no prefix bytes follow.
	RuleEmbedded Rule = iota
	// RuleFixed: a fixed number of payload bytes follows the marker.
	RuleFixed
	// RuleLengthPrefixed: a 1/2/4 byte big-endian length follows the
	// marker, then that many payload bytes or child values.
	RuleLengthPrefixed
)

func (r Rule) String() string {
	switch r {
	case RuleEmbedded:
		return "Embedded"
	case RuleFixed:
		return "Fixed"
	case RuleLengthPrefixed:
		return "LengthPrefixed"
	}
	return "<unknown rule>"
}

// Lookup maps a marker byte to its variant. The second result is false
// only for the reserved byte 0xC1.
func Lookup(m byte) (Variant, bool) {
	switch {
	case m <= 0x7F:
		return FixPos, true
	case m >= 0xE0:
		return FixNeg, true
	case m >= 0x80 && m <= 0x8F:
		return FixMap, true
	case m >= 0x90 && m <= 0x9F:
		return FixArray, true
	case m >= 0xA0 && m <= 0xBF:
		return FixStr, true
	}
	switch m {
	case 0xC0:
		return Nil, true
	case 0xC2:
		return False, true
	case 0xC3:
		return True, true
	case 0xC4:
		return Bin8, true
	case 0xC5:
		return Bin16, true
	case 0xC6:
		return Bin32, true
	case 0xC7:
		return Ext8, true
	case 0xC8:
		return Ext16, true
	case 0xC9:
		return Ext32, true
	case 0xCA:
		return F32, true
	case 0xCB:
		return F64, true
	case 0xCC:
		return UInt8, true
	case 0xCD:
		return UInt16, true
	case 0xCE:
		return UInt32, true
	case 0xCF:
		return UInt64, true
	case 0xD0:
		return Int8, true
	case 0xD1:
		return Int16, true
	case 0xD2:
		return Int32, true
	case 0xD3:
		return Int64, true
	case 0xD4:
		return FixExt1, true
	case 0xD5:
		return FixExt2, true
	case 0xD6:
		return FixExt4, true
	case 0xD7:
		return FixExt8, true
	case 0xD8:
		return FixExt16, true
	case 0xD9:
		return Str8, true
	case 0xDA:
		return Str16, true
	case 0xDB:
		return Str32, true
	case 0xDC:
		return Array16, true
	case 0xDD:
		return Array32, true
	case 0xDE:
		return Map16, true
	case 0xDF:
		return Map32, true
	}
	// 0xC1
	return 0, false
}

// Rule returns the payload rule for the variant and its byte width:
// the fixed payload size for RuleFixed (including the extension type
// byte for fixext variants), the length-prefix size for
// RuleLengthPrefixed, and 0 for RuleEmbedded.
func (v Variant) Rule() (Rule, int) {
	switch v {
	case FixPos, FixNeg, FixStr, FixArray, FixMap:
		return RuleEmbedded, 0
	case Nil, False, True:
		return RuleFixed, 0
	case UInt8, Int8:
		return RuleFixed, 1
	case UInt16, Int16:
		return RuleFixed, 2
	case UInt32, Int32, F32:
		return RuleFixed, 4
	case UInt64, Int64, F64:
		return RuleFixed, 8
	case FixExt1:
		return RuleFixed, 2
	case FixExt2:
		return RuleFixed, 3
	case FixExt4:
		return RuleFixed, 5
	case FixExt8:
		return RuleFixed, 9
	case FixExt16:
		return RuleFixed, 17
	case Str8, Bin8, Ext8:
		return RuleLengthPrefixed, 1
	case Str16, Bin16, Ext16, Array16, Map16:
		return RuleLengthPrefixed, 2
	case Str32, Bin32, Ext32, Array32, Map32:
		return RuleLengthPrefixed, 4
	}
	return RuleEmbedded, 0
}

// Marker returns the fixed marker byte for variants whose marker does
// not embed a value or length. Embedded variants (FixPos, FixNeg,
// FixStr, FixArray, FixMap) return false: their marker depends on the
// payload.
func (v Variant) Marker() (byte, bool) {
	m, ok := map[Variant]byte{
		Nil:      0xC0,
		False:    0xC2,
		True:     0xC3,
		Bin8:     0xC4,
		Bin16:    0xC5,
		Bin32:    0xC6,
		Ext8:     0xC7,
		Ext16:    0xC8,
		Ext32:    0xC9,
		F32:      0xCA,
		F64:      0xCB,
		UInt8:    0xCC,
		UInt16:   0xCD,
		UInt32:   0xCE,
		UInt64:   0xCF,
		Int8:     0xD0,
		Int16:    0xD1,
		Int32:    0xD2,
		Int64:    0xD3,
		FixExt1:  0xD4,
		FixExt2:  0xD5,
		FixExt4:  0xD6,
		FixExt8:  0xD7,
		FixExt16: 0xD8,
		Str8:     0xD9,
		Str16:    0xDA,
		Str32:    0xDB,
		Array16:  0xDC,
		Array32:  0xDD,
		Map16:    0xDE,
		Map32:    0xDF,
	}[v]
	return m, ok
}

// Fits reports whether the marker byte falls in the range the variant
// may legally occupy.
func (v Variant) Fits(m byte) bool {
	switch v {
	case FixPos:
		return m <= 0x7F
	case FixNeg:
		return m >= 0xE0
	case FixStr:
		return m >= 0xA0 && m <= 0xBF
	case FixArray:
		return m >= 0x90 && m <= 0x9F
	case FixMap:
		return m >= 0x80 && m <= 0x8F
	}
	fixed, ok := v.Marker()
	return ok && m == fixed
}

// ExtSize returns the data byte count of a fixext variant and false
// for every other variant.
func (v Variant) ExtSize() (int, bool) {
	n, ok := map[Variant]int{
		FixExt1:  1,
		FixExt2:  2,
		FixExt4:  4,
		FixExt8:  8,
		FixExt16: 16,
	}[v]
	return n, ok
}
