package wire

import "fmt"

// Variant is the fine-grained wire encoding of a value. It identifies
// the exact marker family used on the wire, which is more specific than
// the value's Category: the number 1 may travel as FixPos, UInt8, Int32
// or F64, and each is a distinct Variant.
type Variant int

const (
	Nil Variant = iota
	False
	True
	FixPos
	FixNeg
	UInt8
	UInt16
	UInt32
	UInt64
	Int8
	Int16
	Int32
	Int64
	F32
	F64
	FixStr
	Str8
	Str16
	Str32
	Bin8
	Bin16
	Bin32
	FixArray
	Array16
	Array32
	FixMap
	Map16
	Map32
	FixExt1
	FixExt2
	FixExt4
	FixExt8
	FixExt16
	Ext8
	Ext16
	Ext32
)

var variantNames = map[Variant]string{
	Nil:      "Nil",
	False:    "False",
	True:     "True",
	FixPos:   "FixPos",
	FixNeg:   "FixNeg",
	UInt8:    "UInt8",
	UInt16:   "UInt16",
	UInt32:   "UInt32",
	UInt64:   "UInt64",
	Int8:     "Int8",
	Int16:    "Int16",
	Int32:    "Int32",
	Int64:    "Int64",
	F32:      "F32",
	F64:      "F64",
	FixStr:   "FixStr",
	Str8:     "Str8",
	Str16:    "Str16",
	Str32:    "Str32",
	Bin8:     "Bin8",
	Bin16:    "Bin16",
	Bin32:    "Bin32",
	FixArray: "FixArray",
	Array16:  "Array16",
	Array32:  "Array32",
	FixMap:   "FixMap",
	Map16:    "Map16",
	Map32:    "Map32",
	FixExt1:  "FixExt1",
	FixExt2:  "FixExt2",
	FixExt4:  "FixExt4",
	FixExt8:  "FixExt8",
	FixExt16: "FixExt16",
	Ext8:     "Ext8",
	Ext16:    "Ext16",
	Ext32:    "Ext32",
}

var variantsByName = func() map[string]Variant {
	m := make(map[string]Variant, len(variantNames))
	for v, name := range variantNames {
		m[name] = v
	}
	return m
}()

func (v Variant) String() string {
	s, ok := variantNames[v]
	if ok {
		return s
	}
	return "<unknown variant>"
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(d []byte) error {
	vv, ok := variantsByName[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized variant %q", d)
	}
	*v = vv
	return nil
}

// ParseVariant resolves a variant name as it appears in the document
// schema's "data".."type" field.
func ParseVariant(name string) (Variant, bool) {
	v, ok := variantsByName[name]
	return v, ok
}

func Variants() []Variant {
	res := make([]Variant, 0, len(variantNames))
	for v := Variant(0); int(v) < len(variantNames); v++ {
		res = append(res, v)
	}
	return res
}

// Category returns the basic classification of the variant.
func (v Variant) Category() Category {
	switch v {
	case Nil:
		return NilCategory
	case False, True:
		return BoolCategory
	case FixPos, FixNeg,
		UInt8, UInt16, UInt32, UInt64,
		Int8, Int16, Int32, Int64,
		F32, F64:
		return NumberCategory
	case FixStr, Str8, Str16, Str32:
		return StringCategory
	case Bin8, Bin16, Bin32:
		return BinaryCategory
	case FixArray, Array16, Array32:
		return ArrayCategory
	case FixMap, Map16, Map32:
		return MapCategory
	case FixExt1, FixExt2, FixExt4, FixExt8, FixExt16,
		Ext8, Ext16, Ext32:
		return ExtensionCategory
	}
	return NilCategory
}
