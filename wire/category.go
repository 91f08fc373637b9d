package wire

import "fmt"

// Category is the coarse classification of a wire value.
type Category int

const (
	NilCategory Category = iota
	BoolCategory
	NumberCategory
	StringCategory
	BinaryCategory
	ArrayCategory
	MapCategory
	ExtensionCategory
)

func (c Category) String() string {
	s, ok := map[Category]string{
		NilCategory:       "Nil",
		BoolCategory:      "Bool",
		NumberCategory:    "Number",
		StringCategory:    "String",
		BinaryCategory:    "Binary",
		ArrayCategory:     "Array",
		MapCategory:       "Map",
		ExtensionCategory: "Extension",
	}[c]
	if ok {
		return s
	}
	return "<unknown category>"
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(d []byte) error {
	cc, ok := map[string]Category{
		"Nil":       NilCategory,
		"Bool":      BoolCategory,
		"Number":    NumberCategory,
		"String":    StringCategory,
		"Binary":    BinaryCategory,
		"Array":     ArrayCategory,
		"Map":       MapCategory,
		"Extension": ExtensionCategory,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized category %q", d)
	}
	*c = cc
	return nil
}

func Categories() []Category {
	return []Category{
		NilCategory,
		BoolCategory,
		NumberCategory,
		StringCategory,
		BinaryCategory,
		ArrayCategory,
		MapCategory,
		ExtensionCategory,
	}
}

// IsLeaf reports whether values of this category carry no child values.
func (c Category) IsLeaf() bool {
	switch c {
	case ArrayCategory, MapCategory:
		return false
	default:
		return true
	}
}
