package wire

import "testing"

func TestLookupCoversEveryMarker(t *testing.T) {
	for m := 0; m < 256; m++ {
		marker := byte(m)
		v, ok := Lookup(marker)
		if marker == Reserved {
			if ok {
				t.Errorf("marker 0xC1 resolved to %s, want reserved", v)
			}
			continue
		}
		if !ok {
			t.Errorf("marker 0x%02X did not resolve", marker)
			continue
		}
		if !v.Fits(marker) {
			t.Errorf("marker 0x%02X resolved to %s but is outside its range", marker, v)
		}
		// Stable across calls.
		v2, ok2 := Lookup(marker)
		if !ok2 || v2 != v {
			t.Errorf("marker 0x%02X resolved to %s then %s", marker, v, v2)
		}
	}
}

func TestLookupRanges(t *testing.T) {
	tests := []struct {
		marker  byte
		variant Variant
	}{
		{0x00, FixPos},
		{0x7F, FixPos},
		{0x80, FixMap},
		{0x8F, FixMap},
		{0x90, FixArray},
		{0x9F, FixArray},
		{0xA0, FixStr},
		{0xBF, FixStr},
		{0xC0, Nil},
		{0xC2, False},
		{0xC3, True},
		{0xCB, F64},
		{0xD3, Int64},
		{0xD8, FixExt16},
		{0xDB, Str32},
		{0xDF, Map32},
		{0xE0, FixNeg},
		{0xFF, FixNeg},
	}
	for _, test := range tests {
		v, ok := Lookup(test.marker)
		if !ok || v != test.variant {
			t.Errorf("Lookup(0x%02X) = %s, want %s", test.marker, v, test.variant)
		}
	}
}

func TestCategoriesPartitionVariants(t *testing.T) {
	counts := map[Category]int{}
	for _, v := range Variants() {
		counts[v.Category()]++
	}
	want := map[Category]int{
		NilCategory:       1,
		BoolCategory:      2,
		NumberCategory:    12,
		StringCategory:    4,
		BinaryCategory:    3,
		ArrayCategory:     3,
		MapCategory:       3,
		ExtensionCategory: 8,
	}
	for c, n := range want {
		if counts[c] != n {
			t.Errorf("category %s holds %d variants, want %d", c, counts[c], n)
		}
	}
}

func TestRules(t *testing.T) {
	tests := []struct {
		variant Variant
		rule    Rule
		width   int
	}{
		{FixPos, RuleEmbedded, 0},
		{FixStr, RuleEmbedded, 0},
		{Nil, RuleFixed, 0},
		{True, RuleFixed, 0},
		{UInt8, RuleFixed, 1},
		{Int16, RuleFixed, 2},
		{F32, RuleFixed, 4},
		{F64, RuleFixed, 8},
		{FixExt1, RuleFixed, 2},
		{FixExt16, RuleFixed, 17},
		{Str8, RuleLengthPrefixed, 1},
		{Bin16, RuleLengthPrefixed, 2},
		{Array16, RuleLengthPrefixed, 2},
		{Map32, RuleLengthPrefixed, 4},
		{Ext8, RuleLengthPrefixed, 1},
	}
	for _, test := range tests {
		rule, width := test.variant.Rule()
		if rule != test.rule || width != test.width {
			t.Errorf("%s.Rule() = (%s, %d), want (%s, %d)",
				test.variant, rule, width, test.rule, test.width)
		}
	}
}

func TestVariantTextRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		d, err := v.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", v, err)
		}
		var back Variant
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != v {
			t.Errorf("variant %s round tripped to %s", v, back)
		}
	}
	var v Variant
	if err := v.UnmarshalText([]byte("Int33")); err == nil {
		t.Error("expected error for unknown variant name")
	}
}

func TestCategoryTextRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		d, err := c.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", c, err)
		}
		var back Category
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != c {
			t.Errorf("category %s round tripped to %s", c, back)
		}
	}
}

func TestFixedMarkersAgreeWithLookup(t *testing.T) {
	for _, v := range Variants() {
		m, ok := v.Marker()
		if !ok {
			continue
		}
		got, found := Lookup(m)
		if !found || got != v {
			t.Errorf("%s.Marker() = 0x%02X but Lookup resolves it to %s", v, m, got)
		}
	}
}
