package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/NoelleStern/rmpp/ir"
	"github.com/NoelleStern/rmpp/wire"
)

func TestScalars(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want []byte
	}{
		{"nil", ir.FromNil(), []byte{0xC0}},
		{"false", ir.FromBool(false), []byte{0xC2}},
		{"true", ir.FromBool(true), []byte{0xC3}},
		{"fixpos", ir.FromFixPos(42), []byte{0x2A}},
		{"fixneg", ir.FromFixNeg(-1), []byte{0xFF}},
		{"fixneg low", ir.FromFixNeg(-32), []byte{0xE0}},
		{"uint8", ir.FromUint8(255), []byte{0xCC, 0xFF}},
		{"uint16", ir.FromUint16(256), []byte{0xCD, 0x01, 0x00}},
		{"uint32", ir.FromUint32(0xDEADBEEF), []byte{0xCE, 0xDE, 0xAD, 0xBE, 0xEF}},
		{"int8", ir.FromInt8(-128), []byte{0xD0, 0x80}},
		{"int16", ir.FromInt16(-256), []byte{0xD1, 0xFF, 0x00}},
		{"int64", ir.FromInt64(-1),
			[]byte{0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"f32", ir.FromF32(1.0), []byte{0xCA, 0x3F, 0x80, 0x00, 0x00}},
		{"f64", ir.FromF64(1.0), []byte{0xCB, 0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"fixstr", ir.FromFixStr("int"), []byte{0xA3, 'i', 'n', 't'}},
		{"fixstr empty", ir.FromFixStr(""), []byte{0xA0}},
		{"str8", ir.FromStr8("hi"), []byte{0xD9, 0x02, 'h', 'i'}},
		{"str16", ir.FromStr16("hi"), []byte{0xDA, 0x00, 0x02, 'h', 'i'}},
		{"bin8", ir.FromBin8([]byte{1, 2, 3}), []byte{0xC4, 0x03, 1, 2, 3}},
		{"fixext1", ir.FromFixExt1(5, []byte{0xAA}), []byte{0xD4, 0x05, 0xAA}},
		{"ext8", ir.FromExt8(-1, []byte{1, 2}), []byte{0xC7, 0x02, 0xFF, 1, 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Value(test.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, test.want) {
				t.Errorf("got % X, want % X", got, test.want)
			}
		})
	}
}

func TestNonMinimalWidthHonored(t *testing.T) {
	// The tree says Int32 for the value 1: five bytes, no collapsing.
	got, err := Value(ir.FromInt32(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xD2, 0x00, 0x00, 0x00, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestContainers(t *testing.T) {
	got, err := Value(ir.FromFixArray(ir.FromFixPos(1), ir.FromFixStr("a"), ir.FromNil()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x93, 0x01, 0xA1, 'a', 0xC0}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}

	got, err = Value(ir.FromMap16(ir.Pair{Key: ir.FromFixStr("k"), Value: ir.FromFixPos(2)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []byte{0xDE, 0x00, 0x01, 0xA1, 'k', 0x02}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestValueOutOfRange(t *testing.T) {
	sixteen := make([]*ir.Node, 16)
	for i := range sixteen {
		sixteen[i] = ir.FromNil()
	}
	longStr := string(make([]byte, 256))

	tests := []struct {
		name string
		node *ir.Node
	}{
		{"fixarray 16 values", ir.FromFixArray(sixteen...)},
		{"fixstr 32 bytes", ir.FromFixStr(string(make([]byte, 32)))},
		{"str8 256 bytes", ir.FromStr8(longStr)},
		{"bin8 256 bytes", ir.FromBin8(make([]byte, 256))},
		{"uint8 overflow", &ir.Node{Marker: 0xCC, Variant: wire.UInt8, Uint: 256}},
		{"int8 overflow", &ir.Node{Marker: 0xD0, Variant: wire.Int8, Int: 128}},
		{"fixpos overflow", &ir.Node{Marker: 0x00, Variant: wire.FixPos, Uint: 128}},
		{"fixneg underflow", &ir.Node{Marker: 0xE0, Variant: wire.FixNeg, Int: -33}},
		{"fixext1 wrong size", ir.FromFixExt1(1, []byte{1, 2})},
		{"map key value mismatch", &ir.Node{
			Marker:  0x81,
			Variant: wire.FixMap,
			Fields:  []*ir.Node{ir.FromFixStr("k")},
			Values:  []*ir.Node{},
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Value(test.node)
			if !errors.Is(err, ErrValueOutOfRange) {
				t.Errorf("got %v, want ErrValueOutOfRange", err)
			}
		})
	}
}

func TestInconsistentMarker(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
	}{
		{"uint8 with int8 marker", &ir.Node{Marker: 0xD0, Variant: wire.UInt8, Uint: 1}},
		{"fixpos marker disagrees with value", &ir.Node{Marker: 0x05, Variant: wire.FixPos, Uint: 6}},
		{"fixarray marker wrong count", &ir.Node{
			Marker:  0x92,
			Variant: wire.FixArray,
			Values:  []*ir.Node{ir.FromNil()},
		}},
		{"fixstr marker wrong length", &ir.Node{Marker: 0xA5, Variant: wire.FixStr, String: "ab"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Value(test.node)
			if !errors.Is(err, ErrInconsistentMarker) {
				t.Errorf("got %v, want ErrInconsistentMarker", err)
			}
		})
	}
}

func TestInvalidUTF8Rejected(t *testing.T) {
	node := &ir.Node{Marker: 0xA2, Variant: wire.FixStr, String: string([]byte{0xFF, 0xFE})}
	_, err := Value(node)
	if !errors.Is(err, ErrInvalidString) {
		t.Errorf("got %v, want ErrInvalidString", err)
	}
}

func TestMustBytesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustBytes(&ir.Node{Marker: 0xD0, Variant: wire.UInt8})
}
