package ir

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoolDocument(t *testing.T) {
	// The single byte 0xC3 and this document are two spellings of the
	// same value.
	want := `{"raw_marker":195,"basic_type":"Bool","data":{"type":"True","value":true}}`

	d, err := ToJSON(FromBool(true), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}

	node, err := FromJSON([]byte(want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(node, FromBool(true)) {
		t.Errorf("parsed node %+v differs from FromBool(true)", node)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	nodes := []*Node{
		FromNil(),
		FromBool(false),
		FromFixPos(127),
		FromFixNeg(-32),
		FromUint64(18446744073709551615),
		FromInt64(-9223372036854775808),
		FromF32(1.5),
		FromF64(-0.25),
		FromFixStr("hello"),
		FromStr16("longer text"),
		FromBin8([]byte{0, 1, 2, 255}),
		FromFixExt4(12, []byte{1, 2, 3, 4}),
		FromExt16(-128, []byte("payload")),
		FromFixArray(FromFixPos(1), FromFixStr("a"), FromNil()),
		FromArray32(FromFixArray()),
		FromFixMap(
			Pair{Key: FromFixStr("int"), Value: FromFixPos(1)},
			Pair{Key: FromFixPos(7), Value: FromBool(true)},
		),
		FromMap32(Pair{Key: FromNil(), Value: FromNil()}),
	}
	for _, node := range nodes {
		t.Run(node.Variant.String(), func(t *testing.T) {
			d, err := ToJSON(node, false)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			back, err := FromJSON(d)
			if err != nil {
				t.Fatalf("unmarshal %s: %v", d, err)
			}
			if !Equal(node, back) {
				t.Errorf("round trip changed the node:\n in: %+v\nout: %+v", node, back)
			}
		})
	}
}

func TestPrettyChangesWhitespaceOnly(t *testing.T) {
	node := FromFixMap(Pair{Key: FromFixStr("k"), Value: FromFixPos(1)})
	plain, err := ToJSON(node, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pretty, err := ToJSON(node, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var a, b any
	if err := json.Unmarshal(plain, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(pretty, &b); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("pretty output differs structurally (-plain +pretty):\n%s", diff)
	}
}

func TestLargeIntegerDigitsPreserved(t *testing.T) {
	// Our own bridge keeps full 64-bit precision; loss only occurs in
	// generic readers that coerce to doubles.
	d, err := ToJSON(FromUint64(18446744073709551615), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(d), "18446744073709551615") {
		t.Errorf("digits were not preserved: %s", d)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Uint != 18446744073709551615 {
		t.Errorf("got %d", back.Uint)
	}
}

func TestMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `5`},
		{"missing raw_marker", `{"basic_type":"Bool","data":{"type":"True","value":true}}`},
		{"missing basic_type", `{"raw_marker":195,"data":{"type":"True","value":true}}`},
		{"missing data", `{"raw_marker":195,"basic_type":"Bool"}`},
		{"extra field", `{"raw_marker":195,"basic_type":"Bool","data":{"type":"True","value":true},"x":1}`},
		{"marker out of byte range", `{"raw_marker":300,"basic_type":"Bool","data":{"type":"True","value":true}}`},
		{"unknown category", `{"raw_marker":195,"basic_type":"Truthy","data":{"type":"True","value":true}}`},
		{"unknown variant", `{"raw_marker":195,"basic_type":"Bool","data":{"type":"Perhaps","value":true}}`},
		{"category variant mismatch", `{"raw_marker":195,"basic_type":"Number","data":{"type":"True","value":true}}`},
		{"marker outside variant range", `{"raw_marker":0,"basic_type":"Bool","data":{"type":"True","value":true}}`},
		{"bool value disagrees", `{"raw_marker":195,"basic_type":"Bool","data":{"type":"True","value":false}}`},
		{"missing data type", `{"raw_marker":195,"basic_type":"Bool","data":{"value":true}}`},
		{"missing data value", `{"raw_marker":195,"basic_type":"Bool","data":{"type":"True"}}`},
		{"extra data field", `{"raw_marker":195,"basic_type":"Bool","data":{"type":"True","value":true,"y":2}}`},
		{"mistyped number", `{"raw_marker":1,"basic_type":"Number","data":{"type":"FixPos","value":"1"}}`},
		{"fractional uint", `{"raw_marker":1,"basic_type":"Number","data":{"type":"FixPos","value":1.5}}`},
		{"bad base64", `{"raw_marker":196,"basic_type":"Binary","data":{"type":"Bin8","value":"!!!"}}`},
		{"nil with payload", `{"raw_marker":192,"basic_type":"Nil","data":{"type":"Nil","value":7}}`},
		{"map entry not a pair", `{"raw_marker":129,"basic_type":"Map","data":{"type":"FixMap","value":[[{"raw_marker":192,"basic_type":"Nil","data":{"type":"Nil","value":null}}]]}}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FromJSON([]byte(test.doc))
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("got %v, want ErrMalformedDocument", err)
			}
		})
	}
}

func TestMalformedErrorNamesPath(t *testing.T) {
	doc := `{"raw_marker":145,"basic_type":"Array","data":{"type":"FixArray","value":[` +
		`{"raw_marker":192,"basic_type":"Nil","data":{"type":"Nil","value":7}}]}}`
	_, err := FromJSON([]byte(doc))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "$.data.value[0]") {
		t.Errorf("error does not name the offending path: %v", err)
	}
}
