package ir

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/NoelleStern/rmpp/wire"
)

// Document schema: every node renders as a three-field object
//
//	{"raw_marker": <0-255>, "basic_type": "<category>",
//	 "data": {"type": "<variant>", "value": <payload>}}
//
// Binary and extension bytes travel as base64 text; map payloads are
// sequences of [key, value] pairs to preserve key order and non-string
// keys.

type docData struct {
	Type  wire.Variant `json:"type"`
	Value any          `json:"value"`
}

type docEntry struct {
	RawMarker int           `json:"raw_marker"`
	BasicType wire.Category `json:"basic_type"`
	Data      docData       `json:"data"`
}

type docExt struct {
	ExtType int8   `json:"ext_type"`
	Bytes   string `json:"bytes"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	value, err := n.documentValue()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&docEntry{
		RawMarker: int(n.Marker),
		BasicType: n.Category(),
		Data:      docData{Type: n.Variant, Value: value},
	})
}

func (n *Node) documentValue() (any, error) {
	switch n.Variant {
	case wire.Nil:
		return nil, nil
	case wire.False, wire.True:
		return n.Bool, nil
	case wire.FixPos, wire.UInt8, wire.UInt16, wire.UInt32, wire.UInt64:
		return n.Uint, nil
	case wire.FixNeg, wire.Int8, wire.Int16, wire.Int32, wire.Int64:
		return n.Int, nil
	case wire.F32:
		return float64(n.Float32), nil
	case wire.F64:
		return n.Float, nil
	case wire.FixStr, wire.Str8, wire.Str16, wire.Str32:
		return n.String, nil
	case wire.Bin8, wire.Bin16, wire.Bin32:
		return base64.StdEncoding.EncodeToString(n.Bytes), nil
	case wire.FixExt1, wire.FixExt2, wire.FixExt4, wire.FixExt8, wire.FixExt16,
		wire.Ext8, wire.Ext16, wire.Ext32:
		return &docExt{
			ExtType: n.ExtType,
			Bytes:   base64.StdEncoding.EncodeToString(n.Bytes),
		}, nil
	case wire.FixArray, wire.Array16, wire.Array32:
		return n.Values, nil
	case wire.FixMap, wire.Map16, wire.Map32:
		pairs := make([][2]*Node, len(n.Fields))
		for i := range n.Fields {
			pairs[i] = [2]*Node{n.Fields[i], n.Values[i]}
		}
		return pairs, nil
	}
	return nil, fmt.Errorf("%w: unknown variant %d", ErrMalformedDocument, n.Variant)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	return n.unmarshalAt(d, "$")
}

func (n *Node) unmarshalAt(d []byte, path string) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(d, &fields); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}
	for name := range fields {
		switch name {
		case "raw_marker", "basic_type", "data":
		default:
			return fmt.Errorf("%w: %s: unexpected field %q", ErrMalformedDocument, path, name)
		}
	}
	rawMarker, ok := fields["raw_marker"]
	if !ok {
		return fmt.Errorf("%w: %s: missing raw_marker", ErrMalformedDocument, path)
	}
	rawType, ok := fields["basic_type"]
	if !ok {
		return fmt.Errorf("%w: %s: missing basic_type", ErrMalformedDocument, path)
	}
	rawData, ok := fields["data"]
	if !ok {
		return fmt.Errorf("%w: %s: missing data", ErrMalformedDocument, path)
	}

	var marker int
	if err := json.Unmarshal(rawMarker, &marker); err != nil || marker < 0 || marker > 255 {
		return fmt.Errorf("%w: %s.raw_marker: not a byte value", ErrMalformedDocument, path)
	}
	var category wire.Category
	if err := json.Unmarshal(rawType, &category); err != nil {
		return fmt.Errorf("%w: %s.basic_type: %v", ErrMalformedDocument, path, err)
	}

	dataFields := map[string]json.RawMessage{}
	if err := json.Unmarshal(rawData, &dataFields); err != nil {
		return fmt.Errorf("%w: %s.data: %v", ErrMalformedDocument, path, err)
	}
	for name := range dataFields {
		switch name {
		case "type", "value":
		default:
			return fmt.Errorf("%w: %s.data: unexpected field %q", ErrMalformedDocument, path, name)
		}
	}
	rawVariant, ok := dataFields["type"]
	if !ok {
		return fmt.Errorf("%w: %s.data: missing type", ErrMalformedDocument, path)
	}
	value, ok := dataFields["value"]
	if !ok {
		return fmt.Errorf("%w: %s.data: missing value", ErrMalformedDocument, path)
	}

	var name string
	if err := json.Unmarshal(rawVariant, &name); err != nil {
		return fmt.Errorf("%w: %s.data.type: %v", ErrMalformedDocument, path, err)
	}
	variant, ok := wire.ParseVariant(name)
	if !ok {
		return fmt.Errorf("%w: %s.data.type: unknown variant %q", ErrMalformedDocument, path, name)
	}
	if !variant.Fits(byte(marker)) {
		return fmt.Errorf("%w: %s: marker 0x%02X outside range of variant %s",
			ErrMalformedDocument, path, marker, variant)
	}
	if got := variant.Category(); got != category {
		return fmt.Errorf("%w: %s.basic_type: %s does not match variant %s (%s)",
			ErrMalformedDocument, path, category, variant, got)
	}

	n.Marker = byte(marker)
	n.Variant = variant
	return n.unmarshalValue(value, path)
}

func (n *Node) unmarshalValue(value json.RawMessage, path string) error {
	vpath := path + ".data.value"
	switch n.Variant {
	case wire.Nil:
		if string(value) != "null" {
			return fmt.Errorf("%w: %s: expected null", ErrMalformedDocument, vpath)
		}
	case wire.False, wire.True:
		if err := json.Unmarshal(value, &n.Bool); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
		if n.Bool != (n.Variant == wire.True) {
			return fmt.Errorf("%w: %s: value disagrees with variant %s",
				ErrMalformedDocument, vpath, n.Variant)
		}
	case wire.FixPos, wire.UInt8, wire.UInt16, wire.UInt32, wire.UInt64:
		if err := json.Unmarshal(value, &n.Uint); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
	case wire.FixNeg, wire.Int8, wire.Int16, wire.Int32, wire.Int64:
		if err := json.Unmarshal(value, &n.Int); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
	case wire.F32:
		var f float64
		if err := json.Unmarshal(value, &f); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
		n.Float32 = float32(f)
	case wire.F64:
		if err := json.Unmarshal(value, &n.Float); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
	case wire.FixStr, wire.Str8, wire.Str16, wire.Str32:
		if err := json.Unmarshal(value, &n.String); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
	case wire.Bin8, wire.Bin16, wire.Bin32:
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
		data, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return fmt.Errorf("%w: %s: bad base64: %v", ErrMalformedDocument, vpath, err)
		}
		n.Bytes = data
	case wire.FixExt1, wire.FixExt2, wire.FixExt4, wire.FixExt8, wire.FixExt16,
		wire.Ext8, wire.Ext16, wire.Ext32:
		ext := docExt{}
		if err := json.Unmarshal(value, &ext); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
		data, err := base64.StdEncoding.DecodeString(ext.Bytes)
		if err != nil {
			return fmt.Errorf("%w: %s.bytes: bad base64: %v", ErrMalformedDocument, vpath, err)
		}
		n.ExtType = ext.ExtType
		n.Bytes = data
	case wire.FixArray, wire.Array16, wire.Array32:
		elems := []json.RawMessage{}
		if err := json.Unmarshal(value, &elems); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
		n.Values = make([]*Node, len(elems))
		for i, elem := range elems {
			child := &Node{}
			if err := child.unmarshalAt(elem, fmt.Sprintf("%s[%d]", vpath, i)); err != nil {
				return err
			}
			n.Values[i] = child
		}
	case wire.FixMap, wire.Map16, wire.Map32:
		pairs := [][]json.RawMessage{}
		if err := json.Unmarshal(value, &pairs); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, vpath, err)
		}
		n.Fields = make([]*Node, len(pairs))
		n.Values = make([]*Node, len(pairs))
		for i, pair := range pairs {
			if len(pair) != 2 {
				return fmt.Errorf("%w: %s[%d]: map entry needs exactly [key, value]",
					ErrMalformedDocument, vpath, i)
			}
			key, val := &Node{}, &Node{}
			if err := key.unmarshalAt(pair[0], fmt.Sprintf("%s[%d][0]", vpath, i)); err != nil {
				return err
			}
			if err := val.unmarshalAt(pair[1], fmt.Sprintf("%s[%d][1]", vpath, i)); err != nil {
				return err
			}
			n.Fields[i] = key
			n.Values[i] = val
		}
	}
	return nil
}

// ToJSON renders the node as document text, optionally indented.
// Indentation affects whitespace only.
func ToJSON(n *Node, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(n, "", "  ")
	}
	return json.Marshal(n)
}

// FromJSON parses document text into a node tree. The document's
// declared markers are checked against their variants' marker ranges;
// payload width checks are the encoder's.
func FromJSON(d []byte) (*Node, error) {
	n := &Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, err
	}
	return n, nil
}
