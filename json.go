package rmpp

import (
	"github.com/NoelleStern/rmpp/debug"
	"github.com/NoelleStern/rmpp/decode"
	"github.com/NoelleStern/rmpp/ir"
)

// UnpackJSON decodes a MessagePack buffer and renders it as document
// text. The pretty flag controls whitespace only.
func UnpackJSON(data []byte, pretty bool, opts ...decode.Option) (string, error) {
	node, err := Unpack(data, opts...)
	if err != nil {
		return "", err
	}
	d, err := ir.ToJSON(node, pretty)
	if err != nil {
		return "", err
	}
	if debug.Bridge() {
		debug.Logf("rmpp: rendered %s as %d document bytes", node.Variant, len(d))
	}
	return string(d), nil
}

// PackJSON parses document text and encodes it to MessagePack binary.
// Schema violations fail with ir.ErrMalformedDocument; payloads that
// do not fit their declared variant fail with the encoder's errors.
func PackJSON(doc string) ([]byte, error) {
	node, err := ir.FromJSON([]byte(doc))
	if err != nil {
		return nil, err
	}
	if debug.Bridge() {
		debug.Logf("rmpp: parsed %d document bytes into %s", len(doc), node.Variant)
	}
	return Pack(node)
}
