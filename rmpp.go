// Package rmpp transcodes between MessagePack binary and a JSON
// document model that preserves every byte-level typing decision the
// original encoder made. Unpack keeps each value's raw marker byte and
// fine wire variant, so Pack reproduces the original buffer exactly,
// including deliberately non-minimal encodings.
package rmpp

import (
	"fmt"

	"github.com/NoelleStern/rmpp/debug"
	"github.com/NoelleStern/rmpp/decode"
	"github.com/NoelleStern/rmpp/encode"
	"github.com/NoelleStern/rmpp/ir"
)

// Unpack decodes a buffer holding exactly one MessagePack value.
// Trailing bytes after the value fail with decode.ErrTrailingData.
func Unpack(data []byte, opts ...decode.Option) (*ir.Node, error) {
	node, n, err := decode.Value(data, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d bytes after the value at offset %d",
			decode.ErrTrailingData, len(data)-n, n)
	}
	if debug.Decode() {
		debug.Logf("rmpp: unpacked %d bytes into %s", n, node.Variant)
	}
	return node, nil
}

// Pack encodes a node tree to MessagePack binary, honoring each node's
// declared variant exactly.
func Pack(node *ir.Node) ([]byte, error) {
	d, err := encode.Value(node)
	if err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("rmpp: packed %s into %d bytes", node.Variant, len(d))
	}
	return d, nil
}
