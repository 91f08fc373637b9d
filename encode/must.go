package encode

import "github.com/NoelleStern/rmpp/ir"

// MustBytes encodes a node tree known to be valid, panicking
// otherwise. Intended for fixtures and programmatically built trees.
func MustBytes(node *ir.Node) []byte {
	d, err := Value(node)
	if err != nil {
		panic(err)
	}
	return d
}
