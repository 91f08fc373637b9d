package rmpp

import (
	"github.com/goccy/go-yaml"

	"github.com/NoelleStern/rmpp/decode"
)

// UnpackYAML decodes a MessagePack buffer and renders the document as
// YAML. The document schema is the same as UnpackJSON's; YAML is an
// alternate surface syntax for it.
func UnpackYAML(data []byte, opts ...decode.Option) (string, error) {
	doc, err := UnpackJSON(data, false, opts...)
	if err != nil {
		return "", err
	}
	out, err := yaml.JSONToYAML([]byte(doc))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PackYAML parses a YAML rendering of the document schema and encodes
// it to MessagePack binary.
func PackYAML(doc string) ([]byte, error) {
	jsonDoc, err := yaml.YAMLToJSON([]byte(doc))
	if err != nil {
		return nil, err
	}
	return PackJSON(string(jsonDoc))
}
