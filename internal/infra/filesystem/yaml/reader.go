package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Reader decodes YAML documents into generic value trees
type Reader struct{}

// NewReader creates a new YAML reader
func NewReader() *Reader {
	return &Reader{}
}

// DecodeTree unmarshals data into a tree of generic values. Mappings
// decode to map[string]any, so the same accessors work for both JSON
// and YAML inputs.
func (r *Reader) DecodeTree(data []byte) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return tree, nil
}
