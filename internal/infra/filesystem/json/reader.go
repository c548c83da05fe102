package json

import (
	"encoding/json"
	"fmt"
)

// Reader decodes JSON documents into generic value trees
type Reader struct{}

// NewReader creates a new JSON reader
func NewReader() *Reader {
	return &Reader{}
}

// DecodeTree unmarshals data into a tree of generic JSON values.
func (r *Reader) DecodeTree(data []byte) (any, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return tree, nil
}
