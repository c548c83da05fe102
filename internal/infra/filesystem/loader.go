package filesystem

import (
	"fmt"
	"os"
)

// Loader handles file reading operations
type Loader struct{}

// NewLoader creates a new filesystem loader
func NewLoader() *Loader {
	return &Loader{}
}

// ReadAll returns the complete contents of the file at path.
func (l *Loader) ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}
