package report

import "fmt"

// The three fatal conditions. Anything below the document's top level
// is handled by silent skips instead of errors.

// ReadError reports an input file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Error reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports input that is not syntactically valid in its
// declared format.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid %s data: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ElementError reports a required top-level element that is missing or
// not a string.
type ElementError struct {
	Name string
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("Error reading element '%s'", e.Name)
}
