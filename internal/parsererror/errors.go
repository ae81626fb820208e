// Package parsererror defines the error types surfaced by the conversion core.
package parsererror

import "fmt"

// ParseError represents a failure to read or parse an input file. It is the
// only error the conversion core produces for a file: malformed rows,
// unparseable numbers and missing columns are recovered locally and never
// reach this type.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
