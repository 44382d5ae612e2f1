package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the input file does not exist.
var ErrNotFound = errors.New("input file not found")

// Attempt records one failed parse with a given delimiter.
type Attempt struct {
	Delimiter rune
	Err       error
}

// ParseError reports that every delimiter attempt failed.
type ParseError struct {
	Path     string
	Attempts []Attempt
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %d delimiter attempts failed", e.Path, len(e.Attempts))
}

// Unwrap exposes each attempt's error to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Trace renders every attempt with its full cause chain, one cause per line.
func (e *ParseError) Trace() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Error())
	for i, a := range e.Attempts {
		fmt.Fprintf(&b, "attempt %d (delimiter %q): %v\n", i+1, a.Delimiter, a.Err)
		for cause := errors.Unwrap(a.Err); cause != nil; cause = errors.Unwrap(cause) {
			fmt.Fprintf(&b, "    caused by: %v\n", cause)
		}
	}
	return b.String()
}
