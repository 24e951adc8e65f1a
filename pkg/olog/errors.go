package olog

import (
	"fmt"
	"strings"
)

// LoadError reports an unreadable or structurally malformed taxonomy
// document. It is fatal at startup: the process must not serve against a
// document it could not decode.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("taxonomy load: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("taxonomy load: %s", e.Reason)
}

// Unwrap exposes the underlying decode failure.
func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports missing sections and dangling cross-references found
// while validating a decoded taxonomy. Every problem is collected so one
// pass surfaces the full repair list.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("taxonomy schema: %d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}
