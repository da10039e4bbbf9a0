package transform

import (
	"fmt"
	"strings"
)

// SchemaError reports that required role columns are missing from the input
// dataset. It is fatal for the update pass: no radar is built.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset schema missing required roles: %s", strings.Join(e.Missing, ", "))
}

// UnknownRingError reports a row whose ring name is not in the fixed ring
// set. It is recovered per-row: the row is skipped and processing continues.
type UnknownRingError struct {
	Row  int    // zero-based index in the input dataset
	Ring string // the offending ring name
}

func (e *UnknownRingError) Error() string {
	return fmt.Sprintf("row %d: unknown ring %q", e.Row, e.Ring)
}
