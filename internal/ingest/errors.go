package ingest

import "fmt"

// MalformedRecordError indicates a data row whose field count does not match
// the expected record shape.
type MalformedRecordError struct {
	Line int // 1-based line number in the source, header included
	Want int // Expected field count
	Got  int // Actual field count
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: expected %d fields, got %d", e.Line, e.Want, e.Got)
}
