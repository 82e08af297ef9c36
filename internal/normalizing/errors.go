// Package normalizing parses raw scraped records into typed, bounds-checked
// records. Nothing downstream of this package handles free text.
package normalizing

import "fmt"

// RejectionError means a record's identity fields (name, position, college)
// are missing or unparseable. The record is dropped; the batch continues.
type RejectionError struct {
	Field   string
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("record rejected: %s: %s", e.Field, e.Message)
}
