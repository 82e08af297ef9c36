package scraping

import "fmt"

// SourceError represents a source-level scrape failure after retry exhaustion.
// It aborts only that source's processing, never the whole run.
type SourceError struct {
	Source   string
	Attempts int
	Cause    error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s failed after %d attempts: %v", e.Source, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("source %s failed after %d attempts", e.Source, e.Attempts)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// TableError represents a failure to locate or parse a grade table in a page.
type TableError struct {
	Source  string
	Message string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table error for %s: %s", e.Source, e.Message)
}
