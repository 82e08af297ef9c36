// Package scraping provides source adapters that fetch draft-board listings
// and parse them into raw candidate records.
package scraping

import (
	"context"
	"time"
)

// RawCandidateRecord is the untyped unit handed to the normalizer. All fields
// except ScrapedAt are free text exactly as scraped; nothing downstream of
// the normalizer sees these strings.
type RawCandidateRecord struct {
	Name      string
	School    string
	Position  string
	Height    string
	Weight    string
	Grade     string
	Source    string
	ScrapedAt time.Time
}

// Adapter fetches one external source's listings. Fetch is finite and not
// restartable mid-stream; re-invocation re-fetches from the source.
type Adapter interface {
	Source() string
	Fetch(ctx context.Context) ([]RawCandidateRecord, error)
}
