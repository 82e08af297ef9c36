package pipeline

import "sort"

// UnresolvedRecord surfaces one ambiguous candidate for manual review.
type UnresolvedRecord struct {
	Name         string  `json:"name"`
	College      string  `json:"college"`
	Position     string  `json:"position"`
	TopScore     float64 `json:"top_score"`
	RunnerUp     float64 `json:"runner_up"`
	TopCandidate string  `json:"top_candidate,omitempty"`
}

// SourceSummary is the per-source outcome of one ingestion run.
type SourceSummary struct {
	Source     string   `json:"source"`
	Fetched    int      `json:"fetched"`
	Normalized int      `json:"normalized"`
	Rejected   int      `json:"rejected"`
	Matched    int      `json:"matched"`
	New        int      `json:"new"`
	Persisted  int      `json:"persisted"`
	Failed     int      `json:"failed"`
	SourceErr  string   `json:"source_error,omitempty"` // set when the source itself failed
	Errors     []string `json:"errors,omitempty"`

	Unresolved []UnresolvedRecord `json:"unresolved,omitempty"`
}

// Report aggregates all source summaries for one run.
type Report struct {
	Sources map[string]*SourceSummary `json:"sources"`
}

// Summaries returns the per-source summaries ordered by source name.
func (r *Report) Summaries() []*SourceSummary {
	names := make([]string, 0, len(r.Sources))
	for name := range r.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*SourceSummary, 0, len(names))
	for _, name := range names {
		out = append(out, r.Sources[name])
	}
	return out
}

// Failed reports whether any source failed outright.
func (r *Report) Failed() bool {
	for _, s := range r.Sources {
		if s.SourceErr != "" {
			return true
		}
	}
	return false
}
