package resolving

import "fmt"

// AmbiguousMatchError means the resolver could not separate the top
// candidates by a clear margin. The record is excluded from persistence and
// surfaced for manual review.
type AmbiguousMatchError struct {
	Name        string
	College     string
	TopScore    float64
	RunnerUp    float64
	TopCandidate string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match for %q (%s): top %.1f vs runner-up %.1f",
		e.Name, e.College, e.TopScore, e.RunnerUp)
}
