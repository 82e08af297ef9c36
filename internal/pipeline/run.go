// Package pipeline provides the high-level orchestration for an ingestion run:
// scrape each configured source, normalize and resolve every record, convert
// grades, and persist, with per-source isolation of failures.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/draft-board/internal/config"
	"github.com/jonathan/draft-board/internal/db"
	"github.com/jonathan/draft-board/internal/fetch"
	"github.com/jonathan/draft-board/internal/grading"
	"github.com/jonathan/draft-board/internal/normalizing"
	"github.com/jonathan/draft-board/internal/resolving"
	"github.com/jonathan/draft-board/internal/scraping"
)

// clampedGradeConfidence caps the persisted confidence when a native grade
// fell outside the source's declared range and was clamped.
const clampedGradeConfidence = 50

// Store is the persistence surface the pipeline writes through.
// *db.DB satisfies it. PersistRecord must apply both upserts atomically: a
// grade failure must not leave the prospect write behind.
type Store interface {
	ListProspectsByPosition(ctx context.Context, positions ...string) ([]db.Prospect, error)
	PersistRecord(ctx context.Context, prospect *db.ProspectUpsertInput, grade *db.GradeUpsertInput) (*db.Prospect, *db.GradeRecord, error)
}

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Source  string `json:"source"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Config     config.Config
	Store      Store
	Verbose    bool
	OnProgress ProgressCallback

	// Adapters overrides the default board adapters, keyed by source name.
	// Used by tests and alternate transports.
	Adapters map[string]scraping.Adapter
}

func emitProgress(opts *RunOptions, source, stage, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Source: source, Stage: stage, Message: message})
	}
}

// Run executes one ingestion run over every configured source. Sources run
// concurrently, each independently rate-limited; a source-level failure is
// recorded in the report and never aborts the other sources.
func Run(ctx context.Context, opts *RunOptions) (*Report, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("pipeline: store is required")
	}
	if len(opts.Config.Sources) == 0 {
		return nil, fmt.Errorf("pipeline: no sources configured")
	}

	resolver := resolving.NewResolver(opts.Config.Match)
	cache := resolving.NewRunCache()

	report := &Report{Sources: make(map[string]*SourceSummary)}
	for _, src := range opts.Config.Sources {
		report.Sources[src.Name] = &SourceSummary{Source: src.Name}
	}

	var g errgroup.Group
	for _, src := range opts.Config.Sources {
		src := src
		summary := report.Sources[src.Name]
		g.Go(func() error {
			runSource(ctx, opts, src, resolver, cache, summary)
			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}

func runSource(ctx context.Context, opts *RunOptions, src config.SourceConfig,
	resolver *resolving.Resolver, cache *resolving.RunCache, summary *SourceSummary) {

	adapter := opts.Adapters[src.Name]
	if adapter == nil {
		limiter := fetch.NewRateLimiter(time.Duration(src.RateLimitSeconds * float64(time.Second)))
		adapter = scraping.NewBoardAdapter(src, limiter, opts.Verbose)
	}

	emitProgress(opts, src.Name, "fetch", "fetching listings")
	records, err := adapter.Fetch(ctx)
	if err != nil {
		summary.SourceErr = err.Error()
		emitProgress(opts, src.Name, "fetch", "source failed: "+err.Error())
		return
	}
	summary.Fetched = len(records)

	for _, raw := range records {
		processRecord(ctx, opts, src, raw, resolver, cache, summary)
	}

	emitProgress(opts, src.Name, "done",
		fmt.Sprintf("%d fetched, %d persisted, %d unresolved",
			summary.Fetched, summary.Persisted, len(summary.Unresolved)))
}

// processRecord runs one raw record through normalize -> resolve -> convert
// -> persist. Every failure mode is recorded on the summary; nothing aborts
// the batch.
func processRecord(ctx context.Context, opts *RunOptions, src config.SourceConfig,
	raw scraping.RawCandidateRecord, resolver *resolving.Resolver,
	cache *resolving.RunCache, summary *SourceSummary) {

	rec, err := normalizing.Normalize(raw, src.PositionLabels)
	if err != nil {
		summary.Rejected++
		summary.Errors = append(summary.Errors, err.Error())
		return
	}
	summary.Normalized++

	candidates, err := loadCandidates(ctx, opts.Store, cache, rec.Position)
	if err != nil {
		summary.Failed++
		summary.Errors = append(summary.Errors, err.Error())
		return
	}

	resolution, err := resolver.Resolve(rec, candidates)
	if err != nil {
		var amb *resolving.AmbiguousMatchError
		if errors.As(err, &amb) {
			summary.Unresolved = append(summary.Unresolved, UnresolvedRecord{
				Name:         rec.Name,
				College:      rec.College,
				Position:     rec.Position,
				TopScore:     amb.TopScore,
				RunnerUp:     amb.RunnerUp,
				TopCandidate: amb.TopCandidate,
			})
			return
		}
		summary.Failed++
		summary.Errors = append(summary.Errors, err.Error())
		return
	}

	input := &db.ProspectUpsertInput{
		Name:           rec.Name,
		Position:       rec.Position,
		College:        rec.College,
		HeightFt:       rec.HeightFt,
		WeightLbs:      rec.WeightLbs,
		Source:         rec.Source,
		SourcePriority: src.Priority,
	}
	if resolution.Outcome == resolving.OutcomeMatched {
		// Refine the matched prospect under its stored identity; the
		// record's variant spelling must not spawn a new triple.
		input.Name = resolution.Prospect.Name
		input.Position = resolution.Prospect.Position
		input.College = resolution.Prospect.College
		summary.Matched++
	} else {
		summary.New++
	}

	confidence := resolution.Confidence
	var gradeInput *db.GradeUpsertInput
	if rec.RawGrade != nil {
		value, clamped := grading.Convert(*rec.RawGrade, src)
		if clamped && confidence > clampedGradeConfidence {
			confidence = clampedGradeConfidence
		}
		input.Grade = &value
		gradeInput = &db.GradeUpsertInput{
			Source:          rec.Source,
			RawGrade:        *rec.RawGrade,
			NormalizedGrade: &value,
			SourcePosition:  rec.SourcePosition,
			Confidence:      confidence,
			GradeDate:       rec.ScrapedAt.UTC().Truncate(24 * time.Hour),
		}
	}

	// One transaction per record: the prospect and its grade land together
	// or not at all.
	prospect, _, err := opts.Store.PersistRecord(ctx, input, gradeInput)
	if err != nil {
		summary.Failed++
		summary.Errors = append(summary.Errors, err.Error())
		return
	}
	cache.Add(*prospect)

	summary.Persisted++
}

// loadCandidates returns the canonical prospects adjacent to a position,
// loading them from the store once per run.
func loadCandidates(ctx context.Context, store Store, cache *resolving.RunCache, position string) ([]db.Prospect, error) {
	positions := resolving.CandidatePositions(position)
	if candidates, ok := cache.Candidates(positions...); ok {
		return candidates, nil
	}

	prospects, err := store.ListProspectsByPosition(ctx, positions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load canonical set: %w", err)
	}
	cache.Load(prospects, positions...)

	candidates, _ := cache.Candidates(positions...)
	return candidates, nil
}
