package scraping

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/jonathan/draft-board/internal/config"
	"github.com/jonathan/draft-board/internal/fetch"
)

// BoardAdapter scrapes a paginated draft-board source into raw candidate
// records. All source-specific behavior comes from its config.
type BoardAdapter struct {
	cfg     config.SourceConfig
	limiter *fetch.RateLimiter
	opts    *fetch.Options
	verbose bool

	// swappable for tests
	now    func() time.Time
	render func(ctx context.Context, url string, timeout time.Duration, verbose bool) (*fetch.Result, error)
}

// NewBoardAdapter creates an adapter for one source. The limiter may be
// shared across adapters; delays are tracked per host.
func NewBoardAdapter(cfg config.SourceConfig, limiter *fetch.RateLimiter, verbose bool) *BoardAdapter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = fetch.DefaultTimeout
	}
	return &BoardAdapter{
		cfg:     cfg,
		limiter: limiter,
		opts:    &fetch.Options{Timeout: timeout, UserAgent: fetch.DefaultUserAgent},
		verbose: verbose,
		now:     time.Now,
		render:  fetch.WithBrowser,
	}
}

// Source returns the source tag recorded on every scraped record.
func (a *BoardAdapter) Source() string {
	return a.cfg.Name
}

// Fetch walks the source's pages and returns every candidate record found.
// Transient and blocking errors are retried per page with backoff; a page
// that exhausts its attempts fails the whole source.
func (a *BoardAdapter) Fetch(ctx context.Context) ([]RawCandidateRecord, error) {
	host := hostOf(a.cfg.BaseURL)
	scrapedAt := a.now().UTC()

	var records []RawCandidateRecord
	for page := 1; page <= a.cfg.Pages; page++ {
		pageURL := a.pageURL(page)

		result, err := a.fetchPage(ctx, pageURL, host)
		if err != nil {
			return nil, &SourceError{Source: a.cfg.Name, Attempts: a.cfg.MaxAttempts, Cause: err}
		}
		if result.Rendered && a.verbose {
			log.Printf("[SCRAPE] %s: %s served by browser fallback", a.cfg.Name, pageURL)
		}

		pageRecords, err := ParseGradeTable(result.HTML, a.cfg.Name, scrapedAt)
		if err != nil {
			// An empty trailing page ends pagination; a bad first page is a failure
			if page > 1 {
				break
			}
			return nil, &SourceError{Source: a.cfg.Name, Attempts: 1, Cause: err}
		}
		records = append(records, pageRecords...)
	}

	return records, nil
}

// fetchPage fetches one page, rate-limited, with retries and the rendering
// fallback on blocks.
func (a *BoardAdapter) fetchPage(ctx context.Context, pageURL, host string) (*fetch.Result, error) {
	var lastErr error

	for attempt := 0; attempt < a.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			wait := fetch.Backoff(attempt - 1)
			if a.verbose {
				log.Printf("[SCRAPE] %s: retry %d for %s after %s", a.cfg.Name, attempt, pageURL, wait)
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		if err := a.limiter.Wait(ctx, host); err != nil {
			return nil, err
		}

		if a.cfg.UseBrowser {
			rendered, err := a.render(ctx, pageURL, a.opts.Timeout, a.verbose)
			if err == nil {
				return rendered, nil
			}
			lastErr = err
			continue
		}

		result, err := fetch.URL(ctx, pageURL, a.opts)
		if err == nil {
			return result, nil
		}
		lastErr = err

		// A block means plain HTTP won't recover; switch to the rendering
		// fallback for this attempt before backing off.
		if fetch.Blocked(err) {
			if a.verbose {
				log.Printf("[SCRAPE] %s: blocked on %s, trying browser fallback", a.cfg.Name, pageURL)
			}
			rendered, renderErr := a.render(ctx, pageURL, a.opts.Timeout, a.verbose)
			if renderErr == nil {
				return rendered, nil
			}
			lastErr = renderErr
			continue
		}

		if !fetch.Retryable(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("attempts exhausted: %w", lastErr)
}

func (a *BoardAdapter) pageURL(page int) string {
	if page <= 1 {
		return a.cfg.BaseURL
	}
	parsed, err := url.Parse(a.cfg.BaseURL)
	if err != nil {
		return a.cfg.BaseURL
	}
	q := parsed.Query()
	q.Set("page", fmt.Sprintf("%d", page))
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return parsed.Host
}
