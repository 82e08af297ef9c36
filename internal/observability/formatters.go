// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/draft-board/internal/db"
	"github.com/jonathan/draft-board/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a per-source summary of an ingestion run.
func (p *Printer) PrintReport(report *pipeline.Report) {
	if report == nil || len(report.Sources) == 0 {
		return
	}

	var sb strings.Builder
	summaries := report.Summaries()
	for i, s := range summaries {
		if s.SourceErr != "" {
			sb.WriteString(fmt.Sprintf("✗ %s\n", s.Source))
			msg := s.SourceErr
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", msg))
		} else {
			sb.WriteString(fmt.Sprintf("• %s\n", s.Source))
			sb.WriteString(fmt.Sprintf("  fetched %d, persisted %d (%d new, %d matched)\n",
				s.Fetched, s.Persisted, s.New, s.Matched))
			if s.Rejected > 0 || s.Failed > 0 || len(s.Unresolved) > 0 {
				sb.WriteString(fmt.Sprintf("  rejected %d, failed %d, unresolved %d\n",
					s.Rejected, s.Failed, len(s.Unresolved)))
			}
		}
		if i < len(summaries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INGESTION RUN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUnresolved outputs the records that need manual identity review.
func (p *Printer) PrintUnresolved(report *pipeline.Report) {
	if report == nil {
		return
	}

	var all []pipeline.UnresolvedRecord
	for _, s := range report.Summaries() {
		all = append(all, s.Unresolved...)
	}
	if len(all) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d records need manual review:\n\n", len(all)))

	count := min(len(all), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := all[i]
		sb.WriteString(fmt.Sprintf("⚠ %s (%s, %s)\n", rec.Name, rec.Position, rec.College))
		sb.WriteString(fmt.Sprintf("  top %.1f vs runner-up %.1f", rec.TopScore, rec.RunnerUp))
		if rec.TopCandidate != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", rec.TopCandidate))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(all) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more records", len(all)-maxItemsToShow))
	}

	p.printBox("UNRESOLVED IDENTITIES", sb.String())
}

// PrintErrors outputs the per-record errors collected during a run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintErrors(report *pipeline.Report) {
	if report == nil {
		return
	}

	var all []string
	for _, s := range report.Summaries() {
		for _, e := range s.Errors {
			all = append(all, fmt.Sprintf("[%s] %s", s.Source, e))
		}
	}
	if len(all) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO RECORD ERRORS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d record errors:\n\n", len(all)))

	count := min(len(all), maxItemsToShow)
	for i := 0; i < count; i++ {
		msg := all[i]
		if len(msg) > 50 {
			msg = msg[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", msg))
	}
	if len(all) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more errors", len(all)-maxItemsToShow))
	}

	p.printBox("RECORD ERRORS", sb.String())
}

// PrintProspects outputs a board-style listing of prospects.
func (p *Printer) PrintProspects(prospects []db.Prospect, total int) {
	if len(prospects) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO PROSPECTS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d prospects:\n\n", len(prospects), total))

	for i, pr := range prospects {
		name := pr.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%-3d %s\n", i+1, name))
		line := fmt.Sprintf("     %s, %s", pr.Position, pr.College)
		if pr.Grade != nil {
			line += fmt.Sprintf("  [%.1f]", *pr.Grade)
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("DRAFT BOARD", strings.TrimSuffix(sb.String(), "\n"))
}
