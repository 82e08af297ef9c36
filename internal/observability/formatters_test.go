package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/draft-board/internal/db"
	"github.com/jonathan/draft-board/internal/pipeline"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &pipeline.Report{
		Sources: map[string]*pipeline.SourceSummary{
			"pff": {
				Source:     "pff",
				Fetched:    40,
				Normalized: 38,
				Rejected:   2,
				Matched:    30,
				New:        8,
				Persisted:  38,
			},
			"espn": {
				Source:    "espn",
				SourceErr: "blocked after 3 attempts",
			},
		},
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "INGESTION RUN")
	assert.Contains(t, output, "pff")
	assert.Contains(t, output, "fetched 40, persisted 38 (8 new, 30 matched)")
	assert.Contains(t, output, "✗ espn")
	assert.Contains(t, output, "blocked after 3 attempts")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintUnresolved(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &pipeline.Report{
		Sources: map[string]*pipeline.SourceSummary{
			"pff": {
				Source: "pff",
				Unresolved: []pipeline.UnresolvedRecord{
					{
						Name:         "Jalen Green",
						College:      "USC",
						Position:     "DB",
						TopScore:     74.3,
						RunnerUp:     73.2,
						TopCandidate: "Jalen Green (South Carolina)",
					},
				},
			},
		},
	}

	p.PrintUnresolved(report)
	output := buf.String()

	assert.Contains(t, output, "UNRESOLVED IDENTITIES")
	assert.Contains(t, output, "Jalen Green")
	assert.Contains(t, output, "74.3")
	assert.Contains(t, output, "73.2")
}

func TestPrintUnresolved_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &pipeline.Report{
		Sources: map[string]*pipeline.SourceSummary{
			"pff": {Source: "pff", Persisted: 10},
		},
	}

	p.PrintUnresolved(report)

	assert.Empty(t, buf.String())
}

func TestPrintErrors_WithErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &pipeline.Report{
		Sources: map[string]*pipeline.SourceSummary{
			"pff": {
				Source: "pff",
				Errors: []string{"record rejected: missing name"},
			},
		},
	}

	p.PrintErrors(report)
	output := buf.String()

	assert.Contains(t, output, "RECORD ERRORS")
	assert.Contains(t, output, "[pff]")
	assert.Contains(t, output, "missing name")
}

func TestPrintErrors_NoErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &pipeline.Report{
		Sources: map[string]*pipeline.SourceSummary{
			"pff": {Source: "pff", Persisted: 10},
		},
	}

	p.PrintErrors(report)
	output := buf.String()

	assert.Contains(t, output, "NO RECORD ERRORS")
}

func TestPrintProspects(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	grade := 9.2
	prospects := []db.Prospect{
		{Name: "Travis Hunter", Position: "DB", College: "Colorado", Grade: &grade},
		{Name: "Shedeur Sanders", Position: "QB", College: "Colorado"},
	}

	p.PrintProspects(prospects, 120)
	output := buf.String()

	assert.Contains(t, output, "DRAFT BOARD")
	assert.Contains(t, output, "Showing 2 of 120 prospects")
	assert.Contains(t, output, "Travis Hunter")
	assert.Contains(t, output, "DB, Colorado")
	assert.Contains(t, output, "[9.2]")
	assert.Contains(t, output, "Shedeur Sanders")
}

func TestPrintProspects_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProspects(nil, 0)

	assert.Contains(t, buf.String(), "NO PROSPECTS FOUND")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &pipeline.Report{
		Sources: map[string]*pipeline.SourceSummary{
			"a-source-with-a-very-long-name-that-never-fits-anywhere": {
				Source:    "a-source-with-a-very-long-name-that-never-fits-anywhere",
				SourceErr: "a very long error message that should be truncated to fit inside the box",
			},
		},
	}

	p.PrintReport(report)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
