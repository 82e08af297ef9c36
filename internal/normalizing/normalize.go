package normalizing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/draft-board/internal/scraping"
)

// Sanity bounds for measurables. Out-of-bounds values are dropped (field set
// absent), never fatal for the record.
const (
	MinHeightFt  = 5.5
	MaxHeightFt  = 7.0
	MinWeightLbs = 150
	MaxWeightLbs = 350
)

// Record is the typed output of normalization. Measurables are nil when the
// source value was missing, unparseable, or out of bounds.
type Record struct {
	Name           string
	College        string
	Position       string // canonical enumeration
	SourcePosition string // the source's native label
	HeightFt       *float64
	WeightLbs      *int
	RawGrade       *float64
	Source         string
	ScrapedAt      time.Time
}

var (
	feetInchesRe = regexp.MustCompile(`^(\d)\s*[-'’]\s*(\d{1,2})\s*(?:"|”)?$`)
	numberRe     = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// Normalize parses one raw record into a typed Record using the source's
// position-label table. It returns a RejectionError when the matching triple
// (name, position, college) cannot be established; bad measurables are
// silently dropped to absent.
func Normalize(raw scraping.RawCandidateRecord, positionLabels map[string]string) (*Record, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, &RejectionError{Field: "name", Message: "missing"}
	}

	college := strings.TrimSpace(raw.School)
	if college == "" {
		return nil, &RejectionError{Field: "college", Message: "missing"}
	}

	sourcePos := strings.TrimSpace(raw.Position)
	if sourcePos == "" {
		return nil, &RejectionError{Field: "position", Message: "missing"}
	}
	canonical, ok := lookupPosition(sourcePos, positionLabels)
	if !ok {
		return nil, &RejectionError{Field: "position", Message: "unmapped label " + strconv.Quote(sourcePos)}
	}

	rec := &Record{
		Name:           name,
		College:        college,
		Position:       canonical,
		SourcePosition: sourcePos,
		Source:         raw.Source,
		ScrapedAt:      raw.ScrapedAt,
	}

	if h, ok := ParseHeight(raw.Height); ok && h >= MinHeightFt && h <= MaxHeightFt {
		rec.HeightFt = &h
	}
	if w, ok := ParseWeight(raw.Weight); ok && w >= MinWeightLbs && w <= MaxWeightLbs {
		rec.WeightLbs = &w
	}
	if g, err := strconv.ParseFloat(strings.TrimSpace(raw.Grade), 64); err == nil {
		rec.RawGrade = &g
	}

	return rec, nil
}

// ParseHeight converts a height string into decimal feet. Accepted forms:
// 6'2", 6-2, 74 (total inches), and 6.17 (already decimal feet).
func ParseHeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := feetInchesRe.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.Atoi(m[1])
		inches, _ := strconv.Atoi(m[2])
		if inches >= 12 {
			return 0, false
		}
		return float64(feet) + float64(inches)/12, true
	}

	if numberRe.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		// Plain numbers above 12 are total inches, below are decimal feet
		if v > 12 {
			return v / 12, true
		}
		return v, true
	}

	return 0, false
}

// ParseWeight converts a weight string into integer pounds.
func ParseWeight(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "lbs"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
