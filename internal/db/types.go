package db

import (
	"time"

	"github.com/google/uuid"
)

// Canonical position constants for the prospects table
const (
	PositionQB   = "QB"
	PositionRB   = "RB"
	PositionFB   = "FB"
	PositionWR   = "WR"
	PositionTE   = "TE"
	PositionOL   = "OL"
	PositionDL   = "DL"
	PositionEDGE = "EDGE"
	PositionLB   = "LB"
	PositionDB   = "DB"
	PositionK    = "K"
	PositionP    = "P"
)

// Prospect status constants
const (
	StatusActive    = "active"
	StatusWithdrawn = "withdrawn"
	StatusDrafted   = "drafted"
)

// Positions lists every canonical position accepted by the prospects table.
var Positions = []string{
	PositionQB, PositionRB, PositionFB, PositionWR, PositionTE, PositionOL,
	PositionDL, PositionEDGE, PositionLB, PositionDB, PositionK, PositionP,
}

// IsValidPosition reports whether pos is one of the canonical positions.
func IsValidPosition(pos string) bool {
	for _, p := range Positions {
		if p == pos {
			return true
		}
	}
	return false
}

// Prospect represents a canonical draft prospect.
// (name, position, college) is unique and is the dedup key for matching.
type Prospect struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Position        string    `json:"position"`
	College         string    `json:"college"`
	HeightFt        *float64  `json:"height_ft,omitempty"`
	WeightLbs       *int      `json:"weight_lbs,omitempty"`
	ArmLengthIn     *float64  `json:"arm_length_in,omitempty"`
	HandSizeIn      *float64  `json:"hand_size_in,omitempty"`
	Grade           *float64  `json:"grade,omitempty"` // aggregate, 5.0-10.0
	RoundProjection *int      `json:"round_projection,omitempty"`
	Status          string    `json:"status"`
	Source          string    `json:"source"` // source that created or last refined the record
	SourcePriority  int       `json:"source_priority"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProspectUpsertInput holds the fields for creating or refining a prospect.
// Nil measurables never overwrite stored values.
type ProspectUpsertInput struct {
	Name            string
	Position        string
	College         string
	HeightFt        *float64
	WeightLbs       *int
	ArmLengthIn     *float64
	HandSizeIn      *float64
	Grade           *float64
	RoundProjection *int
	Source          string
	SourcePriority  int
}

// GradeRecord is one external source's grade observation for a prospect.
// (prospect_id, source, grade_date) is unique; re-scrapes overwrite in place.
type GradeRecord struct {
	ID              uuid.UUID `json:"id"`
	ProspectID      uuid.UUID `json:"prospect_id"`
	Source          string    `json:"source"`
	RawGrade        float64   `json:"raw_grade"`
	NormalizedGrade *float64  `json:"normalized_grade,omitempty"` // 5.0-10.0
	SourcePosition  string    `json:"source_position"`            // source-native label, may be a sub-position
	Confidence      int       `json:"confidence"`                 // 0-100 resolver confidence
	GradeDate       time.Time `json:"grade_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GradeUpsertInput holds the fields for inserting or overwriting a grade.
type GradeUpsertInput struct {
	ProspectID      uuid.UUID
	Source          string
	RawGrade        float64
	NormalizedGrade *float64
	SourcePosition  string
	Confidence      int
	GradeDate       time.Time
}
