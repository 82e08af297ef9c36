package normalizing

import (
	"strings"

	"github.com/jonathan/draft-board/internal/db"
)

// defaultPositionLabels maps widely used native labels to the canonical
// enumeration. Per-source tables from configuration take precedence; this
// covers sources that use the common taxonomy.
var defaultPositionLabels = map[string]string{
	"QB":   db.PositionQB,
	"RB":   db.PositionRB,
	"HB":   db.PositionRB,
	"FB":   db.PositionFB,
	"WR":   db.PositionWR,
	"TE":   db.PositionTE,
	"OL":   db.PositionOL,
	"OT":   db.PositionOL,
	"OG":   db.PositionOL,
	"G":    db.PositionOL,
	"C":    db.PositionOL,
	"IOL":  db.PositionOL,
	"DL":   db.PositionDL,
	"DT":   db.PositionDL,
	"NT":   db.PositionDL,
	"DE":   db.PositionEDGE,
	"EDGE": db.PositionEDGE,
	"OLB":  db.PositionLB,
	"ILB":  db.PositionLB,
	"LB":   db.PositionLB,
	"MLB":  db.PositionLB,
	"CB":   db.PositionDB,
	"S":    db.PositionDB,
	"FS":   db.PositionDB,
	"SS":   db.PositionDB,
	"DB":   db.PositionDB,
	"K":    db.PositionK,
	"PK":   db.PositionK,
	"P":    db.PositionP,
}

// lookupPosition resolves a source-native label against the per-source table
// first, then the default table. Matching is case-insensitive.
func lookupPosition(label string, positionLabels map[string]string) (string, bool) {
	trimmed := strings.TrimSpace(label)
	upper := strings.ToUpper(trimmed)

	canonical, ok := positionLabels[trimmed]
	if !ok {
		canonical, ok = positionLabels[upper]
	}
	if ok {
		if db.IsValidPosition(canonical) {
			return canonical, true
		}
		return "", false
	}
	if canonical, ok = defaultPositionLabels[upper]; ok {
		return canonical, true
	}
	return "", false
}
