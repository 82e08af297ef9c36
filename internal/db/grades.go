package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const gradeColumns = `id, prospect_id, source, raw_grade, normalized_grade,
	        source_position, confidence, grade_date, created_at, updated_at`

func scanGrade(row pgx.Row) (*GradeRecord, error) {
	var g GradeRecord
	err := row.Scan(&g.ID, &g.ProspectID, &g.Source, &g.RawGrade,
		&g.NormalizedGrade, &g.SourcePosition, &g.Confidence, &g.GradeDate,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UpsertGrade inserts a grade observation or overwrites the existing one
// keyed by (prospect_id, source, grade_date). Re-scraping the same source on
// the same date must never create a second row.
func (db *DB) UpsertGrade(ctx context.Context, input *GradeUpsertInput) (*GradeRecord, error) {
	return upsertGrade(ctx, db.pool, input)
}

func upsertGrade(ctx context.Context, q querier, input *GradeUpsertInput) (*GradeRecord, error) {
	g, err := scanGrade(q.QueryRow(ctx,
		`INSERT INTO prospect_grades (prospect_id, source, raw_grade, normalized_grade,
		                              source_position, confidence, grade_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (prospect_id, source, grade_date) DO UPDATE SET
		     raw_grade = $3,
		     normalized_grade = $4,
		     source_position = $5,
		     confidence = $6,
		     updated_at = NOW()
		 RETURNING `+gradeColumns,
		input.ProspectID, input.Source, input.RawGrade, input.NormalizedGrade,
		input.SourcePosition, input.Confidence, input.GradeDate))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert grade: %w", err)
	}
	return g, nil
}

// GetGrade retrieves one grade record by its unique key
func (db *DB) GetGrade(ctx context.Context, prospectID uuid.UUID, source string, gradeDate time.Time) (*GradeRecord, error) {
	g, err := scanGrade(db.pool.QueryRow(ctx,
		`SELECT `+gradeColumns+` FROM prospect_grades
		 WHERE prospect_id = $1 AND source = $2 AND grade_date = $3`,
		prospectID, source, gradeDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grade: %w", err)
	}
	return g, nil
}

// ListGradesByProspect retrieves all grade observations for a prospect
func (db *DB) ListGradesByProspect(ctx context.Context, prospectID uuid.UUID) ([]GradeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+gradeColumns+` FROM prospect_grades
		 WHERE prospect_id = $1
		 ORDER BY grade_date DESC, source`,
		prospectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	defer rows.Close()

	var grades []GradeRecord
	for rows.Next() {
		g, err := scanGrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, *g)
	}
	return grades, nil
}

// CountGradesBySource returns the number of stored grades per source tag
func (db *DB) CountGradesBySource(ctx context.Context) (map[string]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT source, COUNT(*) FROM prospect_grades GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to count grades: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return nil, err
		}
		counts[source] = n
	}
	return counts, nil
}
