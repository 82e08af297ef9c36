package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const prospectColumns = `id, name, position, college, height_ft, weight_lbs,
	        arm_length_in, hand_size_in, grade, round_projection, status,
	        source, source_priority, created_at, updated_at`

func scanProspect(row pgx.Row) (*Prospect, error) {
	var p Prospect
	err := row.Scan(&p.ID, &p.Name, &p.Position, &p.College, &p.HeightFt,
		&p.WeightLbs, &p.ArmLengthIn, &p.HandSizeIn, &p.Grade,
		&p.RoundProjection, &p.Status, &p.Source, &p.SourcePriority,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProspectByID retrieves a prospect by its ID
func (db *DB) GetProspectByID(ctx context.Context, id uuid.UUID) (*Prospect, error) {
	p, err := scanProspect(db.pool.QueryRow(ctx,
		`SELECT `+prospectColumns+` FROM prospects WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prospect: %w", err)
	}
	return p, nil
}

// GetProspectByIdentity retrieves a prospect by its unique (name, position, college) triple
func (db *DB) GetProspectByIdentity(ctx context.Context, name, position, college string) (*Prospect, error) {
	p, err := scanProspect(db.pool.QueryRow(ctx,
		`SELECT `+prospectColumns+` FROM prospects
		 WHERE name = $1 AND position = $2 AND college = $3`,
		name, position, college))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prospect by identity: %w", err)
	}
	return p, nil
}

// UpsertProspect creates a prospect or refines an existing one keyed by
// (name, position, college). A measurable is only overwritten when the
// incoming source priority is at least the stored one, and an incoming NULL
// never replaces a stored value.
func (db *DB) UpsertProspect(ctx context.Context, input *ProspectUpsertInput) (*Prospect, error) {
	return upsertProspect(ctx, db.pool, input)
}

func upsertProspect(ctx context.Context, q querier, input *ProspectUpsertInput) (*Prospect, error) {
	if !IsValidPosition(input.Position) {
		return nil, fmt.Errorf("invalid position %q", input.Position)
	}

	p, err := scanProspect(q.QueryRow(ctx,
		`INSERT INTO prospects (name, position, college, height_ft, weight_lbs,
		                        arm_length_in, hand_size_in, grade, round_projection,
		                        status, source, source_priority)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'active', $10, $11)
		 ON CONFLICT (name, position, college) DO UPDATE SET
		     height_ft = CASE WHEN EXCLUDED.source_priority >= prospects.source_priority
		                      THEN COALESCE(EXCLUDED.height_ft, prospects.height_ft)
		                      ELSE COALESCE(prospects.height_ft, EXCLUDED.height_ft) END,
		     weight_lbs = CASE WHEN EXCLUDED.source_priority >= prospects.source_priority
		                       THEN COALESCE(EXCLUDED.weight_lbs, prospects.weight_lbs)
		                       ELSE COALESCE(prospects.weight_lbs, EXCLUDED.weight_lbs) END,
		     arm_length_in = CASE WHEN EXCLUDED.source_priority >= prospects.source_priority
		                          THEN COALESCE(EXCLUDED.arm_length_in, prospects.arm_length_in)
		                          ELSE COALESCE(prospects.arm_length_in, EXCLUDED.arm_length_in) END,
		     hand_size_in = CASE WHEN EXCLUDED.source_priority >= prospects.source_priority
		                         THEN COALESCE(EXCLUDED.hand_size_in, prospects.hand_size_in)
		                         ELSE COALESCE(prospects.hand_size_in, EXCLUDED.hand_size_in) END,
		     grade = CASE WHEN EXCLUDED.source_priority >= prospects.source_priority
		                  THEN COALESCE(EXCLUDED.grade, prospects.grade)
		                  ELSE COALESCE(prospects.grade, EXCLUDED.grade) END,
		     round_projection = CASE WHEN EXCLUDED.source_priority >= prospects.source_priority
		                             THEN COALESCE(EXCLUDED.round_projection, prospects.round_projection)
		                             ELSE COALESCE(prospects.round_projection, EXCLUDED.round_projection) END,
		     source = CASE WHEN EXCLUDED.source_priority >= prospects.source_priority
		                   THEN EXCLUDED.source ELSE prospects.source END,
		     source_priority = GREATEST(prospects.source_priority, EXCLUDED.source_priority),
		     updated_at = NOW()
		 RETURNING `+prospectColumns,
		input.Name, input.Position, input.College, input.HeightFt, input.WeightLbs,
		input.ArmLengthIn, input.HandSizeIn, input.Grade, input.RoundProjection,
		input.Source, input.SourcePriority))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert prospect: %w", err)
	}
	return p, nil
}

// ListProspectsByPosition retrieves all prospects at one canonical position.
// This is the resolver's candidate pool.
func (db *DB) ListProspectsByPosition(ctx context.Context, positions ...string) ([]Prospect, error) {
	if len(positions) == 0 {
		return nil, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+prospectColumns+` FROM prospects
		 WHERE position = ANY($1)
		 ORDER BY name, college`,
		positions)
	if err != nil {
		return nil, fmt.Errorf("failed to list prospects: %w", err)
	}
	defer rows.Close()

	var prospects []Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prospect: %w", err)
		}
		prospects = append(prospects, *p)
	}
	return prospects, nil
}

// ListProspectsOptions contains filters for listing prospects
type ListProspectsOptions struct {
	Position string // Filter by canonical position
	Status   string // Filter by status
	Name     string // Substring match on name
	Limit    int    // Pagination limit
	Offset   int    // Pagination offset
}

// ListProspects lists prospects with optional filters and pagination
func (db *DB) ListProspects(ctx context.Context, opts ListProspectsOptions) ([]Prospect, int, error) {
	var conditions []string
	var args []any
	argIndex := 1

	if opts.Position != "" {
		conditions = append(conditions, fmt.Sprintf("position = $%d", argIndex))
		args = append(args, opts.Position)
		argIndex++
	}
	if opts.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, opts.Status)
		argIndex++
	}
	if opts.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+opts.Name+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM prospects %s", whereClause)
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count prospects: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT `+prospectColumns+` FROM prospects %s
		 ORDER BY grade DESC NULLS LAST, name
		 LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list prospects: %w", err)
	}
	defer rows.Close()

	var prospects []Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, 0, err
		}
		prospects = append(prospects, *p)
	}
	return prospects, total, nil
}

// MarkProspectStatus transitions a prospect's status (active/withdrawn/drafted).
// Prospects are never hard-deleted outside of DeleteProspect.
func (db *DB) MarkProspectStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status != StatusActive && status != StatusWithdrawn && status != StatusDrafted {
		return fmt.Errorf("invalid status %q", status)
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE prospects SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("failed to mark prospect status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("prospect not found: %s", id)
	}
	return nil
}

// DeleteProspect removes a prospect and all its grade records (via cascade)
func (db *DB) DeleteProspect(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM prospects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prospect: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("prospect not found: %s", id)
	}
	return nil
}
