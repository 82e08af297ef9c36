package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// querier is the statement surface shared by the pool and a transaction, so
// the upsert statements can run in either.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PersistRecord upserts a prospect and its grade observation in a single
// transaction: a failure on either statement rolls back both, so a record
// never leaves a refined prospect behind without its grade. gradeInput may be
// nil for records that carry no grade; its ProspectID is taken from the
// upserted prospect.
func (db *DB) PersistRecord(ctx context.Context, prospectInput *ProspectUpsertInput, gradeInput *GradeUpsertInput) (*Prospect, *GradeRecord, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := upsertProspect(ctx, tx, prospectInput)
	if err != nil {
		return nil, nil, err
	}

	var g *GradeRecord
	if gradeInput != nil {
		withID := *gradeInput
		withID.ProspectID = p.ID
		g, err = upsertGrade(ctx, tx, &withID)
		if err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, g, nil
}
