package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sequemusic/backend/internal/domain"
)

// inTx runs fn inside a transaction. Multi-step mutations are all-or-nothing:
// any failure rolls the whole unit back before the error is returned.
func inTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return mapConflict(err)
	}
	if err := tx.Commit(); err != nil {
		return mapConflict(err)
	}
	return nil
}

// mapConflict translates driver-level concurrency failures into the retryable
// domain conflict error. Serialization failures (40001) and deadlocks (40P01)
// both mean a concurrent modification raced this unit of work.
func mapConflict(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "40001", "40P01":
			return domain.ErrConflict
		}
	}
	return err
}
