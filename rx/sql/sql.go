// Package sql provides Observable producers backed by database/sql.
// It enables querying databases as the source of rx pipelines.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lguimbarda/min-rx/rx/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates an Observable that runs query on every subscription and
// emits one scanned value per row, in row order, then completes.
// A query, scan or iteration failure terminates the stream with OnError.
// Cancelling the subscription context stops emission without a terminal
// call.
func Query[T any](db *sql.DB, query string, scanner Scanner[T], args ...any) core.Observable[T] {
	return func(ctx context.Context, obs core.Observer[T]) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			if ctx.Err() == nil {
				obs.OnError(fmt.Errorf("query: %w", err))
			}
			return
		}
		defer rows.Close()

		for rows.Next() {
			if ctx.Err() != nil {
				return
			}
			value, err := scanner(rows)
			if err != nil {
				obs.OnError(fmt.Errorf("scan row: %w", err))
				return
			}
			obs.OnNext(value)
		}
		if ctx.Err() != nil {
			return
		}
		if err := rows.Err(); err != nil {
			obs.OnError(fmt.Errorf("iterate rows: %w", err))
			return
		}
		obs.OnCompleted()
	}
}

// QueryRow creates an Observable that runs a single-row query, emits the
// scanned value and completes. sql.ErrNoRows and scan failures are
// delivered through OnError unwrapped.
func QueryRow[T any](db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) core.Observable[T] {
	return func(ctx context.Context, obs core.Observer[T]) {
		row := db.QueryRowContext(ctx, query, args...)
		value, err := scanner(row)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			obs.OnError(err)
			return
		}
		obs.OnNext(value)
		obs.OnCompleted()
	}
}

// Exec creates an Observable that executes a statement and emits the
// number of affected rows.
func Exec(db *sql.DB, query string, args ...any) core.Observable[int64] {
	return func(ctx context.Context, obs core.Observer[int64]) {
		result, err := db.ExecContext(ctx, query, args...)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			obs.OnError(fmt.Errorf("exec: %w", err))
			return
		}
		affected, err := result.RowsAffected()
		if err != nil {
			obs.OnError(fmt.Errorf("rows affected: %w", err))
			return
		}
		obs.OnNext(affected)
		obs.OnCompleted()
	}
}
