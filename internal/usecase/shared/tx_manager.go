package shared

import (
	"context"
	"log/slog"
	"time"

	sqlc "hydro-command/internal/infra/sqlc/generated"
	"hydro-command/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Postgres codes worth another attempt. Concurrent ingests for one device
// can deadlock on the device row; a claim can hit lock_not_available when
// the sweeper holds the command rows.
var retryableCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

// RunInTx runs fn in one transaction and retries it up to maxRetries times
// on transient lock conflicts. fn must be safe to rerun.
func RunInTx(ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn func(tx sqlc.DBTX) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = runOnce(ctx, pool, fn); err == nil || !isRetryable(err) {
			return err
		}
		if attempt == maxRetries {
			slog.ErrorContext(ctx, "transaction gave up", "attempts", attempt+1, "error", err)
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := time.Duration(attempt+1) * 50 * time.Millisecond
		slog.WarnContext(ctx, "retrying transaction", "attempt", attempt+1, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func runOnce(ctx context.Context, pool *pgxpool.Pool, fn func(tx sqlc.DBTX) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	return errs.As(err, &pgErr) && retryableCodes[pgErr.Code]
}
