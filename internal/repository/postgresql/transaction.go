package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

// WithTransaction executes fn inside a database transaction
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either transaction or pool.
// Used in repositories to support both transactional and non-transactional operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

// AcquireTenantLock takes an exclusive transaction-scoped advisory lock on a
// tenant. Held by resets; conflicts with the shared lock submissions take, so
// no submission can interleave with a reset.
func AcquireTenantLock(ctx context.Context, q database.Querier, tenant string) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, tenant); err != nil {
		return fmt.Errorf("acquire tenant lock: %w", err)
	}
	return nil
}

// AcquireTenantLockShared takes the shared counterpart. Submissions of one
// tenant may run concurrently with each other but never with a reset.
func AcquireTenantLockShared(ctx context.Context, q database.Querier, tenant string) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock_shared(hashtext($1))`, tenant); err != nil {
		return fmt.Errorf("acquire shared tenant lock: %w", err)
	}
	return nil
}
