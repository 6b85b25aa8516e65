package task

import (
	"context"
	"time"
)

// TaskRepository defines data access for scoring submissions. All methods
// carry the tenant slug; DeleteByTenant exists precisely so reset can never
// reach across organizations.
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, t Task) (Task, error)

	// GetByIDForUpdate retrieves a task and locks its row for the duration of
	// the surrounding transaction. Review uses the lock to make decisions
	// terminal under concurrency.
	GetByIDForUpdate(ctx context.Context, id string, tenant string) (Task, error)

	// SetReview persists a review decision and, for approvals, the awarded
	// points
	SetReview(ctx context.Context, id string, tenant string, status Status, points int) error

	// ListByTenant retrieves every task of a tenant, newest first, with
	// worker and department names joined
	ListByTenant(ctx context.Context, tenant string) ([]Task, error)

	// ListByWorker retrieves one worker's tasks, newest first
	ListByWorker(ctx context.Context, workerID string, tenant string) ([]Task, error)

	// ListByDateRange retrieves tasks created within [start, end], newest
	// first
	ListByDateRange(ctx context.Context, tenant string, start time.Time, end time.Time) ([]Task, error)

	// ListCustom retrieves custom tasks of a tenant, optionally limited to
	// one worker (empty workerID means all), newest first
	ListCustom(ctx context.Context, tenant string, workerID string) ([]Task, error)

	// DeleteByTenant removes every task of a tenant
	DeleteByTenant(ctx context.Context, tenant string) error

	// DeleteByWorker removes one worker's tasks
	DeleteByWorker(ctx context.Context, workerID string, tenant string) error
}
