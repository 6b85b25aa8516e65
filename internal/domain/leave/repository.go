package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// Create inserts a new leave application
	Create(ctx context.Context, l Leave) (Leave, error)

	// GetByID retrieves a leave application with tenant isolation
	GetByID(ctx context.Context, id string, tenant string) (Leave, error)

	// List retrieves all applications of a tenant, newest first, with worker
	// details joined. An empty status means all statuses.
	List(ctx context.Context, tenant string, status string) ([]Leave, error)

	// ListByWorker retrieves one worker's applications, newest first
	ListByWorker(ctx context.Context, workerID string, tenant string) ([]Leave, error)

	// ListByDateRange retrieves applications whose start or end date falls
	// within [start, end]
	ListByDateRange(ctx context.Context, tenant string, start time.Time, end time.Time) ([]Leave, error)

	// SetStatus records the admin decision and resets worker_viewed
	SetStatus(ctx context.Context, id string, tenant string, status Status) error

	// SetWorkerViewed marks one application as viewed by its worker
	SetWorkerViewed(ctx context.Context, id string, tenant string, viewed bool) error

	// MarkAllViewed marks every unviewed application of one worker as viewed
	MarkAllViewed(ctx context.Context, workerID string, tenant string) error

	// CountPendingUnviewed counts new pending applications for the admin badge
	CountPendingUnviewed(ctx context.Context, tenant string) (int, error)
}
