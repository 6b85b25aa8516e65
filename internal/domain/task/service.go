package task

import "context"

// ScoringService is the point-accrual engine. Submissions and reviews keep
// the invariant that a worker's total equals the sum of its non-custom task
// points plus approved custom task points since the last reset.
type ScoringService interface {
	// SubmitTask computes points for a submission and atomically reflects
	// them in the worker's running totals
	SubmitTask(ctx context.Context, req SubmitTaskRequest) (TaskResponse, error)

	// SubmitCustomTask creates a pending, zero-point task for manual review
	SubmitCustomTask(ctx context.Context, req SubmitCustomTaskRequest) (TaskResponse, error)

	// ReviewCustomTask approves or rejects a pending custom task. Decisions
	// are terminal; approving credits the worker exactly once.
	ReviewCustomTask(ctx context.Context, req ReviewCustomTaskRequest) (TaskResponse, error)

	// ResetAll deletes every task of the tenant and zeroes all worker totals,
	// serialized against concurrent submissions
	ResetAll(ctx context.Context, tenant string) error

	// ResetWorker does the same for a single worker
	ResetWorker(ctx context.Context, workerID string, tenant string) error

	// GetTotals returns a worker's running totals
	GetTotals(ctx context.Context, workerID string, tenant string) (WorkerTotalsResponse, error)

	ListByTenant(ctx context.Context, tenant string) ([]TaskResponse, error)
	ListByWorker(ctx context.Context, workerID string, tenant string) ([]TaskResponse, error)
	ListByDateRange(ctx context.Context, req DateRangeRequest) ([]TaskResponse, error)
	ListCustom(ctx context.Context, tenant string, workerID string) ([]TaskResponse, error)
}
