package leave

import "context"

type LeaveService interface {
	// Create files a leave application for the acting worker
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ListMine retrieves the acting worker's applications
	ListMine(ctx context.Context) ([]LeaveResponse, error)

	// List retrieves the tenant's applications, optionally filtered by status
	List(ctx context.Context, status string) ([]LeaveResponse, error)

	// ListByDateRange retrieves applications overlapping [start, end]
	ListByDateRange(ctx context.Context, startDate string, endDate string) ([]LeaveResponse, error)

	// UpdateStatus records the admin decision
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveResponse, error)

	// MarkViewed marks one of the acting worker's applications as viewed
	MarkViewed(ctx context.Context, leaveID string) error

	// MarkAllViewed acknowledges every outcome the acting worker has not
	// seen yet
	MarkAllViewed(ctx context.Context) error

	// PendingCount counts undecided applications for the admin badge
	PendingCount(ctx context.Context) (int, error)
}
