package worker

import "context"

// WorkerRepository defines data access for workers. Every method takes the
// tenant slug; uniqueness of username/email/rfid is tenant-scoped, never
// global.
type WorkerRepository interface {
	// Create inserts a new worker
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID retrieves a worker with tenant isolation
	GetByID(ctx context.Context, id string, tenant string) (Worker, error)

	// GetByUsername retrieves a worker by tenant-scoped username (login)
	GetByUsername(ctx context.Context, username string, tenant string) (Worker, error)

	// GetByRFIDForUpdate retrieves a worker by RFID tag and locks the row for
	// the duration of the surrounding transaction. The attendance engine uses
	// the lock to serialize concurrent scans for the same worker.
	GetByRFIDForUpdate(ctx context.Context, rfid string, tenant string) (Worker, error)

	// SetLastPresence records the outcome of a presence toggle
	SetLastPresence(ctx context.Context, id string, tenant string, presence bool) error

	// AddPoints atomically increments the worker's running totals
	AddPoints(ctx context.Context, id string, tenant string, totalDelta int, topicDelta int) error

	// SetLastSubmission overwrites the last-submission snapshot
	SetLastSubmission(ctx context.Context, id string, tenant string, data map[string]interface{}) error

	// ResetScores zeroes totals and clears the last submission for one worker
	// (empty id) or every worker of the tenant
	ResetScores(ctx context.Context, tenant string, workerID string) error

	// List retrieves all workers of a tenant with department names
	List(ctx context.Context, tenant string) ([]Worker, error)

	// ListByDepartment retrieves workers assigned to one department
	ListByDepartment(ctx context.Context, tenant string, departmentID string) ([]Worker, error)

	// CountByDepartment counts workers assigned to a department
	CountByDepartment(ctx context.Context, tenant string, departmentID string) (int, error)

	// Update persists identity fields (name, username, email, rfid,
	// department, photo, password hash)
	Update(ctx context.Context, w Worker) error

	// Delete removes a worker
	Delete(ctx context.Context, id string, tenant string) error

	// UsernameExists, EmailExists and RFIDExists check tenant-scoped
	// uniqueness, excluding one worker id (may be empty)
	UsernameExists(ctx context.Context, tenant string, username string, excludeID string) (bool, error)
	EmailExists(ctx context.Context, tenant string, email string, excludeID string) (bool, error)
	RFIDExists(ctx context.Context, tenant string, rfid string, excludeID string) (bool, error)
}
