package worker

import (
	"context"

	"github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
)

// ActivityResponse bundles one worker's attendance history and scoring
// submissions for the admin detail view.
type ActivityResponse struct {
	Worker     WorkerResponse                `json:"worker"`
	Attendance []attendance.AttendanceRecord `json:"attendance"`
	Tasks      []task.TaskResponse           `json:"tasks"`
}

type WorkerService interface {
	// Create registers a worker under the acting admin's tenant
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	// List retrieves the acting admin's workers
	List(ctx context.Context) ([]WorkerResponse, error)

	// PublicList retrieves the directory view of a tenant's workers without
	// authentication (kiosk displays)
	PublicList(ctx context.Context, tenantSlug string) ([]PublicWorkerResponse, error)

	// Get retrieves one worker of the acting admin's tenant
	Get(ctx context.Context, id string) (WorkerResponse, error)

	// Update applies partial changes; omitted fields keep their value
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// Delete removes a worker and their submissions
	Delete(ctx context.Context, id string) error

	// Activities retrieves a worker's attendance and task history
	Activities(ctx context.Context, id string) (ActivityResponse, error)
}
