package department

import "context"

type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkerCount int    `json:"worker_count"`
	CreatedAt   string `json:"created_at"`
}

type DepartmentService interface {
	// Create registers a department under the acting admin's tenant. Names
	// are trimmed and lowercased before the uniqueness check.
	Create(ctx context.Context, name string) (DepartmentResponse, error)

	// List retrieves the tenant's departments with worker counts
	List(ctx context.Context) ([]DepartmentResponse, error)

	// Delete removes a department; fails while workers are still assigned
	Delete(ctx context.Context, id string) error
}
