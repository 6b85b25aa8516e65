package department

import "context"

type DepartmentRepository interface {
	// Create inserts a new department; names are stored trimmed and lowercased
	Create(ctx context.Context, d Department) (Department, error)

	// GetByID retrieves a department with tenant isolation
	GetByID(ctx context.Context, id string, tenant string) (Department, error)

	// GetByName retrieves a department by its normalized name
	GetByName(ctx context.Context, name string, tenant string) (Department, error)

	// List retrieves all departments of a tenant with worker counts,
	// newest first
	List(ctx context.Context, tenant string) ([]Department, error)

	// Delete removes a department
	Delete(ctx context.Context, id string, tenant string) error
}
