package auth

import "context"

type AdminRepository interface {
	// Create inserts a new admin
	Create(ctx context.Context, a Admin) (Admin, error)

	// GetByID retrieves an admin
	GetByID(ctx context.Context, id string) (Admin, error)

	// GetByLogin retrieves an admin by username within a tenant
	GetByLogin(ctx context.Context, username string, tenant string) (Admin, error)

	// Exists reports whether an admin with the username or email is already
	// registered anywhere
	Exists(ctx context.Context, username string, email string) (bool, error)

	// Count returns the number of registered admins (bootstrap check)
	Count(ctx context.Context) (int, error)
}
