package tenant

import "context"

// TenantRepository is the directory every tenant-scoped operation consults
// before touching data. A slug that does not resolve here must never reach
// a query.
type TenantRepository interface {
	// Create registers a new tenant
	Create(ctx context.Context, t Tenant) (Tenant, error)

	// GetBySlug resolves a subdomain to a tenant
	GetBySlug(ctx context.Context, slug string) (Tenant, error)

	// SlugExists reports whether a subdomain is already registered
	SlugExists(ctx context.Context, slug string) (bool, error)
}
