package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/tenant"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type tenantRepository struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepository{db: db}
}

// Create implements tenant.TenantRepository.
func (r *tenantRepository) Create(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenants (slug, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Slug, t.Name).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("failed to create tenant: %w", err)
	}

	return t, nil
}

// GetBySlug implements tenant.TenantRepository.
func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, slug, name, created_at, updated_at
		FROM tenants
		WHERE slug = $1
	`

	var t tenant.Tenant
	err := q.QueryRow(ctx, query, slug).Scan(&t.ID, &t.Slug, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Tenant{}, tenant.ErrTenantNotFound
		}
		return tenant.Tenant{}, fmt.Errorf("failed to get tenant by slug: %w", err)
	}

	return t, nil
}

// SlugExists implements tenant.TenantRepository.
func (r *tenantRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tenants WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}
