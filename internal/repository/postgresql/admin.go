package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/auth"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepository{db: db}
}

// Create implements auth.AdminRepository.
func (r *adminRepository) Create(ctx context.Context, a auth.Admin) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admins (tenant, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.Tenant, a.Username, a.Email, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return auth.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return a, nil
}

// GetByID implements auth.AdminRepository.
func (r *adminRepository) GetByID(ctx context.Context, id string) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant, username, email, password_hash, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	var a auth.Admin
	err := q.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Tenant, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Admin{}, auth.ErrInvalidCredentials
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin by ID: %w", err)
	}

	return a, nil
}

// GetByLogin implements auth.AdminRepository.
func (r *adminRepository) GetByLogin(ctx context.Context, username string, tenant string) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant, username, email, password_hash, created_at, updated_at
		FROM admins
		WHERE username = $1 AND tenant = $2
	`

	var a auth.Admin
	err := q.QueryRow(ctx, query, username, tenant).
		Scan(&a.ID, &a.Tenant, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Admin{}, auth.ErrInvalidCredentials
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin by login: %w", err)
	}

	return a, nil
}

// Exists implements auth.AdminRepository.
func (r *adminRepository) Exists(ctx context.Context, username string, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}

	return exists, nil
}

// Count implements auth.AdminRepository.
func (r *adminRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}
