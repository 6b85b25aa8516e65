package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/department"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (tenant, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Tenant, d.Name).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return d, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string, tenant string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant, name, created_at, updated_at
		FROM departments
		WHERE id = $1 AND tenant = $2
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id, tenant).
		Scan(&d.ID, &d.Tenant, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}

	return d, nil
}

// GetByName implements department.DepartmentRepository.
func (r *departmentRepository) GetByName(ctx context.Context, name string, tenant string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant, name, created_at, updated_at
		FROM departments
		WHERE name = $1 AND tenant = $2
	`

	var d department.Department
	err := q.QueryRow(ctx, query, name, tenant).
		Scan(&d.ID, &d.Tenant, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by name: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context, tenant string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.tenant, d.name, d.created_at, d.updated_at,
		       COUNT(w.id) AS worker_count
		FROM departments d
		LEFT JOIN workers w ON w.department_id = d.id
		WHERE d.tenant = $1
		GROUP BY d.id
		ORDER BY d.created_at DESC
	`

	rows, err := q.Query(ctx, query, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(&d.ID, &d.Tenant, &d.Name, &d.CreatedAt, &d.UpdatedAt, &d.WorkerCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, id string, tenant string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1 AND tenant = $2`, id, tenant)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
