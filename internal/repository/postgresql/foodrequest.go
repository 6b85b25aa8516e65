package postgresql

import (
	"context"
	"fmt"

	"github.com/tracklabs/workforce-backend-go/internal/domain/foodrequest"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type foodRequestRepository struct {
	db *database.DB
}

func NewFoodRequestRepository(db *database.DB) foodrequest.FoodRequestRepository {
	return &foodRequestRepository{db: db}
}

// Create implements foodrequest.FoodRequestRepository.
func (r *foodRequestRepository) Create(ctx context.Context, fr foodrequest.FoodRequest) (foodrequest.FoodRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO food_requests (worker_id, tenant, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, fr.WorkerID, fr.Tenant, fr.Date, fr.Status).
		Scan(&fr.ID, &fr.CreatedAt)
	if err != nil {
		return foodrequest.FoodRequest{}, fmt.Errorf("failed to create food request: %w", err)
	}

	return fr, nil
}

// ExistsForDate implements foodrequest.FoodRequestRepository.
func (r *foodRequestRepository) ExistsForDate(ctx context.Context, workerID string, tenant string, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM food_requests WHERE worker_id = $1 AND tenant = $2 AND date = $3)`,
		workerID, tenant, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check food request existence: %w", err)
	}

	return exists, nil
}

// ListByDate implements foodrequest.FoodRequestRepository.
func (r *foodRequestRepository) ListByDate(ctx context.Context, tenant string, date string) ([]foodrequest.FoodRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT fr.id, fr.worker_id, fr.tenant, fr.date, fr.status, fr.created_at,
		       w.name AS worker_name, d.name AS department_name
		FROM food_requests fr
		LEFT JOIN workers w ON w.id = fr.worker_id
		LEFT JOIN departments d ON d.id = w.department_id
		WHERE fr.tenant = $1 AND fr.date = $2
		ORDER BY fr.created_at ASC
	`

	rows, err := q.Query(ctx, query, tenant, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list food requests: %w", err)
	}
	defer rows.Close()

	var requests []foodrequest.FoodRequest
	for rows.Next() {
		var fr foodrequest.FoodRequest
		err := rows.Scan(&fr.ID, &fr.WorkerID, &fr.Tenant, &fr.Date, &fr.Status, &fr.CreatedAt,
			&fr.WorkerName, &fr.DepartmentName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food request: %w", err)
		}
		requests = append(requests, fr)
	}

	return requests, rows.Err()
}

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) foodrequest.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements foodrequest.SettingsRepository. The default row is created
// on first use so callers never see a missing-settings state.
func (r *settingsRepository) Get(ctx context.Context, tenant string) (foodrequest.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenant_settings (tenant, food_request_enabled)
		VALUES ($1, TRUE)
		ON CONFLICT (tenant) DO UPDATE SET tenant = EXCLUDED.tenant
		RETURNING tenant, food_request_enabled, updated_by, updated_at
	`

	var s foodrequest.Settings
	err := q.QueryRow(ctx, query, tenant).
		Scan(&s.Tenant, &s.FoodRequestEnabled, &s.UpdatedBy, &s.UpdatedAt)
	if err != nil {
		return foodrequest.Settings{}, fmt.Errorf("failed to get tenant settings: %w", err)
	}

	return s, nil
}

// Set implements foodrequest.SettingsRepository.
func (r *settingsRepository) Set(ctx context.Context, s foodrequest.Settings) (foodrequest.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenant_settings (tenant, food_request_enabled, updated_by, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (tenant) DO UPDATE
		SET food_request_enabled = EXCLUDED.food_request_enabled,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = NOW()
		RETURNING tenant, food_request_enabled, updated_by, updated_at
	`

	err := q.QueryRow(ctx, query, s.Tenant, s.FoodRequestEnabled, s.UpdatedBy).
		Scan(&s.Tenant, &s.FoodRequestEnabled, &s.UpdatedBy, &s.UpdatedAt)
	if err != nil {
		return foodrequest.Settings{}, fmt.Errorf("failed to set tenant settings: %w", err)
	}

	return s, nil
}
