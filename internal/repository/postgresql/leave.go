package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/leave"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves
			(worker_id, tenant, leave_type, start_date, end_date, total_days, reason, status, worker_viewed, document)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.WorkerID, l.Tenant, l.LeaveType, l.StartDate, l.EndDate,
		l.TotalDays, l.Reason, l.Status, l.WorkerViewed, l.Document,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

const leaveListColumns = `
	l.id, l.worker_id, l.tenant, l.leave_type, l.start_date, l.end_date,
	l.total_days, l.reason, l.status, l.worker_viewed, l.document,
	l.created_at, l.updated_at,
	w.name AS worker_name, w.photo AS worker_photo, d.name AS department_name
`

const leaveListJoins = `
	FROM leaves l
	LEFT JOIN workers w ON w.id = l.worker_id
	LEFT JOIN departments d ON d.id = w.department_id
`

func scanLeaveRow(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.WorkerID, &l.Tenant, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.TotalDays, &l.Reason, &l.Status, &l.WorkerViewed, &l.Document,
		&l.CreatedAt, &l.UpdatedAt,
		&l.WorkerName, &l.WorkerPhoto, &l.DepartmentName,
	)
	return l, err
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string, tenant string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveListColumns + leaveListJoins + `
		WHERE l.id = $1 AND l.tenant = $2
	`

	l, err := scanLeaveRow(q.QueryRow(ctx, query, id, tenant))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave by ID: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) queryLeaves(ctx context.Context, query string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeaveRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, tenant string, status string) ([]leave.Leave, error) {
	query := `SELECT ` + leaveListColumns + leaveListJoins + `
		WHERE l.tenant = $1
	`
	args := []interface{}{tenant}

	if status != "" {
		query += ` AND l.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY l.created_at DESC`

	return r.queryLeaves(ctx, query, args...)
}

// ListByWorker implements leave.LeaveRepository.
func (r *leaveRepository) ListByWorker(ctx context.Context, workerID string, tenant string) ([]leave.Leave, error) {
	query := `SELECT ` + leaveListColumns + leaveListJoins + `
		WHERE l.worker_id = $1 AND l.tenant = $2
		ORDER BY l.created_at DESC
	`
	return r.queryLeaves(ctx, query, workerID, tenant)
}

// ListByDateRange implements leave.LeaveRepository.
func (r *leaveRepository) ListByDateRange(ctx context.Context, tenant string, start time.Time, end time.Time) ([]leave.Leave, error) {
	query := `SELECT ` + leaveListColumns + leaveListJoins + `
		WHERE l.tenant = $1
		  AND (l.start_date BETWEEN $2 AND $3 OR l.end_date BETWEEN $2 AND $3)
		ORDER BY l.created_at DESC
	`
	return r.queryLeaves(ctx, query, tenant, start, end)
}

// SetStatus implements leave.LeaveRepository. The decision resets
// worker_viewed so the worker is notified exactly once.
func (r *leaveRepository) SetStatus(ctx context.Context, id string, tenant string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leaves
		SET status = $1, worker_viewed = FALSE, updated_at = NOW()
		WHERE id = $2 AND tenant = $3
	`, status, id, tenant)
	if err != nil {
		return fmt.Errorf("failed to set leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// SetWorkerViewed implements leave.LeaveRepository.
func (r *leaveRepository) SetWorkerViewed(ctx context.Context, id string, tenant string, viewed bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leaves SET worker_viewed = $1, updated_at = NOW() WHERE id = $2 AND tenant = $3`,
		viewed, id, tenant,
	)
	if err != nil {
		return fmt.Errorf("failed to set worker viewed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// MarkAllViewed implements leave.LeaveRepository.
func (r *leaveRepository) MarkAllViewed(ctx context.Context, workerID string, tenant string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE leaves SET worker_viewed = TRUE, updated_at = NOW() WHERE worker_id = $1 AND tenant = $2 AND worker_viewed = FALSE`,
		workerID, tenant,
	)
	if err != nil {
		return fmt.Errorf("failed to mark leaves viewed: %w", err)
	}

	return nil
}

// CountPendingUnviewed implements leave.LeaveRepository.
func (r *leaveRepository) CountPendingUnviewed(ctx context.Context, tenant string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leaves WHERE tenant = $1 AND status = $2`,
		tenant, leave.StatusPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}

	return count, nil
}
