package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (worker_id, tenant, data, topic_ids, points, is_custom, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.WorkerID, t.Tenant, t.Data, t.TopicIDs, t.Points, t.IsCustom, t.Description, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByIDForUpdate implements task.TaskRepository.
func (r *taskRepository) GetByIDForUpdate(ctx context.Context, id string, tenant string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, tenant, data, topic_ids, points, is_custom, description, status,
		       created_at, updated_at
		FROM tasks
		WHERE id = $1 AND tenant = $2
		FOR UPDATE
	`

	var t task.Task
	err := q.QueryRow(ctx, query, id, tenant).Scan(
		&t.ID, &t.WorkerID, &t.Tenant, &t.Data, &t.TopicIDs, &t.Points,
		&t.IsCustom, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by ID: %w", err)
	}

	return t, nil
}

// SetReview implements task.TaskRepository.
func (r *taskRepository) SetReview(ctx context.Context, id string, tenant string, status task.Status, points int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE tasks
		SET status = $1, points = $2, updated_at = NOW()
		WHERE id = $3 AND tenant = $4
	`, status, points, id, tenant)
	if err != nil {
		return fmt.Errorf("failed to set task review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

const taskListColumns = `
	t.id, t.worker_id, t.tenant, t.data, t.topic_ids, t.points, t.is_custom,
	t.description, t.status, t.created_at, t.updated_at,
	w.name AS worker_name, d.name AS department_name
`

const taskListJoins = `
	FROM tasks t
	LEFT JOIN workers w ON w.id = t.worker_id
	LEFT JOIN departments d ON d.id = w.department_id
`

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.WorkerID, &t.Tenant, &t.Data, &t.TopicIDs, &t.Points,
			&t.IsCustom, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt,
			&t.WorkerName, &t.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// ListByTenant implements task.TaskRepository.
func (r *taskRepository) ListByTenant(ctx context.Context, tenant string) ([]task.Task, error) {
	query := `SELECT ` + taskListColumns + taskListJoins + `
		WHERE t.tenant = $1
		ORDER BY t.created_at DESC
	`
	return r.queryTasks(ctx, query, tenant)
}

// ListByWorker implements task.TaskRepository.
func (r *taskRepository) ListByWorker(ctx context.Context, workerID string, tenant string) ([]task.Task, error) {
	query := `SELECT ` + taskListColumns + taskListJoins + `
		WHERE t.worker_id = $1 AND t.tenant = $2
		ORDER BY t.created_at DESC
	`
	return r.queryTasks(ctx, query, workerID, tenant)
}

// ListByDateRange implements task.TaskRepository.
func (r *taskRepository) ListByDateRange(ctx context.Context, tenant string, start time.Time, end time.Time) ([]task.Task, error) {
	query := `SELECT ` + taskListColumns + taskListJoins + `
		WHERE t.tenant = $1 AND t.created_at BETWEEN $2 AND $3
		ORDER BY t.created_at DESC
	`
	return r.queryTasks(ctx, query, tenant, start, end)
}

// ListCustom implements task.TaskRepository.
func (r *taskRepository) ListCustom(ctx context.Context, tenant string, workerID string) ([]task.Task, error) {
	query := `SELECT ` + taskListColumns + taskListJoins + `
		WHERE t.tenant = $1 AND t.is_custom = TRUE
	`
	args := []interface{}{tenant}

	if workerID != "" {
		query += ` AND t.worker_id = $2`
		args = append(args, workerID)
	}
	query += ` ORDER BY t.created_at DESC`

	return r.queryTasks(ctx, query, args...)
}

// DeleteByTenant implements task.TaskRepository.
func (r *taskRepository) DeleteByTenant(ctx context.Context, tenant string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM tasks WHERE tenant = $1`, tenant); err != nil {
		return fmt.Errorf("failed to delete tenant tasks: %w", err)
	}

	return nil
}

// DeleteByWorker implements task.TaskRepository.
func (r *taskRepository) DeleteByWorker(ctx context.Context, workerID string, tenant string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM tasks WHERE worker_id = $1 AND tenant = $2`, workerID, tenant); err != nil {
		return fmt.Errorf("failed to delete worker tasks: %w", err)
	}

	return nil
}
