package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `
	w.id, w.tenant, w.name, w.username, w.email, w.rfid, w.password_hash,
	w.department_id, w.photo, w.total_points, w.topic_points, w.last_presence,
	w.last_submission_at, w.last_submission_data, w.created_at, w.updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.Tenant, &w.Name, &w.Username, &w.Email, &w.RFID, &w.PasswordHash,
		&w.DepartmentID, &w.Photo, &w.TotalPoints, &w.TopicPoints, &w.LastPresence,
		&w.LastSubmissionAt, &w.LastSubmissionData, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (tenant, name, username, email, rfid, password_hash, department_id, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, total_points, topic_points, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.Tenant, w.Name, w.Username, w.Email, w.RFID, w.PasswordHash, w.DepartmentID, w.Photo,
	).Scan(&w.ID, &w.TotalPoints, &w.TopicPoints, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string, tenant string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `, d.name AS department_name
		FROM workers w
		LEFT JOIN departments d ON d.id = w.department_id
		WHERE w.id = $1 AND w.tenant = $2
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id, tenant).Scan(
		&w.ID, &w.Tenant, &w.Name, &w.Username, &w.Email, &w.RFID, &w.PasswordHash,
		&w.DepartmentID, &w.Photo, &w.TotalPoints, &w.TopicPoints, &w.LastPresence,
		&w.LastSubmissionAt, &w.LastSubmissionData, &w.CreatedAt, &w.UpdatedAt,
		&w.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by ID: %w", err)
	}

	return w, nil
}

// GetByUsername implements worker.WorkerRepository.
func (r *workerRepository) GetByUsername(ctx context.Context, username string, tenant string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		WHERE w.username = $1 AND w.tenant = $2
	`

	w, err := scanWorker(q.QueryRow(ctx, query, username, tenant))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by username: %w", err)
	}

	return w, nil
}

// GetByRFIDForUpdate implements worker.WorkerRepository. The FOR UPDATE lock
// serializes concurrent scans for the same tag within the surrounding
// transaction.
func (r *workerRepository) GetByRFIDForUpdate(ctx context.Context, rfid string, tenant string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		WHERE w.rfid = $1 AND w.tenant = $2
		FOR UPDATE OF w
	`

	w, err := scanWorker(q.QueryRow(ctx, query, rfid, tenant))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by RFID: %w", err)
	}

	return w, nil
}

// SetLastPresence implements worker.WorkerRepository.
func (r *workerRepository) SetLastPresence(ctx context.Context, id string, tenant string, presence bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE workers SET last_presence = $1, updated_at = NOW() WHERE id = $2 AND tenant = $3`,
		presence, id, tenant,
	)
	if err != nil {
		return fmt.Errorf("failed to set last presence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// AddPoints implements worker.WorkerRepository.
func (r *workerRepository) AddPoints(ctx context.Context, id string, tenant string, totalDelta int, topicDelta int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE workers
		SET total_points = total_points + $1,
		    topic_points = topic_points + $2,
		    updated_at = NOW()
		WHERE id = $3 AND tenant = $4
	`, totalDelta, topicDelta, id, tenant)
	if err != nil {
		return fmt.Errorf("failed to add points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// SetLastSubmission implements worker.WorkerRepository.
func (r *workerRepository) SetLastSubmission(ctx context.Context, id string, tenant string, data map[string]interface{}) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE workers
		SET last_submission_at = NOW(),
		    last_submission_data = $1,
		    updated_at = NOW()
		WHERE id = $2 AND tenant = $3
	`, data, id, tenant)
	if err != nil {
		return fmt.Errorf("failed to set last submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// ResetScores implements worker.WorkerRepository. An empty workerID resets
// every worker in the tenant.
func (r *workerRepository) ResetScores(ctx context.Context, tenant string, workerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET total_points = 0,
		    topic_points = 0,
		    last_submission_at = NULL,
		    last_submission_data = NULL,
		    updated_at = NOW()
		WHERE tenant = $1
	`
	args := []interface{}{tenant}

	if workerID != "" {
		query += ` AND id = $2`
		args = append(args, workerID)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}
	if workerID != "" && tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context, tenant string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `, d.name AS department_name
		FROM workers w
		LEFT JOIN departments d ON d.id = w.department_id
		WHERE w.tenant = $1
		ORDER BY w.name ASC
	`

	rows, err := q.Query(ctx, query, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(
			&w.ID, &w.Tenant, &w.Name, &w.Username, &w.Email, &w.RFID, &w.PasswordHash,
			&w.DepartmentID, &w.Photo, &w.TotalPoints, &w.TopicPoints, &w.LastPresence,
			&w.LastSubmissionAt, &w.LastSubmissionData, &w.CreatedAt, &w.UpdatedAt,
			&w.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// ListByDepartment implements worker.WorkerRepository.
func (r *workerRepository) ListByDepartment(ctx context.Context, tenant string, departmentID string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		WHERE w.tenant = $1 AND w.department_id = $2
		ORDER BY w.name ASC
	`

	rows, err := q.Query(ctx, query, tenant, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers by department: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// CountByDepartment implements worker.WorkerRepository.
func (r *workerRepository) CountByDepartment(ctx context.Context, tenant string, departmentID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM workers WHERE tenant = $1 AND department_id = $2`,
		tenant, departmentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workers by department: %w", err)
	}

	return count, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE workers
		SET name = $1,
		    username = $2,
		    email = $3,
		    rfid = $4,
		    password_hash = $5,
		    department_id = $6,
		    photo = $7,
		    updated_at = NOW()
		WHERE id = $8 AND tenant = $9
	`, w.Name, w.Username, w.Email, w.RFID, w.PasswordHash, w.DepartmentID, w.Photo, w.ID, w.Tenant)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository.
func (r *workerRepository) Delete(ctx context.Context, id string, tenant string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1 AND tenant = $2`, id, tenant)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepository) fieldExists(ctx context.Context, field string, tenant string, value string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM workers WHERE tenant = $1 AND %s = $2`, field)
	args := []interface{}{tenant, value}

	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check worker %s existence: %w", field, err)
	}

	return exists, nil
}

// UsernameExists implements worker.WorkerRepository.
func (r *workerRepository) UsernameExists(ctx context.Context, tenant string, username string, excludeID string) (bool, error) {
	return r.fieldExists(ctx, "username", tenant, username, excludeID)
}

// EmailExists implements worker.WorkerRepository.
func (r *workerRepository) EmailExists(ctx context.Context, tenant string, email string, excludeID string) (bool, error) {
	return r.fieldExists(ctx, "email", tenant, email, excludeID)
}

// RFIDExists implements worker.WorkerRepository.
func (r *workerRepository) RFIDExists(ctx context.Context, tenant string, rfid string, excludeID string) (bool, error) {
	return r.fieldExists(ctx, "rfid", tenant, rfid, excludeID)
}
