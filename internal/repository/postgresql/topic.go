package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/topic"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

type topicRepository struct {
	db *database.DB
}

func NewTopicRepository(db *database.DB) topic.TopicRepository {
	return &topicRepository{db: db}
}

// Create implements topic.TopicRepository.
func (r *topicRepository) Create(ctx context.Context, t topic.Topic) (topic.Topic, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO topics (tenant, name, points, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Tenant, t.Name, t.Points, t.Department).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return topic.Topic{}, fmt.Errorf("failed to create topic: %w", err)
	}

	return t, nil
}

// GetByID implements topic.TopicRepository.
func (r *topicRepository) GetByID(ctx context.Context, id string, tenant string) (topic.Topic, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant, name, points, department, created_at, updated_at
		FROM topics
		WHERE id = $1 AND tenant = $2
	`

	var t topic.Topic
	err := q.QueryRow(ctx, query, id, tenant).
		Scan(&t.ID, &t.Tenant, &t.Name, &t.Points, &t.Department, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return topic.Topic{}, topic.ErrTopicNotFound
		}
		return topic.Topic{}, fmt.Errorf("failed to get topic by ID: %w", err)
	}

	return t, nil
}

// uuidOnly drops ids that are not well-formed UUIDs. Malformed ids would
// fail uuid[] encoding and turn a lookup into an error; they are unresolvable
// input and get the same silent-drop treatment as unknown ids.
func uuidOnly(ids []string) []string {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validator.IsValidUUID(id) {
			valid = append(valid, id)
		}
	}
	return valid
}

// GetByIDs implements topic.TopicRepository. Unresolvable ids are dropped
// from the result rather than reported.
func (r *topicRepository) GetByIDs(ctx context.Context, ids []string, tenant string) ([]topic.Topic, error) {
	ids = uuidOnly(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant, name, points, department, created_at, updated_at
		FROM topics
		WHERE tenant = $1 AND id = ANY($2)
	`

	rows, err := q.Query(ctx, query, tenant, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get topics by IDs: %w", err)
	}
	defer rows.Close()

	var topics []topic.Topic
	for rows.Next() {
		var t topic.Topic
		err := rows.Scan(&t.ID, &t.Tenant, &t.Name, &t.Points, &t.Department, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}

	return topics, rows.Err()
}

// NameExists implements topic.TopicRepository.
func (r *topicRepository) NameExists(ctx context.Context, tenant string, name string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM topics WHERE tenant = $1 AND LOWER(name) = LOWER($2)`
	args := []interface{}{tenant, name}

	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check topic name existence: %w", err)
	}

	return exists, nil
}

// List implements topic.TopicRepository.
func (r *topicRepository) List(ctx context.Context, tenant string) ([]topic.Topic, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant, name, points, department, created_at, updated_at
		FROM topics
		WHERE tenant = $1
		ORDER BY department ASC, name ASC
	`

	rows, err := q.Query(ctx, query, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var topics []topic.Topic
	for rows.Next() {
		var t topic.Topic
		err := rows.Scan(&t.ID, &t.Tenant, &t.Name, &t.Points, &t.Department, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}

	return topics, rows.Err()
}

// Update implements topic.TopicRepository.
func (r *topicRepository) Update(ctx context.Context, t topic.Topic) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE topics
		SET name = $1, points = $2, department = $3, updated_at = NOW()
		WHERE id = $4 AND tenant = $5
	`, t.Name, t.Points, t.Department, t.ID, t.Tenant)
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return topic.ErrTopicNotFound
	}

	return nil
}

// Delete implements topic.TopicRepository.
func (r *topicRepository) Delete(ctx context.Context, id string, tenant string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM topics WHERE id = $1 AND tenant = $2`, id, tenant)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return topic.ErrTopicNotFound
	}

	return nil
}
