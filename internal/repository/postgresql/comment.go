package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/comment"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type commentRepository struct {
	db *database.DB
}

func NewCommentRepository(db *database.DB) comment.CommentRepository {
	return &commentRepository{db: db}
}

// Create implements comment.CommentRepository.
func (r *commentRepository) Create(ctx context.Context, c comment.Comment) (comment.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO comments (worker_id, tenant, text, is_new, replies, has_unread_admin_reply, last_reply_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.WorkerID, c.Tenant, c.Text, c.IsNew, c.Replies, c.HasUnreadAdminReply, c.LastReplyAt,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return comment.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return c, nil
}

const commentListColumns = `
	c.id, c.worker_id, c.tenant, c.text, c.is_new, c.replies,
	c.has_unread_admin_reply, c.last_reply_at, c.created_at, c.updated_at,
	w.name AS worker_name, w.photo AS worker_photo, d.name AS department_name
`

const commentListJoins = `
	FROM comments c
	LEFT JOIN workers w ON w.id = c.worker_id
	LEFT JOIN departments d ON d.id = w.department_id
`

func scanCommentRow(row pgx.Row) (comment.Comment, error) {
	var c comment.Comment
	err := row.Scan(
		&c.ID, &c.WorkerID, &c.Tenant, &c.Text, &c.IsNew, &c.Replies,
		&c.HasUnreadAdminReply, &c.LastReplyAt, &c.CreatedAt, &c.UpdatedAt,
		&c.WorkerName, &c.WorkerPhoto, &c.DepartmentName,
	)
	return c, err
}

// GetByID implements comment.CommentRepository.
func (r *commentRepository) GetByID(ctx context.Context, id string, tenant string) (comment.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + commentListColumns + commentListJoins + `
		WHERE c.id = $1 AND c.tenant = $2
	`

	c, err := scanCommentRow(q.QueryRow(ctx, query, id, tenant))
	if err != nil {
		if err == pgx.ErrNoRows {
			return comment.Comment{}, comment.ErrCommentNotFound
		}
		return comment.Comment{}, fmt.Errorf("failed to get comment by ID: %w", err)
	}

	return c, nil
}

func (r *commentRepository) queryComments(ctx context.Context, query string, args ...interface{}) ([]comment.Comment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		c, err := scanCommentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// List implements comment.CommentRepository.
func (r *commentRepository) List(ctx context.Context, tenant string) ([]comment.Comment, error) {
	query := `SELECT ` + commentListColumns + commentListJoins + `
		WHERE c.tenant = $1
		ORDER BY c.created_at DESC
	`
	return r.queryComments(ctx, query, tenant)
}

// ListByWorker implements comment.CommentRepository.
func (r *commentRepository) ListByWorker(ctx context.Context, workerID string, tenant string) ([]comment.Comment, error) {
	query := `SELECT ` + commentListColumns + commentListJoins + `
		WHERE c.worker_id = $1 AND c.tenant = $2
		ORDER BY c.created_at DESC
	`
	return r.queryComments(ctx, query, workerID, tenant)
}

// ListUnreadAdminReplies implements comment.CommentRepository.
func (r *commentRepository) ListUnreadAdminReplies(ctx context.Context, workerID string, tenant string) ([]comment.Comment, error) {
	query := `SELECT ` + commentListColumns + commentListJoins + `
		WHERE c.worker_id = $1 AND c.tenant = $2 AND c.has_unread_admin_reply = TRUE
		ORDER BY c.last_reply_at DESC NULLS LAST
	`
	return r.queryComments(ctx, query, workerID, tenant)
}

// Update implements comment.CommentRepository.
// AppendReply implements comment.CommentRepository. The jsonb concatenation
// happens server-side under the row's ordinary write lock, so two concurrent
// replies both land; an admin reply flags the worker's unread marker, a
// worker reply flags the admin's.
func (r *commentRepository) AppendReply(ctx context.Context, id string, tenant string, reply comment.Reply) (comment.Comment, error) {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal([]comment.Reply{reply})
	if err != nil {
		return comment.Comment{}, fmt.Errorf("failed to encode reply: %w", err)
	}

	query := `
		UPDATE comments AS c
		SET replies = COALESCE(c.replies, '[]'::jsonb) || $3::jsonb,
		    last_reply_at = $4,
		    has_unread_admin_reply = c.has_unread_admin_reply OR $5,
		    is_new = c.is_new OR NOT $5,
		    updated_at = NOW()
		WHERE c.id = $1 AND c.tenant = $2
		RETURNING c.id, c.worker_id, c.tenant, c.text, c.is_new, c.replies,
		          c.has_unread_admin_reply, c.last_reply_at, c.created_at, c.updated_at
	`

	var c comment.Comment
	err = q.QueryRow(ctx, query, id, tenant, payload, reply.CreatedAt, reply.IsAdminReply).Scan(
		&c.ID, &c.WorkerID, &c.Tenant, &c.Text, &c.IsNew, &c.Replies,
		&c.HasUnreadAdminReply, &c.LastReplyAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return comment.Comment{}, comment.ErrCommentNotFound
		}
		return comment.Comment{}, fmt.Errorf("failed to append reply: %w", err)
	}

	return c, nil
}

// MarkAllRead implements comment.CommentRepository. Clears both the new flag
// on comments and the new flag on worker replies inside each thread.
func (r *commentRepository) MarkAllRead(ctx context.Context, tenant string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE comments
		SET is_new = FALSE,
		    replies = (
		        SELECT COALESCE(jsonb_agg(
		            CASE WHEN (reply->>'is_admin_reply')::bool THEN reply
		                 ELSE jsonb_set(reply, '{is_new}', 'false')
		            END
		        ), '[]'::jsonb)
		        FROM jsonb_array_elements(replies) AS reply
		    ),
		    updated_at = NOW()
		WHERE tenant = $1
	`, tenant)
	if err != nil {
		return fmt.Errorf("failed to mark comments read: %w", err)
	}

	return nil
}

// MarkAdminRepliesRead implements comment.CommentRepository.
func (r *commentRepository) MarkAdminRepliesRead(ctx context.Context, workerID string, tenant string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE comments
		SET has_unread_admin_reply = FALSE,
		    replies = (
		        SELECT COALESCE(jsonb_agg(
		            CASE WHEN (reply->>'is_admin_reply')::bool THEN jsonb_set(reply, '{is_new}', 'false')
		                 ELSE reply
		            END
		        ), '[]'::jsonb)
		        FROM jsonb_array_elements(replies) AS reply
		    ),
		    updated_at = NOW()
		WHERE worker_id = $1 AND tenant = $2 AND has_unread_admin_reply = TRUE
	`, workerID, tenant)
	if err != nil {
		return fmt.Errorf("failed to mark admin replies read: %w", err)
	}

	return nil
}

// CountNew implements comment.CommentRepository.
func (r *commentRepository) CountNew(ctx context.Context, tenant string) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	var comments, replies int
	err := q.QueryRow(ctx, `
		SELECT
		    COUNT(*) FILTER (WHERE is_new),
		    COALESCE(SUM((
		        SELECT COUNT(*)
		        FROM jsonb_array_elements(replies) AS reply
		        WHERE NOT (reply->>'is_admin_reply')::bool AND (reply->>'is_new')::bool
		    )), 0)
		FROM comments
		WHERE tenant = $1
	`, tenant).Scan(&comments, &replies)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count new comments: %w", err)
	}

	return comments, replies, nil
}
