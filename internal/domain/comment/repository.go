package comment

import "context"

type CommentRepository interface {
	// Create inserts a new comment thread
	Create(ctx context.Context, c Comment) (Comment, error)

	// GetByID retrieves a comment with tenant isolation
	GetByID(ctx context.Context, id string, tenant string) (Comment, error)

	// List retrieves every comment of a tenant, newest first, with worker
	// details joined
	List(ctx context.Context, tenant string) ([]Comment, error)

	// ListByWorker retrieves one worker's comments, newest first
	ListByWorker(ctx context.Context, workerID string, tenant string) ([]Comment, error)

	// ListUnreadAdminReplies retrieves a worker's comments that carry an
	// unread admin reply
	ListUnreadAdminReplies(ctx context.Context, workerID string, tenant string) ([]Comment, error)

	// AppendReply appends one reply to a thread and adjusts the unread flags
	// for the replied-to side, all in a single statement so concurrent
	// replies to one thread never overwrite each other. Returns the updated
	// comment.
	AppendReply(ctx context.Context, id string, tenant string, reply Reply) (Comment, error)

	// MarkAllRead clears the admin-side unread flags for a whole tenant
	MarkAllRead(ctx context.Context, tenant string) error

	// MarkAdminRepliesRead clears the worker-side unread flags for one worker
	MarkAdminRepliesRead(ctx context.Context, workerID string, tenant string) error

	// CountNew counts comments and replies the admin has not read yet
	CountNew(ctx context.Context, tenant string) (comments int, replies int, err error)
}
