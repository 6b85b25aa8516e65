package comment

import "context"

type CommentService interface {
	// Create posts a new comment as the acting worker
	Create(ctx context.Context, req CreateCommentRequest) (CommentResponse, error)

	// AddReply appends a reply to a thread. Admin replies flag the worker's
	// unread state; worker replies flag the admin's.
	AddReply(ctx context.Context, req AddReplyRequest) (CommentResponse, error)

	// List retrieves the tenant's comments (admin view)
	List(ctx context.Context) ([]CommentResponse, error)

	// ListMine retrieves the acting worker's comments
	ListMine(ctx context.Context) ([]CommentResponse, error)

	// UnreadReplies retrieves the acting worker's threads with unread admin
	// replies
	UnreadReplies(ctx context.Context) ([]CommentResponse, error)

	// MarkAllRead clears the admin-side unread flags for the tenant
	MarkAllRead(ctx context.Context) error

	// MarkRepliesRead clears the acting worker's unread admin replies
	MarkRepliesRead(ctx context.Context) error

	// NewCount reports unread comment and reply counts for the admin badge
	NewCount(ctx context.Context) (NewCountResponse, error)
}
