package comment

import "time"

// Reply is one message in a comment thread, stored inline with its comment.
type Reply struct {
	Text         string    `json:"text"`
	IsAdminReply bool      `json:"is_admin_reply"`
	IsNew        bool      `json:"is_new"`
	CreatedAt    time.Time `json:"created_at"`
}

// Comment is a worker-initiated thread the admin may reply to. IsNew tracks
// the admin's unread state; HasUnreadAdminReply tracks the worker's.
type Comment struct {
	ID       string
	WorkerID string
	Tenant   string
	Text     string
	IsNew    bool
	Replies  []Reply

	HasUnreadAdminReply bool
	LastReplyAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerName     *string
	WorkerPhoto    *string
	DepartmentName *string
}
