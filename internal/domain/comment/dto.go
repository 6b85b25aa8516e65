package comment

import "github.com/tracklabs/workforce-backend-go/internal/pkg/validator"

type CreateCommentRequest struct {
	WorkerID string `json:"-"`
	Tenant   string `json:"-"`
	Text     string `json:"text"`
}

func (r *CreateCommentRequest) Validate() error {
	if validator.IsEmpty(r.Text) {
		return ErrEmptyText
	}
	return nil
}

type AddReplyRequest struct {
	CommentID    string `json:"-"`
	Tenant       string `json:"-"`
	IsAdminReply bool   `json:"-"`
	Text         string `json:"text"`
}

func (r *AddReplyRequest) Validate() error {
	if validator.IsEmpty(r.Text) {
		return ErrEmptyText
	}
	return nil
}

type CommentResponse struct {
	ID                  string  `json:"id"`
	WorkerID            string  `json:"worker_id"`
	WorkerName          *string `json:"worker_name,omitempty"`
	Department          *string `json:"department,omitempty"`
	WorkerPhoto         *string `json:"worker_photo,omitempty"`
	Text                string  `json:"text"`
	IsNew               bool    `json:"is_new"`
	Replies             []Reply `json:"replies"`
	HasUnreadAdminReply bool    `json:"has_unread_admin_reply"`
	CreatedAt           string  `json:"created_at"`
}

type NewCountResponse struct {
	NewCommentCount int `json:"new_comment_count"`
	NewReplyCount   int `json:"new_reply_count"`
	TotalNewCount   int `json:"total_new_count"`
}
