package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/comment"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type CommentServiceImpl struct {
	db *database.DB
	comment.CommentRepository
}

func NewCommentService(db *database.DB, commentRepository comment.CommentRepository) comment.CommentService {
	return &CommentServiceImpl{
		db:                db,
		CommentRepository: commentRepository,
	}
}

func actorFromContext(ctx context.Context) (userID string, tenantSlug string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ = claims["user_id"].(string)
	tenantSlug, _ = claims["tenant"].(string)
	if userID == "" || tenantSlug == "" {
		return "", "", fmt.Errorf("user_id or tenant claim is missing or invalid")
	}

	return userID, tenantSlug, nil
}

func toResponse(c comment.Comment) comment.CommentResponse {
	replies := c.Replies
	if replies == nil {
		replies = []comment.Reply{}
	}

	return comment.CommentResponse{
		ID:                  c.ID,
		WorkerID:            c.WorkerID,
		WorkerName:          c.WorkerName,
		Department:          c.DepartmentName,
		WorkerPhoto:         c.WorkerPhoto,
		Text:                c.Text,
		IsNew:               c.IsNew,
		Replies:             replies,
		HasUnreadAdminReply: c.HasUnreadAdminReply,
		CreatedAt:           c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toResponses(comments []comment.Comment) []comment.CommentResponse {
	out := make([]comment.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toResponse(c))
	}
	return out
}

// Create implements comment.CommentService.
func (s *CommentServiceImpl) Create(ctx context.Context, req comment.CreateCommentRequest) (comment.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return comment.CommentResponse{}, err
	}

	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return comment.CommentResponse{}, err
	}

	created, err := s.CommentRepository.Create(ctx, comment.Comment{
		WorkerID: workerID,
		Tenant:   tenantSlug,
		Text:     req.Text,
		IsNew:    true,
		Replies:  []comment.Reply{},
	})
	if err != nil {
		return comment.CommentResponse{}, err
	}

	return toResponse(created), nil
}

// AddReply implements comment.CommentService.
func (s *CommentServiceImpl) AddReply(ctx context.Context, req comment.AddReplyRequest) (comment.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return comment.CommentResponse{}, err
	}

	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return comment.CommentResponse{}, err
	}

	c, err := s.CommentRepository.AppendReply(ctx, req.CommentID, tenantSlug, comment.Reply{
		Text:         req.Text,
		IsAdminReply: req.IsAdminReply,
		IsNew:        true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return comment.CommentResponse{}, err
	}

	return toResponse(c), nil
}

// List implements comment.CommentService.
func (s *CommentServiceImpl) List(ctx context.Context) ([]comment.CommentResponse, error) {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.List(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}

	return toResponses(comments), nil
}

// ListMine implements comment.CommentService.
func (s *CommentServiceImpl) ListMine(ctx context.Context) ([]comment.CommentResponse, error) {
	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.ListByWorker(ctx, workerID, tenantSlug)
	if err != nil {
		return nil, err
	}

	return toResponses(comments), nil
}

// UnreadReplies implements comment.CommentService.
func (s *CommentServiceImpl) UnreadReplies(ctx context.Context) ([]comment.CommentResponse, error) {
	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.ListUnreadAdminReplies(ctx, workerID, tenantSlug)
	if err != nil {
		return nil, err
	}

	return toResponses(comments), nil
}

// MarkAllRead implements comment.CommentService.
func (s *CommentServiceImpl) MarkAllRead(ctx context.Context) error {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.CommentRepository.MarkAllRead(ctx, tenantSlug)
}

// MarkRepliesRead implements comment.CommentService.
func (s *CommentServiceImpl) MarkRepliesRead(ctx context.Context) error {
	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.CommentRepository.MarkAdminRepliesRead(ctx, workerID, tenantSlug)
}

// NewCount implements comment.CommentService.
func (s *CommentServiceImpl) NewCount(ctx context.Context) (comment.NewCountResponse, error) {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return comment.NewCountResponse{}, err
	}

	comments, replies, err := s.CommentRepository.CountNew(ctx, tenantSlug)
	if err != nil {
		return comment.NewCountResponse{}, err
	}

	return comment.NewCountResponse{
		NewCommentCount: comments,
		NewReplyCount:   replies,
		TotalNewCount:   comments + replies,
	}, nil
}
