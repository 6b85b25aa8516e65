package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/comment"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/jwt"
)

type CommentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	AddReply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	UnreadReplies(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	MarkRepliesRead(w http.ResponseWriter, r *http.Request)
	NewCount(w http.ResponseWriter, r *http.Request)
}

type CommentHandlerImpl struct {
	commentService comment.CommentService
}

func NewCommentHandler(commentService comment.CommentService) CommentHandler {
	return &CommentHandlerImpl{commentService: commentService}
}

// Create implements CommentHandler.
func (h *CommentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq comment.CreateCommentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	commentResp, err := h.commentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment posted", commentResp)
}

// AddReply implements CommentHandler. Whether the reply counts as an admin
// reply follows the caller's role claim.
func (h *CommentHandlerImpl) AddReply(w http.ResponseWriter, r *http.Request) {
	var replyReq comment.AddReplyRequest

	if err := json.NewDecoder(r.Body).Decode(&replyReq); err != nil {
		slog.Error("AddReply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	replyReq.CommentID = chi.URLParam(r, "id")

	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		role, _ := claims["role"].(string)
		replyReq.IsAdminReply = role == string(jwt.RoleAdmin)
	}

	commentResp, err := h.commentService.AddReply(r.Context(), replyReq)
	if err != nil {
		slog.Error("AddReply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reply added", commentResp)
}

// List implements CommentHandler.
func (h *CommentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.List(r.Context())
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, comments)
}

// ListMine implements CommentHandler.
func (h *CommentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, comments)
}

// UnreadReplies implements CommentHandler.
func (h *CommentHandlerImpl) UnreadReplies(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.UnreadReplies(r.Context())
	if err != nil {
		slog.Error("UnreadReplies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, comments)
}

// MarkAllRead implements CommentHandler.
func (h *CommentHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.commentService.MarkAllRead(r.Context()); err != nil {
		slog.Error("MarkAllRead service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All comments marked as read", nil)
}

// MarkRepliesRead implements CommentHandler.
func (h *CommentHandlerImpl) MarkRepliesRead(w http.ResponseWriter, r *http.Request) {
	if err := h.commentService.MarkRepliesRead(r.Context()); err != nil {
		slog.Error("MarkRepliesRead service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin replies marked as read", nil)
}

// NewCount implements CommentHandler.
func (h *CommentHandlerImpl) NewCount(w http.ResponseWriter, r *http.Request) {
	countResp, err := h.commentService.NewCount(r.Context())
	if err != nil {
		slog.Error("NewCount service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, countResp)
}
