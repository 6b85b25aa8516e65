package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tracklabs/workforce-backend-go/internal/domain/leave"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/storage"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	MarkViewed(w http.ResponseWriter, r *http.Request)
	MarkAllViewed(w http.ResponseWriter, r *http.Request)
	PendingCount(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	fileStorage  storage.FileStorage
}

func NewLeaveHandler(leaveService leave.LeaveService, fileStorage storage.FileStorage) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		fileStorage:  fileStorage,
	}
}

// Create implements LeaveHandler. Accepts JSON or multipart form data with
// an optional supporting document.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// Parse multipart form (max 5MB)
		if err := r.ParseMultipartForm(5 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Invalid form data", nil)
			return
		}

		createReq.LeaveType = r.FormValue("leave_type")
		createReq.StartDate = r.FormValue("start_date")
		createReq.EndDate = r.FormValue("end_date")
		createReq.Reason = r.FormValue("reason")
		fmt.Sscanf(r.FormValue("total_days"), "%d", &createReq.TotalDays)

		if file, fileHeader, err := r.FormFile("document"); err == nil {
			defer file.Close()

			ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
			key := fmt.Sprintf("documents/%s%s", uuid.NewString(), ext)

			docType := fileHeader.Header.Get("Content-Type")
			if docType == "" {
				docType = "application/octet-stream"
			}

			stored, err := h.fileStorage.Upload(r.Context(), file, key, docType)
			if err != nil {
				slog.Error("Document upload failed", "error", err)
				response.InternalServerError(w, "Failed to store document")
				return
			}
			createReq.Document = &stored
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			slog.Error("Create decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	leaveResp, err := h.leaveService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted", leaveResp)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListRange implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListByDateRange(r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		slog.Error("ListRange service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq leave.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.LeaveID = chi.URLParam(r, "id")

	leaveResp, err := h.leaveService.UpdateStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave reviewed", "leave_id", statusReq.LeaveID, "status", leaveResp.Status)
	response.SuccessWithMessage(w, "Leave application "+strings.ToLower(leaveResp.Status), leaveResp)
}

// MarkViewed implements LeaveHandler.
func (h *LeaveHandlerImpl) MarkViewed(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.MarkViewed(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("MarkViewed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked as viewed", nil)
}

// MarkAllViewed implements LeaveHandler.
func (h *LeaveHandlerImpl) MarkAllViewed(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.MarkAllViewed(r.Context()); err != nil {
		slog.Error("MarkAllViewed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All marked as viewed", nil)
}

// PendingCount implements LeaveHandler.
func (h *LeaveHandlerImpl) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.leaveService.PendingCount(r.Context())
	if err != nil {
		slog.Error("PendingCount service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"pending_count": count})
}
