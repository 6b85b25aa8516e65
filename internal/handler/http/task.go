package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/auth"
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
	ResetAll(w http.ResponseWriter, r *http.Request)
	MyTotals(w http.ResponseWriter, r *http.Request)
	SubmitCustom(w http.ResponseWriter, r *http.Request)
	ListCustom(w http.ResponseWriter, r *http.Request)
	ListCustomMine(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	scoringService task.ScoringService
}

func NewTaskHandler(scoringService task.ScoringService) TaskHandler {
	return &TaskHandlerImpl{scoringService: scoringService}
}

func actorFromRequest(r *http.Request) (userID string, tenantSlug string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	userID, _ = claims["user_id"].(string)
	tenantSlug, _ = claims["tenant"].(string)
	if userID == "" || tenantSlug == "" {
		return "", "", auth.ErrInvalidToken
	}

	return userID, tenantSlug, nil
}

// Submit implements TaskHandler.
func (h *TaskHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	workerID, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var submitReq task.SubmitTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.WorkerID = workerID
	submitReq.Tenant = tenantSlug

	taskResp, err := h.scoringService.SubmitTask(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit service error", "error", err, "worker_id", workerID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task submitted", "worker_id", workerID, "points", taskResp.Points)
	response.Created(w, "Task submitted", taskResp)
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tasks, err := h.scoringService.ListByTenant(r.Context(), tenantSlug)
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// ListMine implements TaskHandler.
func (h *TaskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	workerID, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tasks, err := h.scoringService.ListByWorker(r.Context(), workerID, tenantSlug)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// ListRange implements TaskHandler.
func (h *TaskHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	_, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rangeReq := task.DateRangeRequest{
		Tenant:    tenantSlug,
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	tasks, err := h.scoringService.ListByDateRange(r.Context(), rangeReq)
	if err != nil {
		slog.Error("ListRange service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// ResetAll implements TaskHandler.
func (h *TaskHandlerImpl) ResetAll(w http.ResponseWriter, r *http.Request) {
	_, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.scoringService.ResetAll(r.Context(), tenantSlug); err != nil {
		slog.Error("ResetAll service error", "error", err, "tenant", tenantSlug)
		response.HandleError(w, err)
		return
	}

	slog.Info("Scores reset", "tenant", tenantSlug)
	response.SuccessWithMessage(w, "All tasks and scores reset", nil)
}

// MyTotals implements TaskHandler.
func (h *TaskHandlerImpl) MyTotals(w http.ResponseWriter, r *http.Request) {
	workerID, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totals, err := h.scoringService.GetTotals(r.Context(), workerID, tenantSlug)
	if err != nil {
		slog.Error("MyTotals service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// SubmitCustom implements TaskHandler.
func (h *TaskHandlerImpl) SubmitCustom(w http.ResponseWriter, r *http.Request) {
	workerID, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var customReq task.SubmitCustomTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&customReq); err != nil {
		slog.Error("SubmitCustom decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	customReq.WorkerID = workerID
	customReq.Tenant = tenantSlug

	taskResp, err := h.scoringService.SubmitCustomTask(r.Context(), customReq)
	if err != nil {
		slog.Error("SubmitCustom service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Custom task submitted for review", taskResp)
}

// ListCustom implements TaskHandler.
func (h *TaskHandlerImpl) ListCustom(w http.ResponseWriter, r *http.Request) {
	_, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tasks, err := h.scoringService.ListCustom(r.Context(), tenantSlug, r.URL.Query().Get("worker_id"))
	if err != nil {
		slog.Error("ListCustom service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// ListCustomMine implements TaskHandler.
func (h *TaskHandlerImpl) ListCustomMine(w http.ResponseWriter, r *http.Request) {
	workerID, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tasks, err := h.scoringService.ListCustom(r.Context(), tenantSlug, workerID)
	if err != nil {
		slog.Error("ListCustomMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// Review implements TaskHandler.
func (h *TaskHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	_, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var reviewReq task.ReviewCustomTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reviewReq.TaskID = chi.URLParam(r, "id")
	reviewReq.Tenant = tenantSlug

	taskResp, err := h.scoringService.ReviewCustomTask(r.Context(), reviewReq)
	if err != nil {
		slog.Error("Review service error", "error", err, "task_id", reviewReq.TaskID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Custom task reviewed", "task_id", reviewReq.TaskID, "status", taskResp.Status)
	response.SuccessWithMessage(w, "Review recorded", taskResp)
}
