package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/topic"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
	"github.com/tracklabs/workforce-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
	CreateTopic(w http.ResponseWriter, r *http.Request)
	ListTopics(w http.ResponseWriter, r *http.Request)
	UpdateTopic(w http.ResponseWriter, r *http.Request)
	DeleteTopic(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var createReq struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	deptResp, err := h.masterService.Create(r.Context(), createReq.Name)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", deptResp)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.List(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// DeleteDepartment implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}

// CreateTopic implements MasterHandler.
func (h *MasterHandlerImpl) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var createReq topic.CreateTopicRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTopic decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	topicResp, err := h.masterService.CreateTopic(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateTopic service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Topic created", topicResp)
}

// ListTopics implements MasterHandler.
func (h *MasterHandlerImpl) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.masterService.ListTopics(r.Context())
	if err != nil {
		slog.Error("ListTopics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, topics)
}

// UpdateTopic implements MasterHandler.
func (h *MasterHandlerImpl) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	var updateReq topic.UpdateTopicRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTopic decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	topicResp, err := h.masterService.UpdateTopic(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateTopic service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Topic updated", topicResp)
}

// DeleteTopic implements MasterHandler.
func (h *MasterHandlerImpl) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteTopic(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteTopic service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Topic deleted", nil)
}
