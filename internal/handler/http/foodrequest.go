package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tracklabs/workforce-backend-go/internal/domain/foodrequest"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
)

type FoodRequestHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	SetEnabled(w http.ResponseWriter, r *http.Request)
}

type FoodRequestHandlerImpl struct {
	foodRequestService foodrequest.FoodRequestService
}

func NewFoodRequestHandler(foodRequestService foodrequest.FoodRequestService) FoodRequestHandler {
	return &FoodRequestHandlerImpl{foodRequestService: foodRequestService}
}

// Submit implements FoodRequestHandler.
func (h *FoodRequestHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	requestResp, err := h.foodRequestService.Submit(r.Context())
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Food request submitted", requestResp)
}

// ListToday implements FoodRequestHandler.
func (h *FoodRequestHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	requests, err := h.foodRequestService.ListToday(r.Context())
	if err != nil {
		slog.Error("ListToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// GetSettings implements FoodRequestHandler.
func (h *FoodRequestHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settingsResp, err := h.foodRequestService.GetSettings(r.Context())
	if err != nil {
		slog.Error("GetSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settingsResp)
}

// SetEnabled implements FoodRequestHandler.
func (h *FoodRequestHandlerImpl) SetEnabled(w http.ResponseWriter, r *http.Request) {
	var enableReq struct {
		Enabled bool `json:"enabled"`
	}

	if err := json.NewDecoder(r.Body).Decode(&enableReq); err != nil {
		slog.Error("SetEnabled decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settingsResp, err := h.foodRequestService.SetEnabled(r.Context(), enableReq.Enabled)
	if err != nil {
		slog.Error("SetEnabled service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Food request settings updated", settingsResp)
}
