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
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/storage"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	PublicList(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Activities(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService  worker.WorkerService
	scoringService task.ScoringService
	fileStorage    storage.FileStorage
}

func NewWorkerHandler(
	workerService worker.WorkerService,
	scoringService task.ScoringService,
	fileStorage storage.FileStorage,
) WorkerHandler {
	return &WorkerHandlerImpl{
		workerService:  workerService,
		scoringService: scoringService,
		fileStorage:    fileStorage,
	}
}

// uploadPhoto stores an optional "photo" form file and returns its key.
func (h *WorkerHandlerImpl) uploadPhoto(r *http.Request) (string, error) {
	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("photos/%s%s", uuid.NewString(), ext)

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return h.fileStorage.Upload(r.Context(), file, key, contentType)
}

// Create implements WorkerHandler. Accepts either JSON or multipart form
// data with an optional photo.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq worker.CreateWorkerRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Invalid form data", nil)
			return
		}

		createReq.Name = r.FormValue("name")
		createReq.Username = r.FormValue("username")
		createReq.Password = r.FormValue("password")
		createReq.Email = r.FormValue("email")
		createReq.DepartmentID = r.FormValue("department_id")
		if rfid := r.FormValue("rfid"); rfid != "" {
			createReq.RFID = &rfid
		}

		photo, err := h.uploadPhoto(r)
		if err != nil {
			slog.Error("Photo upload failed", "error", err)
			response.InternalServerError(w, "Failed to store photo")
			return
		}
		createReq.Photo = photo
	} else {
		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			slog.Error("Create decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	workerResp, err := h.workerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker created", "worker_id", workerResp.ID)
	response.Created(w, "Worker created", workerResp)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.List(r.Context())
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// PublicList implements WorkerHandler. No session required; the tenant comes
// from the request body.
func (h *WorkerHandlerImpl) PublicList(w http.ResponseWriter, r *http.Request) {
	var listReq struct {
		Tenant string `json:"subdomain"`
	}

	if err := json.NewDecoder(r.Body).Decode(&listReq); err != nil {
		slog.Error("PublicList decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	workers, err := h.workerService.PublicList(r.Context(), listReq.Tenant)
	if err != nil {
		slog.Error("PublicList service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	workerResp, err := h.workerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workerResp)
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq worker.UpdateWorkerRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Invalid form data", nil)
			return
		}

		setIfPresent := func(field string, dst **string) {
			if v := r.FormValue(field); v != "" {
				*dst = &v
			}
		}
		setIfPresent("name", &updateReq.Name)
		setIfPresent("username", &updateReq.Username)
		setIfPresent("password", &updateReq.Password)
		setIfPresent("email", &updateReq.Email)
		setIfPresent("rfid", &updateReq.RFID)
		setIfPresent("department_id", &updateReq.DepartmentID)

		photo, err := h.uploadPhoto(r)
		if err != nil {
			slog.Error("Photo upload failed", "error", err)
			response.InternalServerError(w, "Failed to store photo")
			return
		}
		if photo != "" {
			updateReq.Photo = &photo
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			slog.Error("Update decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	updateReq.ID = chi.URLParam(r, "id")

	workerResp, err := h.workerService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated", workerResp)
}

// Delete implements WorkerHandler.
func (h *WorkerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workerService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete service error", "error", err, "worker_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker deleted", "worker_id", id)
	response.SuccessWithMessage(w, "Worker deleted", nil)
}

// Activities implements WorkerHandler.
func (h *WorkerHandlerImpl) Activities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.workerService.Activities(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Activities service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, activities)
}

// Reset implements WorkerHandler. Wipes one worker's tasks and totals.
func (h *WorkerHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	_, tenantSlug, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.scoringService.ResetWorker(r.Context(), id, tenantSlug); err != nil {
		slog.Error("Reset service error", "error", err, "worker_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker scores reset", "worker_id", id)
	response.SuccessWithMessage(w, "Worker tasks and scores reset", nil)
}
