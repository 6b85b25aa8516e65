package worker

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/domain/tenant"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/storage"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type WorkerServiceImpl struct {
	db          *database.DB
	fileStorage storage.FileStorage
	worker.WorkerRepository
	task.TaskRepository
	attendanceService attendance.AttendanceService
	scoringService    task.ScoringService
}

func NewWorkerService(
	db *database.DB,
	fileStorage storage.FileStorage,
	workerRepository worker.WorkerRepository,
	taskRepository task.TaskRepository,
	attendanceService attendance.AttendanceService,
	scoringService task.ScoringService,
) worker.WorkerService {
	return &WorkerServiceImpl{
		db:                db,
		fileStorage:       fileStorage,
		WorkerRepository:  workerRepository,
		TaskRepository:    taskRepository,
		attendanceService: attendanceService,
		scoringService:    scoringService,
	}
}

func tenantFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantSlug, ok := claims["tenant"].(string)
	if !ok || tenantSlug == "" {
		return "", fmt.Errorf("tenant claim is missing or invalid")
	}

	return tenantSlug, nil
}

func (s *WorkerServiceImpl) toResponse(ctx context.Context, w worker.Worker) worker.WorkerResponse {
	resp := worker.WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		Username:       w.Username,
		Email:          w.Email,
		RFID:           w.RFID,
		Department:     w.DepartmentName,
		DepartmentID:   w.DepartmentID,
		Photo:          w.Photo,
		TotalPoints:    w.TotalPoints,
		TopicPoints:    w.TopicPoints,
		LastSubmission: w.LastSubmissionData,
	}

	if w.Photo != "" {
		if url, err := s.fileStorage.GetURL(ctx, w.Photo, 0); err == nil {
			resp.PhotoURL = url
		}
	}

	return resp
}

// checkUnique enforces tenant-scoped uniqueness of username, email and RFID.
func (s *WorkerServiceImpl) checkUnique(ctx context.Context, tenantSlug string, username, email string, rfid *string, excludeID string) error {
	if username != "" {
		exists, err := s.WorkerRepository.UsernameExists(ctx, tenantSlug, username, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return worker.ErrUsernameExists
		}
	}

	if email != "" {
		exists, err := s.WorkerRepository.EmailExists(ctx, tenantSlug, email, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return worker.ErrEmailExists
		}
	}

	if rfid != nil && *rfid != "" {
		exists, err := s.WorkerRepository.RFIDExists(ctx, tenantSlug, *rfid, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return worker.ErrRFIDExists
		}
	}

	return nil
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := s.checkUnique(ctx, tenantSlug, req.Username, req.Email, req.RFID, ""); err != nil {
		return worker.WorkerResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	departmentID := req.DepartmentID
	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		Tenant:       tenantSlug,
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		RFID:         req.RFID,
		PasswordHash: string(hash),
		DepartmentID: &departmentID,
		Photo:        req.Photo,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := s.WorkerRepository.List(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}

	out := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, s.toResponse(ctx, w))
	}

	return out, nil
}

// PublicList implements worker.WorkerService.
func (s *WorkerServiceImpl) PublicList(ctx context.Context, tenantSlug string) ([]worker.PublicWorkerResponse, error) {
	if tenant.IsReserved(tenantSlug) {
		return nil, tenant.ErrReservedTenant
	}

	workers, err := s.WorkerRepository.List(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}

	out := make([]worker.PublicWorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, worker.PublicWorkerResponse{
			ID:         w.ID,
			Name:       w.Name,
			Username:   w.Username,
			Department: w.DepartmentName,
			Photo:      w.Photo,
		})
	}

	return out, nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, id, tenantSlug)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return s.toResponse(ctx, w), nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, req.ID, tenantSlug)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	username, email := "", ""
	if req.Username != nil {
		username = *req.Username
	}
	if req.Email != nil {
		email = *req.Email
	}
	if err := s.checkUnique(ctx, tenantSlug, username, email, req.RFID, w.ID); err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Username != nil {
		w.Username = *req.Username
	}
	if req.Email != nil {
		w.Email = *req.Email
	}
	if req.RFID != nil {
		w.RFID = req.RFID
	}
	if req.DepartmentID != nil {
		w.DepartmentID = req.DepartmentID
	}
	if req.Photo != nil {
		w.Photo = *req.Photo
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		w.PasswordHash = string(hash)
	}

	if err := s.WorkerRepository.Update(ctx, w); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.WorkerRepository.GetByID(ctx, w.ID, tenantSlug)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return s.toResponse(ctx, updated), nil
}

// Delete implements worker.WorkerService. The worker's tasks go with them so
// orphaned submissions never skew tenant listings.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.TaskRepository.DeleteByWorker(txCtx, id, tenantSlug); err != nil {
			return err
		}

		return s.WorkerRepository.Delete(txCtx, id, tenantSlug)
	})
}

// Activities implements worker.WorkerService.
func (s *WorkerServiceImpl) Activities(ctx context.Context, id string) (worker.ActivityResponse, error) {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return worker.ActivityResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, id, tenantSlug)
	if err != nil {
		return worker.ActivityResponse{}, err
	}

	resp := worker.ActivityResponse{Worker: s.toResponse(ctx, w)}

	if w.RFID != nil && *w.RFID != "" {
		resp.Attendance, err = s.attendanceService.ListByWorker(ctx, attendance.WorkerListRequest{
			RFID:   *w.RFID,
			Tenant: tenantSlug,
		})
		if err != nil {
			return worker.ActivityResponse{}, err
		}
	}

	resp.Tasks, err = s.scoringService.ListByWorker(ctx, w.ID, tenantSlug)
	if err != nil {
		return worker.ActivityResponse{}, err
	}

	return resp, nil
}
