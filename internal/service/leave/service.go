package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/leave"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
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

func toResponse(l leave.Leave) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:           l.ID,
		WorkerID:     l.WorkerID,
		WorkerName:   l.WorkerName,
		Department:   l.DepartmentName,
		WorkerPhoto:  l.WorkerPhoto,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		TotalDays:    l.TotalDays,
		Reason:       l.Reason,
		Status:       string(l.Status),
		WorkerViewed: l.WorkerViewed,
		Document:     l.Document,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
	return resp
}

func toResponses(leaves []leave.Leave) []leave.LeaveResponse {
	out := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, toResponse(l))
	}
	return out
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		WorkerID:     workerID,
		Tenant:       tenantSlug,
		LeaveType:    req.LeaveType,
		StartDate:    start,
		EndDate:      end,
		TotalDays:    req.TotalDays,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
		WorkerViewed: true,
		Document:     req.Document,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListByWorker(ctx, workerID, tenantSlug)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if status != "" && status != string(leave.StatusPending) &&
		status != string(leave.StatusApproved) && status != string(leave.StatusRejected) {
		return nil, leave.ErrInvalidStatus
	}

	leaves, err := s.LeaveRepository.List(ctx, tenantSlug, status)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// ListByDateRange implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByDateRange(ctx context.Context, startDate string, endDate string) ([]leave.LeaveResponse, error) {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, okStart := validator.IsValidDate(startDate)
	end, okEnd := validator.IsValidDate(endDate)
	if !okStart || !okEnd {
		return nil, leave.ErrMissingFields
	}
	if end.Before(start) {
		return nil, leave.ErrInvalidDates
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	leaves, err := s.LeaveRepository.ListByDateRange(ctx, tenantSlug, start, end)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := s.LeaveRepository.SetStatus(ctx, req.LeaveID, tenantSlug, leave.Status(req.Status)); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRepository.GetByID(ctx, req.LeaveID, tenantSlug)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(updated), nil
}

// MarkViewed implements leave.LeaveService. Workers can only acknowledge
// their own applications.
func (s *LeaveServiceImpl) MarkViewed(ctx context.Context, leaveID string) error {
	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	l, err := s.LeaveRepository.GetByID(ctx, leaveID, tenantSlug)
	if err != nil {
		return err
	}
	if l.WorkerID != workerID {
		return leave.ErrNotOwner
	}

	return s.LeaveRepository.SetWorkerViewed(ctx, leaveID, tenantSlug, true)
}

// MarkAllViewed implements leave.LeaveService.
func (s *LeaveServiceImpl) MarkAllViewed(ctx context.Context) error {
	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.LeaveRepository.MarkAllViewed(ctx, workerID, tenantSlug)
}

// PendingCount implements leave.LeaveService.
func (s *LeaveServiceImpl) PendingCount(ctx context.Context) (int, error) {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.LeaveRepository.CountPendingUnviewed(ctx, tenantSlug)
}
