package scoring

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/domain/topic"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
)

type ScoringServiceImpl struct {
	db             *database.DB
	allowEmptyData bool
	task.TaskRepository
	topic.TopicRepository
	worker.WorkerRepository
}

func NewScoringService(
	db *database.DB,
	allowEmptyData bool,
	taskRepository task.TaskRepository,
	topicRepository topic.TopicRepository,
	workerRepository worker.WorkerRepository,
) task.ScoringService {
	return &ScoringServiceImpl{
		db:               db,
		allowEmptyData:   allowEmptyData,
		TaskRepository:   taskRepository,
		TopicRepository:  topicRepository,
		WorkerRepository: workerRepository,
	}
}

// coercePoints converts one submission value to points. Numbers keep their
// integer part, numeric strings are parsed, everything else counts as zero.
func coercePoints(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// basePoints sums the parse-or-zero coercion over every data value.
func basePoints(data map[string]interface{}) int {
	sum := 0
	for _, v := range data {
		sum += coercePoints(v)
	}
	return sum
}

func toResponse(t task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:          t.ID,
		WorkerID:    t.WorkerID,
		WorkerName:  t.WorkerName,
		Department:  t.DepartmentName,
		Data:        t.Data,
		TopicIDs:    t.TopicIDs,
		Points:      t.Points,
		IsCustom:    t.IsCustom,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// SubmitTask implements task.ScoringService. The shared tenant lock lets
// submissions of one tenant run concurrently with each other but never
// interleave with a reset.
func (s *ScoringServiceImpl) SubmitTask(ctx context.Context, req task.SubmitTaskRequest) (task.TaskResponse, error) {
	if len(req.Data) == 0 && !s.allowEmptyData {
		return task.TaskResponse{}, task.ErrEmptyTaskData
	}

	var created task.Task

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := postgresql.AcquireTenantLockShared(txCtx, tx, req.Tenant); err != nil {
			return err
		}

		if _, err := s.WorkerRepository.GetByID(txCtx, req.WorkerID, req.Tenant); err != nil {
			return err
		}

		// Unresolvable or cross-tenant topic ids are dropped, not rejected
		topics, err := s.TopicRepository.GetByIDs(txCtx, req.TopicIDs, req.Tenant)
		if err != nil {
			return err
		}

		topicPoints := 0
		resolvedIDs := make([]string, 0, len(topics))
		for _, t := range topics {
			topicPoints += t.Points
			resolvedIDs = append(resolvedIDs, t.ID)
		}

		points := basePoints(req.Data) + topicPoints

		created, err = s.TaskRepository.Create(txCtx, task.Task{
			WorkerID: req.WorkerID,
			Tenant:   req.Tenant,
			Data:     req.Data,
			TopicIDs: resolvedIDs,
			Points:   points,
			IsCustom: false,
			Status:   task.StatusApproved,
		})
		if err != nil {
			return err
		}

		if err := s.WorkerRepository.AddPoints(txCtx, req.WorkerID, req.Tenant, points, topicPoints); err != nil {
			return err
		}

		return s.WorkerRepository.SetLastSubmission(txCtx, req.WorkerID, req.Tenant, req.Data)
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(created), nil
}

// SubmitCustomTask implements task.ScoringService.
func (s *ScoringServiceImpl) SubmitCustomTask(ctx context.Context, req task.SubmitCustomTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.WorkerRepository.GetByID(ctx, req.WorkerID, req.Tenant); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		WorkerID:    req.WorkerID,
		Tenant:      req.Tenant,
		IsCustom:    true,
		Description: req.Description,
		Status:      task.StatusPending,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(created), nil
}

// ReviewCustomTask implements task.ScoringService. The row lock makes the
// decision terminal: a second concurrent review sees the updated status and
// fails with ErrAlreadyReviewed.
func (s *ScoringServiceImpl) ReviewCustomTask(ctx context.Context, req task.ReviewCustomTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	var reviewed task.Task

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		t, err := s.TaskRepository.GetByIDForUpdate(txCtx, req.TaskID, req.Tenant)
		if err != nil {
			return err
		}

		if !t.IsCustom {
			return task.ErrNotACustomTask
		}
		if t.Status != task.StatusPending {
			return task.ErrAlreadyReviewed
		}

		status := task.Status(req.Status)
		points := 0
		if status == task.StatusApproved {
			points = req.Points
		}

		if err := s.TaskRepository.SetReview(txCtx, t.ID, req.Tenant, status, points); err != nil {
			return err
		}

		if status == task.StatusApproved && points != 0 {
			if err := s.WorkerRepository.AddPoints(txCtx, t.WorkerID, req.Tenant, points, 0); err != nil {
				return err
			}
		}

		t.Status = status
		t.Points = points
		reviewed = t
		return nil
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(reviewed), nil
}

// ResetAll implements task.ScoringService. The exclusive tenant lock waits
// out in-flight submissions and blocks new ones until the wipe commits; other
// tenants are untouched.
func (s *ScoringServiceImpl) ResetAll(ctx context.Context, tenant string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := postgresql.AcquireTenantLock(txCtx, tx, tenant); err != nil {
			return err
		}

		if err := s.TaskRepository.DeleteByTenant(txCtx, tenant); err != nil {
			return err
		}

		return s.WorkerRepository.ResetScores(txCtx, tenant, "")
	})
}

// ResetWorker implements task.ScoringService.
func (s *ScoringServiceImpl) ResetWorker(ctx context.Context, workerID string, tenant string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := postgresql.AcquireTenantLock(txCtx, tx, tenant); err != nil {
			return err
		}

		if err := s.TaskRepository.DeleteByWorker(txCtx, workerID, tenant); err != nil {
			return err
		}

		return s.WorkerRepository.ResetScores(txCtx, tenant, workerID)
	})
}

// GetTotals implements task.ScoringService.
func (s *ScoringServiceImpl) GetTotals(ctx context.Context, workerID string, tenant string) (task.WorkerTotalsResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, workerID, tenant)
	if err != nil {
		return task.WorkerTotalsResponse{}, err
	}

	return task.WorkerTotalsResponse{
		WorkerID:       w.ID,
		TotalPoints:    w.TotalPoints,
		TopicPoints:    w.TopicPoints,
		LastSubmission: w.LastSubmissionData,
	}, nil
}

func toResponses(tasks []task.Task) []task.TaskResponse {
	out := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toResponse(t))
	}
	return out
}

// ListByTenant implements task.ScoringService.
func (s *ScoringServiceImpl) ListByTenant(ctx context.Context, tenant string) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListByTenant(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

// ListByWorker implements task.ScoringService.
func (s *ScoringServiceImpl) ListByWorker(ctx context.Context, workerID string, tenant string) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListByWorker(ctx, workerID, tenant)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

// ListByDateRange implements task.ScoringService. The end date is extended
// to the end of its day so same-day ranges are inclusive.
func (s *ScoringServiceImpl) ListByDateRange(ctx context.Context, req task.DateRangeRequest) ([]task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, task.ErrEmptyDateRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, task.ErrEmptyDateRange
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	tasks, err := s.TaskRepository.ListByDateRange(ctx, req.Tenant, start, end)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

// ListCustom implements task.ScoringService.
func (s *ScoringServiceImpl) ListCustom(ctx context.Context, tenant string, workerID string) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListCustom(ctx, tenant, workerID)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}
