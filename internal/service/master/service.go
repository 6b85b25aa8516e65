package master

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/department"
	"github.com/tracklabs/workforce-backend-go/internal/domain/topic"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

// MasterServiceImpl serves the tenant's master data: departments and topics.
type MasterServiceImpl struct {
	db *database.DB
	department.DepartmentRepository
	topic.TopicRepository
	worker.WorkerRepository
}

type MasterService interface {
	department.DepartmentService
	topic.TopicService
}

func NewMasterService(
	db *database.DB,
	departmentRepository department.DepartmentRepository,
	topicRepository topic.TopicRepository,
	workerRepository worker.WorkerRepository,
) MasterService {
	return &MasterServiceImpl{
		db:                   db,
		DepartmentRepository: departmentRepository,
		TopicRepository:      topicRepository,
		WorkerRepository:     workerRepository,
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

// Create implements department.DepartmentService.
func (s *MasterServiceImpl) Create(ctx context.Context, name string) (department.DepartmentResponse, error) {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	if len(normalized) < 2 {
		return department.DepartmentResponse{}, department.ErrNameTooShort
	}

	if _, err := s.DepartmentRepository.GetByName(ctx, normalized, tenantSlug); err == nil {
		return department.DepartmentResponse{}, department.ErrNameExists
	} else if err != department.ErrDepartmentNotFound {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Tenant: tenantSlug,
		Name:   normalized,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.DepartmentResponse{
		ID:        created.ID,
		Name:      created.Name,
		CreatedAt: created.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// List implements department.DepartmentService.
func (s *MasterServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.DepartmentRepository.List(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}

	out := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, department.DepartmentResponse{
			ID:          d.ID,
			Name:        d.Name,
			WorkerCount: d.WorkerCount,
			CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return out, nil
}

// Delete implements department.DepartmentService.
func (s *MasterServiceImpl) Delete(ctx context.Context, id string) error {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, id, tenantSlug); err != nil {
		return err
	}

	count, err := s.WorkerRepository.CountByDepartment(ctx, tenantSlug, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return department.ErrHasWorkers
	}

	return s.DepartmentRepository.Delete(ctx, id, tenantSlug)
}

func toTopicResponse(t topic.Topic) topic.TopicResponse {
	return topic.TopicResponse{
		ID:         t.ID,
		Name:       t.Name,
		Points:     t.Points,
		Department: t.Department,
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateTopic implements topic.TopicService.
func (s *MasterServiceImpl) CreateTopic(ctx context.Context, req topic.CreateTopicRequest) (topic.TopicResponse, error) {
	if err := req.Validate(); err != nil {
		return topic.TopicResponse{}, err
	}

	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return topic.TopicResponse{}, err
	}

	name := strings.TrimSpace(req.Name)

	exists, err := s.TopicRepository.NameExists(ctx, tenantSlug, name, "")
	if err != nil {
		return topic.TopicResponse{}, err
	}
	if exists {
		return topic.TopicResponse{}, topic.ErrNameExists
	}

	dept := req.Department
	if dept == "" {
		dept = topic.DepartmentAll
	}

	created, err := s.TopicRepository.Create(ctx, topic.Topic{
		Tenant:     tenantSlug,
		Name:       name,
		Points:     req.Points,
		Department: dept,
	})
	if err != nil {
		return topic.TopicResponse{}, err
	}

	return toTopicResponse(created), nil
}

// ListTopics implements topic.TopicService.
func (s *MasterServiceImpl) ListTopics(ctx context.Context) ([]topic.TopicResponse, error) {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	topics, err := s.TopicRepository.List(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}

	out := make([]topic.TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}

	return out, nil
}

// UpdateTopic implements topic.TopicService.
func (s *MasterServiceImpl) UpdateTopic(ctx context.Context, req topic.UpdateTopicRequest) (topic.TopicResponse, error) {
	if err := req.Validate(); err != nil {
		return topic.TopicResponse{}, err
	}

	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return topic.TopicResponse{}, err
	}

	t, err := s.TopicRepository.GetByID(ctx, req.ID, tenantSlug)
	if err != nil {
		return topic.TopicResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		exists, err := s.TopicRepository.NameExists(ctx, tenantSlug, name, t.ID)
		if err != nil {
			return topic.TopicResponse{}, err
		}
		if exists {
			return topic.TopicResponse{}, topic.ErrNameExists
		}
		t.Name = name
	}
	if req.Points != nil {
		t.Points = *req.Points
	}
	if req.Department != nil {
		t.Department = *req.Department
	}

	if err := s.TopicRepository.Update(ctx, t); err != nil {
		return topic.TopicResponse{}, err
	}

	return toTopicResponse(t), nil
}

// DeleteTopic implements topic.TopicService.
func (s *MasterServiceImpl) DeleteTopic(ctx context.Context, id string) error {
	tenantSlug, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	return s.TopicRepository.Delete(ctx, id, tenantSlug)
}
