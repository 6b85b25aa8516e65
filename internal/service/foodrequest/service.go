package foodrequest

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/foodrequest"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
)

type FoodRequestServiceImpl struct {
	db  *database.DB
	loc *time.Location
	foodrequest.FoodRequestRepository
	foodrequest.SettingsRepository
}

func NewFoodRequestService(
	db *database.DB,
	loc *time.Location,
	foodRequestRepository foodrequest.FoodRequestRepository,
	settingsRepository foodrequest.SettingsRepository,
) foodrequest.FoodRequestService {
	return &FoodRequestServiceImpl{
		db:                    db,
		loc:                   loc,
		FoodRequestRepository: foodRequestRepository,
		SettingsRepository:    settingsRepository,
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

func (s *FoodRequestServiceImpl) today() string {
	return time.Now().In(s.loc).Format("2006-01-02")
}

func toResponse(fr foodrequest.FoodRequest) foodrequest.FoodRequestResponse {
	return foodrequest.FoodRequestResponse{
		ID:         fr.ID,
		WorkerID:   fr.WorkerID,
		WorkerName: fr.WorkerName,
		Department: fr.DepartmentName,
		Date:       fr.Date,
		Status:     string(fr.Status),
	}
}

func toSettingsResponse(st foodrequest.Settings) foodrequest.SettingsResponse {
	resp := foodrequest.SettingsResponse{FoodRequestEnabled: st.FoodRequestEnabled}
	if st.UpdatedBy != nil {
		resp.UpdatedBy = *st.UpdatedBy
	}
	return resp
}

// Submit implements foodrequest.FoodRequestService.
func (s *FoodRequestServiceImpl) Submit(ctx context.Context) (foodrequest.FoodRequestResponse, error) {
	workerID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return foodrequest.FoodRequestResponse{}, err
	}

	settings, err := s.SettingsRepository.Get(ctx, tenantSlug)
	if err != nil {
		return foodrequest.FoodRequestResponse{}, err
	}
	if !settings.FoodRequestEnabled {
		return foodrequest.FoodRequestResponse{}, foodrequest.ErrDisabled
	}

	today := s.today()

	exists, err := s.FoodRequestRepository.ExistsForDate(ctx, workerID, tenantSlug, today)
	if err != nil {
		return foodrequest.FoodRequestResponse{}, err
	}
	if exists {
		return foodrequest.FoodRequestResponse{}, foodrequest.ErrAlreadyRequested
	}

	created, err := s.FoodRequestRepository.Create(ctx, foodrequest.FoodRequest{
		WorkerID: workerID,
		Tenant:   tenantSlug,
		Date:     today,
		Status:   foodrequest.StatusFulfilled,
	})
	if err != nil {
		return foodrequest.FoodRequestResponse{}, err
	}

	return toResponse(created), nil
}

// ListToday implements foodrequest.FoodRequestService.
func (s *FoodRequestServiceImpl) ListToday(ctx context.Context) ([]foodrequest.FoodRequestResponse, error) {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.FoodRequestRepository.ListByDate(ctx, tenantSlug, s.today())
	if err != nil {
		return nil, err
	}

	out := make([]foodrequest.FoodRequestResponse, 0, len(requests))
	for _, fr := range requests {
		out = append(out, toResponse(fr))
	}

	return out, nil
}

// GetSettings implements foodrequest.FoodRequestService.
func (s *FoodRequestServiceImpl) GetSettings(ctx context.Context) (foodrequest.SettingsResponse, error) {
	_, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return foodrequest.SettingsResponse{}, err
	}

	settings, err := s.SettingsRepository.Get(ctx, tenantSlug)
	if err != nil {
		return foodrequest.SettingsResponse{}, err
	}

	return toSettingsResponse(settings), nil
}

// SetEnabled implements foodrequest.FoodRequestService.
func (s *FoodRequestServiceImpl) SetEnabled(ctx context.Context, enabled bool) (foodrequest.SettingsResponse, error) {
	userID, tenantSlug, err := actorFromContext(ctx)
	if err != nil {
		return foodrequest.SettingsResponse{}, err
	}

	settings, err := s.SettingsRepository.Set(ctx, foodrequest.Settings{
		Tenant:             tenantSlug,
		FoodRequestEnabled: enabled,
		UpdatedBy:          &userID,
	})
	if err != nil {
		return foodrequest.SettingsResponse{}, err
	}

	return toSettingsResponse(settings), nil
}
