package task

import (
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// TASK DTOs
// ========================================

type SubmitTaskRequest struct {
	// WorkerID and Tenant come from the auth context, not the body
	WorkerID string                 `json:"-"`
	Tenant   string                 `json:"-"`
	Data     map[string]interface{} `json:"data"`
	TopicIDs []string               `json:"topics"`
}

type SubmitCustomTaskRequest struct {
	WorkerID    string `json:"-"`
	Tenant      string `json:"-"`
	Description string `json:"description"`
}

func (r *SubmitCustomTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewCustomTaskRequest struct {
	TaskID string `json:"-"`
	Tenant string `json:"-"`
	Status string `json:"status"`
	Points int    `json:"points"`
}

func (r *ReviewCustomTaskRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return ErrInvalidDecision
	}
	if r.Status == string(StatusApproved) && r.Points < 0 {
		return ErrInvalidPoints
	}
	return nil
}

type DateRangeRequest struct {
	Tenant    string `json:"-"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *DateRangeRequest) Validate() error {
	if validator.IsEmpty(r.StartDate) || validator.IsEmpty(r.EndDate) {
		return ErrEmptyDateRange
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		return ErrEmptyDateRange
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		return ErrEmptyDateRange
	}
	return nil
}

type TaskResponse struct {
	ID          string                 `json:"id"`
	WorkerID    string                 `json:"worker_id"`
	WorkerName  *string                `json:"worker_name,omitempty"`
	Department  *string                `json:"department,omitempty"`
	Data        map[string]interface{} `json:"data,omitempty"`
	TopicIDs    []string               `json:"topics,omitempty"`
	Points      int                    `json:"points"`
	IsCustom    bool                   `json:"is_custom,omitempty"`
	Description string                 `json:"description,omitempty"`
	Status      string                 `json:"status,omitempty"`
	CreatedAt   string                 `json:"created_at"`
}

type WorkerTotalsResponse struct {
	WorkerID       string                 `json:"worker_id"`
	TotalPoints    int                    `json:"total_points"`
	TopicPoints    int                    `json:"topic_points"`
	LastSubmission map[string]interface{} `json:"last_submission,omitempty"`
}
