package leave

import (
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type CreateLeaveRequest struct {
	WorkerID  string  `json:"-"`
	Tenant    string  `json:"-"`
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	TotalDays int     `json:"total_days"`
	Reason    string  `json:"reason"`
	Document  *string `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave type must be one of Annual Leave, Sick Leave, Personal Leave",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date must be YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must be YYYY-MM-DD",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must not be before start date",
		})
	}

	if r.TotalDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total days must be positive",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	LeaveID string `json:"-"`
	Tenant  string `json:"-"`
	Status  string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return ErrInvalidStatus
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	WorkerID     string  `json:"worker_id"`
	WorkerName   *string `json:"worker_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	WorkerPhoto  *string `json:"worker_photo,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	WorkerViewed bool    `json:"worker_viewed"`
	Document     *string `json:"document,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
