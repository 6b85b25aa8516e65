package worker

import (
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// WORKER DTOs
// ========================================

type CreateWorkerRequest struct {
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	Email        string  `json:"email"`
	RFID         *string `json:"rfid"`
	DepartmentID string  `json:"department_id"`
	Photo        string  `json:"-"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name"`
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	Email        *string `json:"email"`
	RFID         *string `json:"rfid"`
	DepartmentID *string `json:"department_id"`
	Photo        *string `json:"-"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkerResponse is the client view of a worker. Password hashes never leave
// the service layer.
type WorkerResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Username       string                 `json:"username"`
	Email          string                 `json:"email,omitempty"`
	RFID           *string                `json:"rfid,omitempty"`
	Department     *string                `json:"department,omitempty"`
	DepartmentID   *string                `json:"department_id,omitempty"`
	Photo          string                 `json:"photo,omitempty"`
	PhotoURL       string                 `json:"photo_url,omitempty"`
	TotalPoints    int                    `json:"total_points"`
	TopicPoints    int                    `json:"topic_points"`
	LastSubmission map[string]interface{} `json:"last_submission,omitempty"`
}

// PublicWorkerResponse omits contact details and scoring state
type PublicWorkerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	Department *string `json:"department,omitempty"`
	Photo      string  `json:"photo,omitempty"`
}
