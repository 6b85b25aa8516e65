package response

import (
	"errors"
	"net/http"

	"github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/domain/auth"
	"github.com/tracklabs/workforce-backend-go/internal/domain/comment"
	"github.com/tracklabs/workforce-backend-go/internal/domain/department"
	"github.com/tracklabs/workforce-backend-go/internal/domain/foodrequest"
	"github.com/tracklabs/workforce-backend-go/internal/domain/leave"
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/domain/tenant"
	"github.com/tracklabs/workforce-backend-go/internal/domain/topic"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminExists):
		Conflict(w, err.Error())
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrWorkerNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, auth.ErrMissingRequiredFields):
		BadRequest(w, err.Error(), nil)

	// Tenant domain errors
	case errors.Is(err, tenant.ErrReservedTenant):
		Unauthorized(w, err.Error())
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, tenant.ErrSlugTaken):
		Conflict(w, err.Error())
	case errors.Is(err, tenant.ErrInvalidSlug):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidTenant):
		Unauthorized(w, err.Error())
	case errors.Is(err, attendance.ErrMissingCredential):
		Unauthorized(w, err.Error())
	case errors.Is(err, attendance.ErrWorkerNotFound):
		NotFound(w, err.Error())

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, worker.ErrUsernameExists),
		errors.Is(err, worker.ErrEmailExists),
		errors.Is(err, worker.ErrRFIDExists):
		Conflict(w, err.Error())

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, task.ErrAlreadyReviewed):
		Conflict(w, err.Error())
	case errors.Is(err, task.ErrEmptyTaskData),
		errors.Is(err, task.ErrNotACustomTask),
		errors.Is(err, task.ErrInvalidDecision),
		errors.Is(err, task.ErrInvalidPoints),
		errors.Is(err, task.ErrEmptyDateRange):
		BadRequest(w, err.Error(), nil)

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, department.ErrNameTooShort):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, department.ErrHasWorkers):
		Conflict(w, err.Error())
	case errors.Is(err, topic.ErrTopicNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, topic.ErrNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, topic.ErrEmptyName):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrInvalidStatus),
		errors.Is(err, leave.ErrMissingFields),
		errors.Is(err, leave.ErrInvalidLeaveType),
		errors.Is(err, leave.ErrInvalidDates):
		BadRequest(w, err.Error(), nil)

	// Comment domain errors
	case errors.Is(err, comment.ErrCommentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, comment.ErrEmptyText):
		BadRequest(w, err.Error(), nil)

	// Food request domain errors
	case errors.Is(err, foodrequest.ErrDisabled):
		Forbidden(w, err.Error())
	case errors.Is(err, foodrequest.ErrAlreadyRequested):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
