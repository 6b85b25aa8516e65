package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklabs/workforce-backend-go/internal/domain/attendance"
	"github.com/tracklabs/workforce-backend-go/internal/domain/auth"
	"github.com/tracklabs/workforce-backend-go/internal/domain/department"
	"github.com/tracklabs/workforce-backend-go/internal/domain/foodrequest"
	"github.com/tracklabs/workforce-backend-go/internal/domain/leave"
	"github.com/tracklabs/workforce-backend-go/internal/domain/task"
	"github.com/tracklabs/workforce-backend-go/internal/domain/tenant"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"revoked token", auth.ErrTokenRevoked, http.StatusUnauthorized},
		{"admin required", auth.ErrAdminRequired, http.StatusForbidden},
		{"admin exists", auth.ErrAdminExists, http.StatusConflict},
		{"reserved tenant", tenant.ErrReservedTenant, http.StatusUnauthorized},
		{"slug taken", tenant.ErrSlugTaken, http.StatusConflict},
		{"invalid slug", tenant.ErrInvalidSlug, http.StatusBadRequest},
		{"scan missing rfid", attendance.ErrMissingCredential, http.StatusUnauthorized},
		{"scan unknown worker", attendance.ErrWorkerNotFound, http.StatusNotFound},
		{"worker not found", worker.ErrWorkerNotFound, http.StatusNotFound},
		{"duplicate rfid", worker.ErrRFIDExists, http.StatusConflict},
		{"task not found", task.ErrTaskNotFound, http.StatusNotFound},
		{"already reviewed", task.ErrAlreadyReviewed, http.StatusConflict},
		{"empty task data", task.ErrEmptyTaskData, http.StatusBadRequest},
		{"not a custom task", task.ErrNotACustomTask, http.StatusBadRequest},
		{"department has workers", department.ErrHasWorkers, http.StatusConflict},
		{"department name too short", department.ErrNameTooShort, http.StatusBadRequest},
		{"leave not owner", leave.ErrNotOwner, http.StatusForbidden},
		{"food requests disabled", foodrequest.ErrDisabled, http.StatusForbidden},
		{"duplicate food request", foodrequest.ErrAlreadyRequested, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.want, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleError_UnknownErrorHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: relation workers does not exist"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Message, "relation")
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "username", Message: "username is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "username is required", body.Error.Details["username"])
}
