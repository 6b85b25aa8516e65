package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

func TestCreateLeaveRequest_Validate(t *testing.T) {
	req := CreateLeaveRequest{
		LeaveType: "Annual Leave",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		TotalDays: 3,
		Reason:    "family trip",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateLeaveRequest_Validate_Errors(t *testing.T) {
	req := CreateLeaveRequest{
		LeaveType: "Vacation",    // not in LeaveTypes
		StartDate: "2025-06-03",
		EndDate:   "2025-06-01",  // before start
		TotalDays: 0,
		Reason:    " ",
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "leave_type")
	assert.Contains(t, m, "end_date")
	assert.Contains(t, m, "total_days")
	assert.Contains(t, m, "reason")
}

func TestCreateLeaveRequest_Validate_BadDates(t *testing.T) {
	req := CreateLeaveRequest{
		LeaveType: "Sick Leave",
		StartDate: "06/01/2025",
		EndDate:   "someday",
		TotalDays: 1,
		Reason:    "flu",
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "start_date")
	assert.Contains(t, m, "end_date")
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateStatusRequest{Status: "Approved"}).Validate())
	assert.NoError(t, (&UpdateStatusRequest{Status: "Rejected"}).Validate())
	assert.ErrorIs(t, (&UpdateStatusRequest{Status: "Pending"}).Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, (&UpdateStatusRequest{Status: ""}).Validate(), ErrInvalidStatus)
}
