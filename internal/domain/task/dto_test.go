package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitCustomTaskRequest_Validate(t *testing.T) {
	ok := SubmitCustomTaskRequest{Description: "cleaned the storage room"}
	assert.NoError(t, ok.Validate())

	blank := SubmitCustomTaskRequest{Description: "   "}
	assert.Error(t, blank.Validate())
}

func TestReviewCustomTaskRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     ReviewCustomTaskRequest
		wantErr error
	}{
		{"approve with points", ReviewCustomTaskRequest{Status: "approved", Points: 10}, nil},
		{"approve with zero points", ReviewCustomTaskRequest{Status: "approved", Points: 0}, nil},
		{"reject ignores points", ReviewCustomTaskRequest{Status: "rejected", Points: -5}, nil},
		{"unknown status", ReviewCustomTaskRequest{Status: "maybe", Points: 1}, ErrInvalidDecision},
		{"pending is not a decision", ReviewCustomTaskRequest{Status: "pending"}, ErrInvalidDecision},
		{"approve with negative points", ReviewCustomTaskRequest{Status: "approved", Points: -1}, ErrInvalidPoints},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestDateRangeRequest_Validate(t *testing.T) {
	ok := DateRangeRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"}
	assert.NoError(t, ok.Validate())

	for _, req := range []DateRangeRequest{
		{StartDate: "", EndDate: "2025-01-31"},
		{StartDate: "2025-01-01", EndDate: ""},
		{StartDate: "01/01/2025", EndDate: "2025-01-31"},
		{StartDate: "2025-01-01", EndDate: "soon"},
	} {
		assert.ErrorIs(t, req.Validate(), ErrEmptyDateRange)
	}
}
