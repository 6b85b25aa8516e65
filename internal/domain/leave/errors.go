package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound    = errors.New("leave application not found")
	ErrInvalidStatus    = errors.New("please provide a valid status")
	ErrNotOwner         = errors.New("not authorized to modify this leave application")
	ErrMissingFields    = errors.New("please fill in all required fields")
	ErrInvalidLeaveType = errors.New("invalid leave type")
	ErrInvalidDates     = errors.New("end date must not be before start date")
)
