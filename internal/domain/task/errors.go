package task

import "errors"

// Task domain errors
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTaskData   = errors.New("please provide task data")
	ErrNotACustomTask  = errors.New("this is not a custom task")
	ErrAlreadyReviewed = errors.New("this task has already been reviewed")
	ErrInvalidDecision = errors.New("review decision must be approved or rejected")
	ErrInvalidPoints   = errors.New("approved tasks require a non-negative point value")
	ErrEmptyDateRange  = errors.New("please provide start and end dates")
)
