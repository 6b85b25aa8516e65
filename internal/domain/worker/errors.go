package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrUsernameExists = errors.New("a worker with this username already exists in this organization")
	ErrEmailExists    = errors.New("a worker with this email already exists in this organization")
	ErrRFIDExists     = errors.New("this RFID tag is already assigned in this organization")
)
