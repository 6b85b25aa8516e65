package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidTenant     = errors.New("subdomain is missing or reserved")
	ErrMissingCredential = errors.New("RFID is required")
	ErrWorkerNotFound    = errors.New("worker not found")
)
