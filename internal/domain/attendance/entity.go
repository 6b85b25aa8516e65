package attendance

import "time"

// Attendance is a single immutable scan event. The worker's name, contact and
// department are denormalized at write time so historical listings survive
// later edits to the worker record.
type Attendance struct {
	ID       string
	WorkerID string
	Tenant   string

	// Date is the tenant-local civil date of the scan ("2006-01-02") and
	// Time the tenant-local wall clock ("15:04:05"). A single configured
	// timezone applies to every tenant.
	Date string
	Time string

	// Presence: true marks the worker in, false marks them out
	Presence bool

	// Worker snapshot
	Name         string
	Username     string
	RFID         string
	Email        string
	DepartmentID *string
	Photo        string

	CreatedAt time.Time
}
