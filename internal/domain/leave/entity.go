package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveTypes enumerates the accepted leave categories.
var LeaveTypes = []string{"Annual Leave", "Sick Leave", "Personal Leave"}

type Leave struct {
	ID        string
	WorkerID  string
	Tenant    string
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	TotalDays int
	Reason    string
	Status    Status

	// WorkerViewed flips to false whenever the admin decides, so the worker
	// sees the outcome once
	WorkerViewed bool
	Document     *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerName     *string
	WorkerPhoto    *string
	DepartmentName *string
}
