package task

import "time"

// Status of a custom task review. Regular tasks are stored approved.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Task is one scoring submission. Regular tasks are immutable once created;
// custom tasks transition pending -> approved|rejected exactly once.
type Task struct {
	ID       string
	WorkerID string
	Tenant   string

	// Data maps field names to numeric-or-string values. Points are the sum
	// of the parse-or-zero coercion over the values plus resolved topic
	// bonuses.
	Data     map[string]interface{}
	TopicIDs []string
	Points   int

	IsCustom    bool
	Description string
	Status      Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerName     *string
	DepartmentName *string
}
