package worker

import "time"

// Worker is both an identity record and the accumulator the scoring engine
// writes into. LastPresence carries the attendance toggle state so a scan
// never has to sort historical records.
type Worker struct {
	ID           string
	Tenant       string
	Name         string
	Username     string
	Email        string
	RFID         *string
	PasswordHash string
	DepartmentID *string
	Photo        string

	TotalPoints        int
	TopicPoints        int
	LastPresence       *bool
	LastSubmissionAt   *time.Time
	LastSubmissionData map[string]interface{}

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	DepartmentName *string
}
