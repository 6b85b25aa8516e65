package foodrequest

import "time"

type Status string

const (
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// FoodRequest is one worker's meal request for one tenant-local day.
type FoodRequest struct {
	ID        string
	WorkerID  string
	Tenant    string
	Date      string // civil date "2006-01-02"
	Status    Status
	CreatedAt time.Time

	// DTO
	WorkerName     *string
	DepartmentName *string
}

// Settings holds the per-tenant food request switch.
type Settings struct {
	Tenant             string
	FoodRequestEnabled bool
	UpdatedBy          *string
	UpdatedAt          time.Time
}
