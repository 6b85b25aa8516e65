package department

import "time"

type Department struct {
	ID        string
	Tenant    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerCount int
}
