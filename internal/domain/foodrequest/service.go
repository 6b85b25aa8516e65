package foodrequest

import "context"

type FoodRequestResponse struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"worker_id"`
	WorkerName *string `json:"worker_name,omitempty"`
	Department *string `json:"department,omitempty"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
}

type SettingsResponse struct {
	FoodRequestEnabled bool   `json:"food_request_enabled"`
	UpdatedBy          string `json:"updated_by,omitempty"`
}

type FoodRequestService interface {
	// Submit files the acting worker's request for the current tenant-local
	// day; at most one per day, and only while the switch is on
	Submit(ctx context.Context) (FoodRequestResponse, error)

	// ListToday retrieves today's requests for the admin view
	ListToday(ctx context.Context) ([]FoodRequestResponse, error)

	// GetSettings retrieves the tenant's food request switch
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// SetEnabled flips the switch
	SetEnabled(ctx context.Context, enabled bool) (SettingsResponse, error)
}
