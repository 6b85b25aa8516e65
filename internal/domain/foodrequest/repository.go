package foodrequest

import "context"

type FoodRequestRepository interface {
	// Create inserts a new request
	Create(ctx context.Context, fr FoodRequest) (FoodRequest, error)

	// ExistsForDate reports whether the worker already requested on a date
	ExistsForDate(ctx context.Context, workerID string, tenant string, date string) (bool, error)

	// ListByDate retrieves all requests of a tenant for one date with worker
	// details joined
	ListByDate(ctx context.Context, tenant string, date string) ([]FoodRequest, error)
}

type SettingsRepository interface {
	// Get retrieves tenant settings, creating the default row on first use
	Get(ctx context.Context, tenant string) (Settings, error)

	// Set persists the food request switch
	Set(ctx context.Context, s Settings) (Settings, error)
}
