package topic

import "context"

type TopicRepository interface {
	// Create inserts a new topic
	Create(ctx context.Context, t Topic) (Topic, error)

	// GetByID retrieves a topic with tenant isolation
	GetByID(ctx context.Context, id string, tenant string) (Topic, error)

	// GetByIDs resolves a set of topic ids within a tenant. Ids that do not
	// resolve are simply absent from the result, not an error: the scoring
	// engine drops them silently.
	GetByIDs(ctx context.Context, ids []string, tenant string) ([]Topic, error)

	// NameExists checks tenant-scoped, case-insensitive name uniqueness
	NameExists(ctx context.Context, tenant string, name string, excludeID string) (bool, error)

	// List retrieves all topics of a tenant ordered by department then name
	List(ctx context.Context, tenant string) ([]Topic, error)

	// Update persists name, points and department scope
	Update(ctx context.Context, t Topic) error

	// Delete removes a topic
	Delete(ctx context.Context, id string, tenant string) error
}
