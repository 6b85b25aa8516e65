package topic

import "context"

type TopicResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type TopicService interface {
	// CreateTopic registers a topic under the acting admin's tenant
	CreateTopic(ctx context.Context, req CreateTopicRequest) (TopicResponse, error)

	// ListTopics retrieves the tenant's topics
	ListTopics(ctx context.Context) ([]TopicResponse, error)

	// UpdateTopic applies partial changes; omitted fields keep their value
	UpdateTopic(ctx context.Context, req UpdateTopicRequest) (TopicResponse, error)

	// DeleteTopic removes a topic. Tasks that referenced it keep their
	// awarded points; only future submissions lose the bonus.
	DeleteTopic(ctx context.Context, id string) error
}
