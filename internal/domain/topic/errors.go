package topic

import "errors"

// Topic domain errors
var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrNameExists    = errors.New("a topic with this name already exists")
	ErrEmptyName     = errors.New("topic name cannot be empty")
)
