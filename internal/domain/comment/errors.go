package comment

import "errors"

// Comment domain errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyText       = errors.New("comment text is required")
)
