package chat

import "errors"

var (
	ErrEmptyThreadID   = errors.New("thread id is required")
	ErrInvalidInterval = errors.New("poll interval must be positive")
	ErrNilRenderer     = errors.New("renderer is required")
)
