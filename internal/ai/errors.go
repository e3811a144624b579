package ai

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("ai: api key is not configured")
	ErrRateLimited   = errors.New("ai: provider rate limit exceeded")
	ErrTimeout       = errors.New("ai: request timed out")
	ErrEmptyResponse = errors.New("ai: no content in response")
)

// APIError is returned for non-success provider responses other than 429.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai: api request failed with status %d: %s", e.StatusCode, e.Message)
}
