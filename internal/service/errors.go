package service

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when the upstream credential is not configured.
var ErrMissingAPIKey = errors.New("missing GOOGLE_MAPS_API_KEY")

const defaultUpstreamMessage = "Upstream error"

// UpstreamError reports a search the provider answered with a status other
// than OK or ZERO_RESULTS.
type UpstreamError struct {
	Status  string
	Message string
}

func NewUpstreamError(status, message string) *UpstreamError {
	if message == "" {
		message = defaultUpstreamMessage
	}
	return &UpstreamError{Status: status, Message: message}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %q: %s", e.Status, e.Message)
}
