package skyapi

import (
	"fmt"
	"strings"
)

// NotFoundError means the upstream answered with status:false. Callers can
// tell it apart from a transport failure and render a not-found message.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func errNotFound() *NotFoundError {
	return &NotFoundError{Message: "Nothing found"}
}

// TransportError is a network or HTTP-level failure. Body carries the
// upstream error payload verbatim; nothing is retried.
type TransportError struct {
	StatusCode int
	Body       []byte
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return "upstream request failed: " + string(e.Body)
	}
	return fmt.Sprintf("upstream HTTP %d: %s", e.StatusCode, e.Body)
}

// ExhaustedCandidatesError means every itinerary-id candidate of a detail
// lookup failed. It keeps all per-candidate errors, not just the last one.
type ExhaustedCandidatesError struct {
	Errors []error
}

func (e *ExhaustedCandidatesError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("all %d itinerary candidates failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}
