package perplexica

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: refused connections, DNS errors, timeouts.
	ErrUnavailable = errors.New("search API unavailable")

	// ErrInvalidResponse marks a 2xx answer that is not valid JSON.
	ErrInvalidResponse = errors.New("search API returned an invalid response")
)

// APIError is returned when the search API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("search API returned %d: %s", e.StatusCode, e.Body)
}
