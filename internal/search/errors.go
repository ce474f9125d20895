package search

import "errors"

// Domain-specific errors for the search package.
var (
	ErrEmptyQuery              = errors.New("search query is empty")
	ErrUpstreamUnavailable     = errors.New("search service unavailable")
	ErrUpstreamFailed          = errors.New("search service returned an error")
	ErrInvalidUpstreamResponse = errors.New("search service returned an invalid response")
)
