package perplexica

import "time"

const (
	SearchPath     = "/api/search"
	DefaultTimeout = 30 * time.Second

	fieldQuery = "query"

	// maxErrorBodyBytes bounds how much of a failed response is quoted back in APIError.
	maxErrorBodyBytes = 2 << 10
	// maxResponseBytes bounds a successful search answer.
	maxResponseBytes = 10 << 20
)
