package perplexica

import (
	"context"
	"encoding/json"
)

// IPerplexica defines the interface for the upstream search API.
// Implementations are safe for concurrent use.
type IPerplexica interface {
	Search(ctx context.Context, req SearchRequest) (json.RawMessage, error)
}
