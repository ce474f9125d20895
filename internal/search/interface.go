package search

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Query validates input, merges defaults and forwards it to the search service.
	Query(ctx context.Context, input QueryInput) (QueryOutput, error)
}
