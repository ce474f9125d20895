package usecase

import (
	"anchorpoint-proxy/internal/search"
	"anchorpoint-proxy/pkg/log"
	"anchorpoint-proxy/pkg/perplexica"
)

// implUseCase is the private implementation of search.UseCase.
type implUseCase struct {
	l        log.Logger
	client   perplexica.IPerplexica
	defaults search.Defaults
}

// Ensure implUseCase implements search.UseCase
var _ search.UseCase = (*implUseCase)(nil)

// New creates a new search UseCase implementation.
func New(l log.Logger, client perplexica.IPerplexica, defaults search.Defaults) *implUseCase {
	return &implUseCase{
		l:        l,
		client:   client,
		defaults: defaults,
	}
}
