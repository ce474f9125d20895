package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"anchorpoint-proxy/internal/search"
	"anchorpoint-proxy/pkg/perplexica"
)

// Query sanitizes the query, merges defaults and forwards the request upstream.
// The upstream body is returned untouched.
func (uc *implUseCase) Query(ctx context.Context, input search.QueryInput) (search.QueryOutput, error) {
	query, err := sanitizeQuery(input.Query)
	if err != nil {
		return search.QueryOutput{}, err
	}
	input.Query = query

	req := uc.buildRequest(input)

	body, err := uc.client.Search(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: client.Search: %v", search.LogPrefixQuery, err)
		return search.QueryOutput{}, mapClientError(err)
	}

	output := search.QueryOutput{
		Body:        body,
		SourceCount: int(gjson.GetBytes(body, "sources.#").Int()),
	}

	uc.l.Infof(ctx, "%s: focus=%s optimization=%s query_len=%d sources=%d",
		search.LogPrefixQuery, req.FocusMode, req.OptimizationMode, len([]rune(req.Query)), output.SourceCount)

	return output, nil
}

func mapClientError(err error) error {
	var apiErr *perplexica.APIError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Errorf("%w: %w", search.ErrUpstreamFailed, err)
	case errors.Is(err, perplexica.ErrUnavailable):
		return fmt.Errorf("%w: %w", search.ErrUpstreamUnavailable, err)
	case errors.Is(err, perplexica.ErrInvalidResponse):
		return fmt.Errorf("%w: %w", search.ErrInvalidUpstreamResponse, err)
	default:
		return err
	}
}
