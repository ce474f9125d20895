package http

import (
	"errors"
	"fmt"
	"net/http"

	"anchorpoint-proxy/internal/search"
	pkgErrors "anchorpoint-proxy/pkg/errors"
	"anchorpoint-proxy/pkg/perplexica"
)

const msgQueryRequired = "Query parameter is required and must be a non-empty string"

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var apiErr *perplexica.APIError

	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return pkgErrors.BadRequest(msgQueryRequired)
	case errors.Is(err, search.ErrUpstreamUnavailable):
		return pkgErrors.ErrServiceUnavailable
	case errors.As(err, &apiErr):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, pkgErrors.CodeUpstreamError,
			fmt.Sprintf("Search API returned %d: %s", apiErr.StatusCode, apiErr.Body))
	case errors.Is(err, search.ErrInvalidUpstreamResponse):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, pkgErrors.CodeInternalError,
			"Search API returned an invalid response")
	default:
		return pkgErrors.ErrInternalServer
	}
}
