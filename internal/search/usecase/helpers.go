package usecase

import (
	"encoding/json"
	"maps"
	"strings"

	"anchorpoint-proxy/internal/search"
	"anchorpoint-proxy/pkg/perplexica"
)

// sanitizeQuery trims q and truncates it to search.MaxQueryLength characters.
func sanitizeQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", search.ErrEmptyQuery
	}

	runes := []rune(q)
	if len(runes) > search.MaxQueryLength {
		q = string(runes[:search.MaxQueryLength])
	}
	return q, nil
}

// buildRequest merges the configured defaults underneath input.
// Caller values win field by field; model objects merge key by key.
func (uc *implUseCase) buildRequest(input search.QueryInput) perplexica.SearchRequest {
	d := uc.defaults

	req := perplexica.SearchRequest{
		ChatModel:          mergeModel(d.ChatModel, input.ChatModel),
		EmbeddingModel:     mergeModel(d.EmbeddingModel, input.EmbeddingModel),
		OptimizationMode:   stringOr(input.OptimizationMode, d.OptimizationMode),
		FocusMode:          stringOr(input.FocusMode, d.FocusMode),
		Query:              input.Query,
		SystemInstructions: stringOr(input.SystemInstructions, d.SystemInstructions),
		Stream:             d.Stream,
		History:            input.History,
		Extra:              input.Extra,
		Verbatim:           input.Verbatim,
	}
	if input.Stream != nil {
		req.Stream = *input.Stream
	}
	if req.History == nil {
		req.History = []json.RawMessage{}
	}

	return req
}

func mergeModel(def search.ModelRef, in *search.ModelInput) perplexica.Model {
	m := perplexica.Model{
		Provider: def.Provider,
		Name:     def.Name,
	}
	if in == nil {
		return m
	}

	m.Provider = stringOr(in.Provider, m.Provider)
	m.Name = stringOr(in.Name, m.Name)
	if len(in.Extra) > 0 {
		m.Extra = maps.Clone(in.Extra)
	}
	if len(in.Verbatim) > 0 {
		m.Verbatim = maps.Clone(in.Verbatim)
	}
	return m
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
