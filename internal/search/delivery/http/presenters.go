package http

import (
	"encoding/json"

	"anchorpoint-proxy/internal/search"
)

// --- Request DTOs ---

type modelReq struct {
	Provider *string
	Name     *string
	Extra    map[string]json.RawMessage
	Verbatim map[string]json.RawMessage
}

type queryReq struct {
	Query              *string
	FocusMode          *string
	OptimizationMode   *string
	SystemInstructions *string
	Stream             *bool
	ChatModel          *modelReq
	EmbeddingModel     *modelReq
	History            []json.RawMessage
	Extra              map[string]json.RawMessage
	Verbatim           map[string]json.RawMessage
}

func (r queryReq) validate() error {
	if r.Query == nil || isBlank(*r.Query) {
		return errQueryRequired()
	}
	return nil
}

func (r queryReq) toInput() search.QueryInput {
	input := search.QueryInput{
		FocusMode:          r.FocusMode,
		OptimizationMode:   r.OptimizationMode,
		SystemInstructions: r.SystemInstructions,
		Stream:             r.Stream,
		ChatModel:          r.ChatModel.toInput(),
		EmbeddingModel:     r.EmbeddingModel.toInput(),
		History:            r.History,
		Extra:              r.Extra,
		Verbatim:           r.Verbatim,
	}
	if r.Query != nil {
		input.Query = *r.Query
	}
	return input
}

func (m *modelReq) toInput() *search.ModelInput {
	if m == nil {
		return nil
	}
	return &search.ModelInput{
		Provider: m.Provider,
		Name:     m.Name,
		Extra:    m.Extra,
		Verbatim: m.Verbatim,
	}
}

// --- Swagger-only DTOs ---

type modelDoc struct {
	Provider string `json:"provider" example:"Custom OpenAI"`
	Name     string `json:"name"     example:"deepseek/deepseek-r1-0528:free"`
}

type queryReqDoc struct {
	Query              string     `json:"query"              example:"Fort Bragg housing"`
	FocusMode          string     `json:"focusMode"          example:"webSearch"`
	OptimizationMode   string     `json:"optimizationMode"   example:"speed"`
	SystemInstructions string     `json:"systemInstructions"`
	Stream             bool       `json:"stream"`
	ChatModel          modelDoc   `json:"chatModel"`
	EmbeddingModel     modelDoc   `json:"embeddingModel"`
	History            [][]string `json:"history"`
}

type sourceDoc struct {
	PageContent string            `json:"pageContent"`
	Metadata    map[string]string `json:"metadata"`
}

type queryRespDoc struct {
	Message string      `json:"message"`
	Sources []sourceDoc `json:"sources"`
}
