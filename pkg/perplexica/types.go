package perplexica

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Model selects a provider/model pair on the search service.
// Extra carries any additional keys (e.g. customOpenAIBaseURL) verbatim.
// Verbatim replaces provider or name with a raw value the caller sent.
type Model struct {
	Provider string                     `json:"provider"`
	Name     string                     `json:"name"`
	Extra    map[string]json.RawMessage `json:"-"`
	Verbatim map[string]json.RawMessage `json:"-"`
}

// MarshalJSON implements json.Marshaler for Model.
func (m Model) MarshalJSON() ([]byte, error) {
	type alias Model
	return marshalWithExtra(alias(m), m.Extra, m.Verbatim)
}

// SearchRequest is the request body for POST /api/search.
// Extra holds passthrough fields; keys that collide with a typed field are ignored.
// Verbatim holds typed fields the caller sent with another JSON type. They replace
// the typed value, except query which is never replaced.
type SearchRequest struct {
	ChatModel          Model                      `json:"chatModel"`
	EmbeddingModel     Model                      `json:"embeddingModel"`
	OptimizationMode   string                     `json:"optimizationMode"`
	FocusMode          string                     `json:"focusMode"`
	Query              string                     `json:"query"`
	SystemInstructions string                     `json:"systemInstructions"`
	Stream             bool                       `json:"stream"`
	History            []json.RawMessage          `json:"history"`
	Extra              map[string]json.RawMessage `json:"-"`
	Verbatim           map[string]json.RawMessage `json:"-"`
}

// MarshalJSON implements json.Marshaler for SearchRequest.
func (r SearchRequest) MarshalJSON() ([]byte, error) {
	type alias SearchRequest
	if r.History == nil {
		r.History = []json.RawMessage{}
	}
	verbatim := r.Verbatim
	if _, ok := verbatim[fieldQuery]; ok {
		verbatim = maps.Clone(verbatim)
		delete(verbatim, fieldQuery)
	}
	return marshalWithExtra(alias(r), r.Extra, verbatim)
}

// marshalWithExtra encodes v, adds every extra key v does not already define,
// then sets the verbatim keys over whatever is there.
func marshalWithExtra(v any, extra, verbatim map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || (len(extra) == 0 && len(verbatim) == 0) {
		return b, err
	}

	taken := make(map[string]struct{})
	gjson.ParseBytes(b).ForEach(func(key, _ gjson.Result) bool {
		taken[key.String()] = struct{}{}
		return true
	})

	for _, k := range slices.Sorted(maps.Keys(extra)) {
		if _, ok := taken[k]; ok || k == "" {
			continue
		}
		if b, err = sjson.SetRawBytes(b, pathKey(k), extra[k]); err != nil {
			return nil, err
		}
	}
	for _, k := range slices.Sorted(maps.Keys(verbatim)) {
		if k == "" {
			continue
		}
		if b, err = sjson.SetRawBytes(b, pathKey(k), verbatim[k]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// pathKey escapes k so sjson treats it as one literal object key.
func pathKey(k string) string {
	p := gjson.Escape(k)
	if strings.HasPrefix(p, ":") {
		p = `\` + p
	}
	return p
}
