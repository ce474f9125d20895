package search

import "encoding/json"

// --- Defaults ---

// ModelRef names a provider/model pair.
type ModelRef struct {
	Provider string
	Name     string
}

// Defaults are merged underneath every caller-supplied request.
type Defaults struct {
	FocusMode          string
	OptimizationMode   string
	SystemInstructions string
	Stream             bool
	ChatModel          ModelRef
	EmbeddingModel     ModelRef
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		FocusMode:          DefaultFocusMode,
		OptimizationMode:   DefaultOptimizationMode,
		SystemInstructions: DefaultSystemInstructions,
		Stream:             DefaultStream,
		ChatModel: ModelRef{
			Provider: DefaultChatModelProvider,
			Name:     DefaultChatModelName,
		},
		EmbeddingModel: ModelRef{
			Provider: DefaultEmbeddingModelProvider,
			Name:     DefaultEmbeddingModelName,
		},
	}
}

// --- UseCase Inputs ---

// ModelInput is a caller-supplied model object. Nil fields were not supplied.
// Verbatim holds provider/name values that were not strings.
type ModelInput struct {
	Provider *string
	Name     *string
	Extra    map[string]json.RawMessage
	Verbatim map[string]json.RawMessage
}

// QueryInput is a parsed search request. Nil fields were not supplied.
// Verbatim holds known fields sent with an unexpected JSON type; they are
// forwarded as sent instead of the default.
type QueryInput struct {
	Query              string
	FocusMode          *string
	OptimizationMode   *string
	SystemInstructions *string
	Stream             *bool
	ChatModel          *ModelInput
	EmbeddingModel     *ModelInput
	History            []json.RawMessage
	Extra              map[string]json.RawMessage
	Verbatim           map[string]json.RawMessage
}

// --- UseCase Outputs ---

// QueryOutput carries the upstream answer verbatim.
type QueryOutput struct {
	Body        json.RawMessage
	SourceCount int
}
