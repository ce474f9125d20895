package search

// MaxQueryLength is the longest query, in characters, forwarded upstream.
const MaxQueryLength = 500

// Built-in upstream defaults.
const (
	DefaultFocusMode          = "webSearch"
	DefaultOptimizationMode   = "speed"
	DefaultSystemInstructions = "Focus on providing helpful information for military spouses about PCS moves, local resources, community support, base-specific information, housing, schools, healthcare, and other relevant topics for military families."
	DefaultStream             = false

	DefaultChatModelProvider      = "Custom OpenAI"
	DefaultChatModelName          = "deepseek/deepseek-r1-0528:free"
	DefaultEmbeddingModelProvider = "Google Gemini"
	DefaultEmbeddingModelName     = "text-embedding-004"
)

// Request body field names.
const (
	FieldQuery              = "query"
	FieldFocusMode          = "focusMode"
	FieldOptimizationMode   = "optimizationMode"
	FieldSystemInstructions = "systemInstructions"
	FieldStream             = "stream"
	FieldChatModel          = "chatModel"
	FieldEmbeddingModel     = "embeddingModel"
	FieldHistory            = "history"

	FieldModelProvider = "provider"
	FieldModelName     = "name"
)

// Log prefixes
const (
	LogPrefixQuery = "internal.search.usecase.Query"
)
