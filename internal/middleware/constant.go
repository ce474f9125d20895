package middleware

// Header names
const (
	HeaderOrigin           = "Origin"
	HeaderVary             = "Vary"
	HeaderRequestID        = "X-Request-ID"
	HeaderRetryAfter       = "Retry-After"
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderMaxAge           = "Access-Control-Max-Age"
)

// Preflight answers
const (
	PreflightAllowMethods = "POST, OPTIONS"
	PreflightAllowHeaders = "Content-Type, Authorization"
	PreflightMaxAge       = "86400"
)

const (
	ContextKeyRequestID = "request_id"
	maxRequestIDLength  = 128
)
