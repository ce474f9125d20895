package response

const (
	// TimestampFormat matches JavaScript's Date.prototype.toISOString.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	ContentTypeJSON = "application/json; charset=utf-8"
)
