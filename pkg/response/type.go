package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the JSON body of every error response.
type ErrorResp struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody is the payload of the error envelope.
type ErrorBody struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp Timestamp `json:"timestamp" swaggertype:"string" example:"2026-01-02T15:04:05.000Z"`
}

// Timestamp is a time that marshals as ISO-8601 UTC with millisecond precision.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(TimestampFormat))
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(TimestampFormat, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}
