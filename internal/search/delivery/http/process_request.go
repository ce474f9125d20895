package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"anchorpoint-proxy/internal/search"
	pkgErrors "anchorpoint-proxy/pkg/errors"
)

// processQueryReq reads, decodes and validates the POST /query body.
// Only query is validated; everything else is forwarded.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, pkgErrors.ErrPayloadTooLarge
		}
		return req, pkgErrors.ErrInvalidJSON
	}

	if !gjson.ValidBytes(body) {
		return req, pkgErrors.ErrInvalidJSON
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return req, pkgErrors.BadRequest("Request body must be a JSON object")
	}

	req = decodeQueryReq(doc)
	return req, req.validate()
}

// decodeQueryReq splits doc into the typed request and passthrough fields.
// A null value counts as absent. A known field with another JSON type is kept
// in Verbatim and forwarded as sent.
func decodeQueryReq(doc gjson.Result) queryReq {
	var req queryReq

	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		delete(req.Verbatim, name)

		switch name {
		case search.FieldQuery:
			req.Query = nil
			if value.Type == gjson.String {
				q := value.String()
				req.Query = &q
			}
		case search.FieldFocusMode:
			req.FocusMode = decodeString(name, value, &req.Verbatim)
		case search.FieldOptimizationMode:
			req.OptimizationMode = decodeString(name, value, &req.Verbatim)
		case search.FieldSystemInstructions:
			req.SystemInstructions = decodeString(name, value, &req.Verbatim)
		case search.FieldStream:
			req.Stream = decodeBool(name, value, &req.Verbatim)
		case search.FieldChatModel:
			req.ChatModel = decodeModel(name, value, &req.Verbatim)
		case search.FieldEmbeddingModel:
			req.EmbeddingModel = decodeModel(name, value, &req.Verbatim)
		case search.FieldHistory:
			req.History = decodeHistory(name, value, &req.Verbatim)
		default:
			setRaw(&req.Extra, name, value)
		}
		return true
	})

	return req
}

func decodeString(name string, v gjson.Result, verbatim *map[string]json.RawMessage) *string {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		s := v.String()
		return &s
	}
	setRaw(verbatim, name, v)
	return nil
}

func decodeBool(name string, v gjson.Result, verbatim *map[string]json.RawMessage) *bool {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.True, gjson.False:
		b := v.Bool()
		return &b
	}
	setRaw(verbatim, name, v)
	return nil
}

func decodeModel(name string, v gjson.Result, verbatim *map[string]json.RawMessage) *modelReq {
	if v.Type == gjson.Null {
		return nil
	}
	if !v.IsObject() {
		setRaw(verbatim, name, v)
		return nil
	}

	m := &modelReq{}
	v.ForEach(func(key, value gjson.Result) bool {
		field := key.String()
		delete(m.Verbatim, field)

		switch field {
		case search.FieldModelProvider:
			m.Provider = decodeString(field, value, &m.Verbatim)
		case search.FieldModelName:
			m.Name = decodeString(field, value, &m.Verbatim)
		default:
			setRaw(&m.Extra, field, value)
		}
		return true
	})
	return m
}

func decodeHistory(name string, v gjson.Result, verbatim *map[string]json.RawMessage) []json.RawMessage {
	if v.Type == gjson.Null {
		return nil
	}
	if !v.IsArray() {
		setRaw(verbatim, name, v)
		return nil
	}

	history := []json.RawMessage{}
	for _, item := range v.Array() {
		history = append(history, json.RawMessage(item.Raw))
	}
	return history
}

func setRaw(m *map[string]json.RawMessage, key string, v gjson.Result) {
	if *m == nil {
		*m = make(map[string]json.RawMessage)
	}
	(*m)[key] = json.RawMessage(v.Raw)
}

func errQueryRequired() error {
	return pkgErrors.BadRequest(msgQueryRequired)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
