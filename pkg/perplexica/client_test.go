package perplexica_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"anchorpoint-proxy/pkg/perplexica"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

func sampleRequest() perplexica.SearchRequest {
	return perplexica.SearchRequest{
		ChatModel:          perplexica.Model{Provider: "Custom OpenAI", Name: "deepseek"},
		EmbeddingModel:     perplexica.Model{Provider: "Google Gemini", Name: "text-embedding-004"},
		OptimizationMode:   "speed",
		FocusMode:          "webSearch",
		Query:              "Fort Bragg housing",
		SystemInstructions: "be helpful",
	}
}

func TestNew(t *testing.T) {
	_, err := perplexica.New("", "key")
	assert.Error(t, err)

	_, err = perplexica.New("http://upstream", "")
	assert.Error(t, err)

	c, err := perplexica.New("http://upstream/", "key")
	require.NoError(t, err)
	c.CloseIdleConnections()
}

func TestSearch(t *testing.T) {
	var (
		mu      sync.Mutex
		gotBody map[string]any
	)
	lastBody := func() map[string]any {
		mu.Lock()
		defer mu.Unlock()
		return gotBody
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"bad key"}`))
			return
		}
		if r.URL.Path != perplexica.SearchPath || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(body, &decoded)
		mu.Lock()
		gotBody = decoded
		mu.Unlock()

		switch decoded["query"] {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("model crashed\n"))
		case "not_json":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>oops</html>"))
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"hi","sources":[]}`))
		}
	}))
	defer ts.Close()

	client, err := perplexica.New(ts.URL+"/", "test-key")
	require.NoError(t, err)
	defer client.CloseIdleConnections()

	t.Run("Success Flow", func(t *testing.T) {
		req := sampleRequest()
		req.Extra = map[string]json.RawMessage{
			"copilotEnabled": json.RawMessage(`true`),
			"query":          json.RawMessage(`"ignored"`),
		}

		raw, err := client.Search(context.Background(), req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"hi","sources":[]}`, string(raw))

		sent := lastBody()
		assert.Equal(t, "Fort Bragg housing", sent["query"])
		assert.Equal(t, true, sent["copilotEnabled"])
		assert.Equal(t, false, sent["stream"])
		assert.Equal(t, []any{}, sent["history"])
		assert.Equal(t, map[string]any{"provider": "Custom OpenAI", "name": "deepseek"}, sent["chatModel"])
	})

	t.Run("Upstream Error Flow", func(t *testing.T) {
		req := sampleRequest()
		req.Query = "cause_500"

		_, err := client.Search(context.Background(), req)
		var apiErr *perplexica.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "model crashed", apiErr.Body)
		assert.False(t, errors.Is(err, perplexica.ErrUnavailable))
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, err := perplexica.New(ts.URL, "bad-key")
		require.NoError(t, err)
		defer badClient.CloseIdleConnections()

		_, err = badClient.Search(context.Background(), sampleRequest())
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "401"), "expected 401 in %v", err)
	})

	t.Run("Invalid JSON Flow", func(t *testing.T) {
		req := sampleRequest()
		req.Query = "not_json"

		_, err := client.Search(context.Background(), req)
		assert.ErrorIs(t, err, perplexica.ErrInvalidResponse)
	})
}

func TestSearch_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client, err := perplexica.New("http://"+addr, "test-key")
	require.NoError(t, err)
	defer client.CloseIdleConnections()

	_, err = client.Search(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, perplexica.ErrUnavailable)
}

func TestSearch_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer ts.Close()

	client, err := perplexica.New(ts.URL, "test-key")
	require.NoError(t, err)
	client.SetTimeout(50 * time.Millisecond)
	defer client.CloseIdleConnections()

	_, err = client.Search(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, perplexica.ErrUnavailable)
}

func TestModelMarshalJSON(t *testing.T) {
	m := perplexica.Model{
		Provider: "custom_openai",
		Name:     "gpt",
		Extra: map[string]json.RawMessage{
			"customOpenAIBaseURL": json.RawMessage(`"http://llm:8000"`),
			"name":                json.RawMessage(`"shadowed"`),
		},
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"provider":"custom_openai","name":"gpt","customOpenAIBaseURL":"http://llm:8000"}`, string(b))
}

func TestSearchRequestMarshalJSON_Verbatim(t *testing.T) {
	req := sampleRequest()
	req.Verbatim = map[string]json.RawMessage{
		"stream":    json.RawMessage(`"yes"`),
		"chatModel": json.RawMessage(`"gpt"`),
		"history":   json.RawMessage(`{}`),
		"query":     json.RawMessage(`42`),
	}
	req.Extra = map[string]json.RawMessage{
		"focusMode": json.RawMessage(`"ignored"`),
		"a.b":       json.RawMessage(`1`),
		"x*y?":      json.RawMessage(`[true]`),
		":lead":     json.RawMessage(`null`),
	}

	b, err := json.Marshal(req)
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(b, &sent))
	assert.Equal(t, "yes", sent["stream"])
	assert.Equal(t, "gpt", sent["chatModel"])
	assert.Equal(t, map[string]any{}, sent["history"])
	assert.Equal(t, "Fort Bragg housing", sent["query"])
	assert.Equal(t, req.FocusMode, sent["focusMode"])
	assert.Equal(t, float64(1), sent["a.b"])
	assert.Equal(t, []any{true}, sent["x*y?"])
	assert.Contains(t, sent, ":lead")
	assert.Nil(t, sent[":lead"])
}

func TestModelMarshalJSON_Verbatim(t *testing.T) {
	m := perplexica.Model{
		Provider: "Google Gemini",
		Name:     "text-embedding-004",
		Verbatim: map[string]json.RawMessage{"name": json.RawMessage(`5`)},
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"provider":"Google Gemini","name":5}`, string(b))
}
