package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/chat"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/config"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/dispatch"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/llm"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/logging"
)

func newTestServer(mock *llm.MockClient) *Server {
	dispatcher := dispatch.New(mock, dispatch.Config{MaxRetries: 0, BaseDelay: time.Millisecond}, logging.Nop())
	service := chat.NewService(dispatcher, logging.Nop())
	cfg := config.Config{
		Port:           "0",
		AllowedOrigins: []string{"http://localhost:8081"},
	}
	return New(cfg, service, "test-model", logging.Nop())
}

func postChat(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "test-model", body["model"])
	require.Equal(t, "long-context-stateless", body["approach"])
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestServer(llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"online"`)
}

func TestChatSuccess(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResult{Answer: "Open the Customer App."})
	s := newTestServer(mock)

	w := postChat(t, s, map[string]any{
		"message": "How do I book an appointment?",
		"history": []map[string]string{
			{"role": "user", "text": "hi"},
			{"role": "assistant", "text": "hello"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Answer          string   `json:"answer"`
		MatchedSections []string `json:"matchedSections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Open the Customer App.", body.Answer)
	require.Equal(t, []string{"4. Customer FAQ"}, body.MatchedSections)
}

func TestChatValidation(t *testing.T) {
	cases := []struct {
		name string
		body map[string]any
	}{
		{"empty message", map[string]any{"message": "   "}},
		{"missing message", map[string]any{}},
		{"message too long", map[string]any{"message": strings.Repeat("a", 1001)}},
		{"bad role", map[string]any{
			"message": "hi",
			"history": []map[string]string{{"role": "system", "text": "x"}},
		}},
		{"history text too long", map[string]any{
			"message": "hi",
			"history": []map[string]string{{"role": "user", "text": strings.Repeat("a", 2001)}},
		}},
		{"too many history turns", map[string]any{
			"message": "hi",
			"history": makeHistory(51),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(llm.NewMockClient(llm.MockResult{Answer: "unused"}))
			w := postChat(t, s, tc.body)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			require.Contains(t, w.Body.String(), "validation_error")
		})
	}
}

func TestChatMalformedJSON(t *testing.T) {
	s := newTestServer(llm.NewMockClient())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestChatFailureClassMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"rate limit", errors.New("429 resource exhausted"), http.StatusTooManyRequests, "rate_limit"},
		{"configuration", errors.New("invalid api key"), http.StatusInternalServerError, "configuration"},
		{"unavailable", errors.New("model is overloaded"), http.StatusServiceUnavailable, "service_unavailable"},
		{"blocked", errors.New("stopped by safety settings"), http.StatusBadRequest, "content_blocked"},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(llm.NewMockClient(llm.MockResult{Err: tc.err}))
			w := postChat(t, s, map[string]any{"message": "hello there"})

			require.Equal(t, tc.wantStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tc.wantError, body["error"])
		})
	}
}

func TestChatRateLimitIncludesRetryHint(t *testing.T) {
	s := newTestServer(llm.NewMockClient(llm.MockResult{Err: errors.New("quota exceeded")}))

	w := postChat(t, s, map[string]any{"message": "hello"})

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 60, body["retry_after"])
}

func TestUnknownAPIRouteReturns404(t *testing.T) {
	s := newTestServer(llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/api/does-not-exist", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "not_found")
}

func TestSPAFallbackServesIndex(t *testing.T) {
	s := newTestServer(llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/some/frontend/route", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), "API Server")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	s := newTestServer(llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func makeHistory(n int) []map[string]string {
	history := make([]map[string]string, n)
	for i := range history {
		history[i] = map[string]string{"role": "user", "text": fmt.Sprintf("turn %d", i)}
	}
	return history
}
