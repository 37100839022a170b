package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestGroqClient(t *testing.T, serverURL string) GroqClient {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", serverURL)
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")

	client, err := NewGroqClient(testLogger(t))
	if err != nil {
		t.Fatalf("NewGroqClient: %v", err)
	}
	return client
}

func TestGroqClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	if _, err := NewGroqClient(testLogger(t)); err == nil {
		t.Fatalf("expected error when GROQ_API_KEY is unset")
	}
}

func TestGroqClientGenerateLessons(t *testing.T) {
	var captured groqChatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"lessons\":[]}"}}]}`))
	}))
	defer server.Close()

	client := newTestGroqClient(t, server.URL)

	got, err := client.GenerateLessons(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("GenerateLessons: %v", err)
	}
	if got != `{"lessons":[]}` {
		t.Fatalf("content = %q", got)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if captured.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("model = %q", captured.Model)
	}
	if captured.Temperature != 0.7 || captured.MaxTokens != 4096 {
		t.Fatalf("generation config = temp %v, max_tokens %d", captured.Temperature, captured.MaxTokens)
	}
	if captured.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format = %q", captured.ResponseFormat.Type)
	}
	if len(captured.Messages) != 2 ||
		captured.Messages[0].Role != "system" || captured.Messages[0].Content != "system text" ||
		captured.Messages[1].Role != "user" || captured.Messages[1].Content != "user text" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
}

func TestGroqClientUpstreamError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer server.Close()

	client := newTestGroqClient(t, server.URL)

	_, err := client.GenerateLessons(context.Background(), "s", "u")
	if err == nil {
		t.Fatalf("expected error on HTTP 429")
	}
	var httpErr *groqHTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected groqHTTPError 429, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (no retries)", calls)
	}
}

func TestGroqClientEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestGroqClient(t, server.URL)

	_, err := client.GenerateLessons(context.Background(), "s", "u")
	if err == nil || !strings.Contains(err.Error(), "empty choices") {
		t.Fatalf("expected empty-choices error, got %v", err)
	}
}
