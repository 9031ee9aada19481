package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAICompleteStreams(t *testing.T) {
	var captured openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"{\\\"ok\\\":\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"true}\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	provider := NewOpenAIProvider(Config{
		Model:  "gpt-4o-mini",
		APIKey: "test-key",
		APIURL: server.URL,
	})
	provider.client = server.Client()

	stream, err := provider.Complete(context.Background(), []Message{
		{Role: "system", Content: "be terse"},
		{Role: "user", Content: "hi"},
	}, &Options{JSONResponse: true, Temperature: 0.8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := CollectText(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"ok":true}` {
		t.Fatalf("unexpected text: %q", text)
	}

	if !captured.Stream {
		t.Fatal("expected a streaming request")
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Fatalf("expected json_object response format, got %+v", captured.ResponseFormat)
	}
	if captured.Temperature == nil || *captured.Temperature != 0.8 {
		t.Fatal("expected the temperature to be forwarded")
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(captured.Messages))
	}
}

func TestOpenAICompleteRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"bad model"}`)
	}))
	defer server.Close()

	provider := NewOpenAIProvider(Config{Model: "gpt-4o-mini", APIURL: server.URL})
	provider.client = server.Client()

	if _, err := provider.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil); err == nil {
		t.Fatal("expected error for a 400 response")
	}
}

func TestOpenAICompleteRequiresModel(t *testing.T) {
	provider := NewOpenAIProvider(Config{})
	if _, err := provider.Complete(context.Background(), nil, nil); err == nil {
		t.Fatal("expected error without a model")
	}
}

func TestOllamaDefaultsToLocalEndpoint(t *testing.T) {
	provider := NewOllamaProvider(Config{Model: "llama3"})
	if provider.openai.apiURL != "http://localhost:11434/v1" {
		t.Fatalf("unexpected api url: %q", provider.openai.apiURL)
	}
}
