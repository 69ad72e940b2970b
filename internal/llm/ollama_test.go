package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/aberg/wordbergler/internal/model"
)

func TestOllamaProvider_Suggest_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}

		var apiReq ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if apiReq.Stream {
			t.Error("Expected stream to be false")
		}
		if apiReq.Model != "llama3.1:8b" {
			t.Errorf("Expected model llama3.1:8b, got %s", apiReq.Model)
		}

		resp := ollamaResponse{
			Model:           "llama3.1:8b",
			Response:        "mersey\nkopite\nnot a single word\n",
			Done:            true,
			PromptEvalCount: 40,
			EvalCount:       20,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	config := Config{
		BaseURL: server.URL,
		Model:   "llama3.1:8b",
		Timeout: 5 * time.Second,
	}
	provider, err := NewOllamaProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	req := SuggestRequest{
		Profile:        model.Profile{Names: []string{"John Smith"}},
		MaxSuggestions: 20,
	}

	resp, err := provider.Suggest(context.Background(), req)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	wantWords := []string{"mersey", "kopite"}
	if !reflect.DeepEqual(resp.Words, wantWords) {
		t.Errorf("Unexpected words: %v, want %v", resp.Words, wantWords)
	}
	if len(resp.Rejected) != 1 || resp.Rejected[0] != "not a single word" {
		t.Errorf("Unexpected rejected lines: %v", resp.Rejected)
	}
	if resp.TokensUsed != 60 {
		t.Errorf("Unexpected token usage: %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_Suggest_RequiresModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Suggest(context.Background(), SuggestRequest{})
	if err == nil {
		t.Fatal("Expected error for missing model, got nil")
	}
}

func TestOllamaProvider_Suggest_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	config := Config{
		BaseURL: server.URL,
		Model:   "missing-model",
		Timeout: 5 * time.Second,
	}
	provider, err := NewOllamaProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Suggest(context.Background(), SuggestRequest{})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
}

func TestOllamaProvider_DefaultBaseURL(t *testing.T) {
	provider, err := NewOllamaProvider(Config{})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if provider.baseURL != "http://localhost:11434" {
		t.Errorf("Unexpected default base URL: %s", provider.baseURL)
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"models": [{"name": "llama3.1:8b"}]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected available to be true")
	}

	// Test failure
	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if provider.IsAvailable(context.Background()) {
		t.Error("Expected available to be false on error")
	}
}
