package openaicompat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"desktop-assistant/pkg/openaicompat"
)

func TestClient_GenerateContent(t *testing.T) {
	var gotMessages []map[string]any
	var gotModel string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotModel, _ = body["model"].(string)
		if raw, ok := body["messages"].([]any); ok {
			for _, m := range raw {
				if mm, ok := m.(map[string]any); ok {
					gotMessages = append(gotMessages, mm)
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "llama-test",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "general hello"}}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	client, err := openaicompat.New(openaicompat.Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
		Model:   "llama-test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &openaicompat.Request{
		Messages: []openaicompat.Message{
			{Role: openaicompat.RoleSystem, Content: "classify"},
			{Role: openaicompat.RoleUser, Content: "hello"},
		},
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != "general hello" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if gotModel != "llama-test" {
		t.Errorf("expected model llama-test, got %q", gotModel)
	}
	if len(gotMessages) != 2 || gotMessages[0]["role"] != "system" {
		t.Errorf("unexpected messages sent: %+v", gotMessages)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := openaicompat.New(openaicompat.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
