package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"desktop-assistant/internal/assistant"
	"desktop-assistant/internal/model"
	"desktop-assistant/pkg/log"
)

type stubAssistant struct{ status model.Status }

func (s stubAssistant) Submit(ctx context.Context, utterance string) (assistant.TurnResult, error) {
	return assistant.TurnResult{Utterance: utterance}, nil
}
func (s stubAssistant) Status() model.Status { return s.status }
func (s stubAssistant) Transcript(ctx context.Context) ([]model.Entry, error) {
	return nil, nil
}

func newServer(t *testing.T, status model.Status) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		Assistant:   stubAssistant{status: status},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validate(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: "test", Port: 8080}); err == nil {
		t.Error("expected error without assistant")
	}
	if _, err := New(log.NewNop(), Config{Mode: "test", Assistant: stubAssistant{}}); err == nil {
		t.Error("expected error without port")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, model.StatusAvailable)

	for _, path := range []string{"/health", "/ready", "/live", "/api/v1/status"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestReady_Exiting(t *testing.T) {
	srv := newServer(t, model.StatusExiting)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}
