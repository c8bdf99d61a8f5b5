package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/model"
	"desktop-assistant/pkg/llmprovider"
	"desktop-assistant/pkg/log"
)

type fakeLLM struct {
	replies  []string
	err      error
	requests []*llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	i := len(f.requests) - 1
	if i >= len(f.replies) {
		i = len(f.replies) - 1
	}
	return &llmprovider.Response{Text: f.replies[i]}, nil
}

func TestClassify_BuildsPrompt(t *testing.T) {
	llm := &fakeLLM{replies: []string{"open chrome, general tell me a joke</s>"}}
	c := New(llm, log.NewNop(), Config{})

	history := []model.Entry{
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	}
	raw, err := c.Classify(context.Background(), "open chrome and tell me a joke", history)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if raw != "open chrome, general tell me a joke" {
		t.Errorf("unexpected raw labels %q", raw)
	}

	req := llm.requests[0]
	if req.SystemInstruction != PromptPreamble {
		t.Error("expected preamble as system instruction")
	}
	if req.Temperature != DefaultTemperature {
		t.Errorf("expected default temperature, got %v", req.Temperature)
	}
	if len(req.Messages) != len(fewShot)*2+1 {
		t.Fatalf("expected few-shot turns plus the utterance, got %d messages", len(req.Messages))
	}
	last := req.Messages[len(req.Messages)-1].Text
	if !strings.HasPrefix(last, PromptHistoryPrefix) || !strings.Contains(last, "2. assistant: hello") {
		t.Errorf("history missing from prompt: %q", last)
	}
	if !strings.HasSuffix(last, "open chrome and tell me a joke") {
		t.Errorf("utterance missing from prompt: %q", last)
	}
}

func TestClassify_NoHistory(t *testing.T) {
	llm := &fakeLLM{replies: []string{"exit"}}
	c := New(llm, log.NewNop(), Config{})

	if _, err := c.Classify(context.Background(), "bye", nil); err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := llm.requests[0].Messages[len(fewShot)*2].Text; got != "bye" {
		t.Errorf("expected bare utterance without history, got %q", got)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		replies      []string
		maxRetries   int
		want         intent.Decision
		wantCalls    int
		wantAttempts int
	}{
		{
			name:      "first answer is used",
			replies:   []string{"open chrome, general tell me a joke"},
			want:      intent.Parse("open chrome, general tell me a joke"),
			wantCalls: 1,
		},
		{
			name:       "placeholder triggers one retry",
			replies:    []string{"general (query)", "realtime weather"},
			maxRetries: 1,
			want:       intent.Parse("realtime weather"),
			wantCalls:  2,
		},
		{
			name:         "retry is bounded",
			replies:      []string{"general (query)"},
			maxRetries:   1,
			wantCalls:    2,
			wantAttempts: 2,
		},
		{
			name:         "no retry configured",
			replies:      []string{"general (query)"},
			maxRetries:   -1,
			wantCalls:    1,
			wantAttempts: 1,
		},
		{
			name:      "unrecognized output is an empty decision",
			replies:   []string{"I think you want a joke"},
			want:      intent.Decision{},
			wantCalls: 1,
		},
		{
			name:      "fenced output",
			replies:   []string{"```\nsystem mute, play despacito\n```"},
			want:      intent.Parse("system mute, play despacito"),
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeLLM{replies: tt.replies}
			c := New(llm, log.NewNop(), Config{MaxRetries: tt.maxRetries})

			got, err := c.Decide(context.Background(), "utterance", nil)
			if len(llm.requests) != tt.wantCalls {
				t.Errorf("expected %d classifier calls, got %d", tt.wantCalls, len(llm.requests))
			}

			if tt.wantAttempts > 0 {
				var cerr *ClassificationError
				if !errors.As(err, &cerr) {
					t.Fatalf("expected ClassificationError, got %v", err)
				}
				if cerr.Attempts != tt.wantAttempts {
					t.Errorf("expected %d attempts, got %d", tt.wantAttempts, cerr.Attempts)
				}
				if !errors.Is(err, ErrClassification) {
					t.Error("expected errors.Is(err, ErrClassification)")
				}
				return
			}

			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if got.String() != tt.want.String() || len(got) != len(tt.want) {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecide_ProviderError(t *testing.T) {
	c := New(&fakeLLM{err: llmprovider.ErrAllProvidersFailed}, log.NewNop(), Config{MaxRetries: 3})

	_, err := c.Decide(context.Background(), "hello", nil)
	if !errors.Is(err, ErrClassification) {
		t.Fatalf("expected ErrClassification, got %v", err)
	}
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Errorf("expected provider cause to be preserved, got %v", err)
	}
}

func TestStripFences(t *testing.T) {
	tests := map[string]string{
		"open chrome":                     "open chrome",
		"```open chrome```":               "open chrome",
		"```text\nopen chrome, exit\n```": "open chrome, exit",
		"  general hi  ":                  "general hi",
		"```exit\n```":                    "exit",
		"```general how are you\n```":     "general how are you",
		"```open chrome\ngeneral hi```":   "open chrome, general hi",
		"```\nexit\n```":                  "exit",
		"```json\nexit\n```":              "exit",
	}
	for in, want := range tests {
		if got := stripFences(in); got != want {
			t.Errorf("stripFences(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecide_FencedExit(t *testing.T) {
	c := New(&fakeLLM{replies: []string{"```exit\n```"}}, log.NewNop(), Config{MaxRetries: 1})

	d, err := c.Decide(context.Background(), "bye", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Has(intent.CategoryExit) {
		t.Errorf("expected exit decision, got %q", d.String())
	}
}
