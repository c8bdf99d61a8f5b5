package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"desktop-assistant/internal/model"
	"desktop-assistant/pkg/datemath"
	"desktop-assistant/pkg/llmprovider"
	"desktop-assistant/pkg/log"
)

type fakeLLM struct {
	reply string
	err   error
	last  *llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.reply, ProviderName: "fake"}, nil
}

type fakeHistory struct {
	entries []model.Entry
	err     error
	askedN  int
}

func (f *fakeHistory) Recent(ctx context.Context, n int) ([]model.Entry, error) {
	f.askedN = n
	return f.entries, f.err
}

func newClock(t *testing.T) *datemath.Clock {
	t.Helper()
	c, err := datemath.NewClock("UTC")
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	return c
}

func TestAnswer(t *testing.T) {
	llm := &fakeLLM{reply: "Paris is the capital.</s>\n\n"}
	hist := &fakeHistory{entries: []model.Entry{
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	}}
	uc := New(log.NewNop(), llm, hist, newClock(t), Config{Username: "Tony", AssistantName: "Jarvis", HistorySize: 4})

	got, err := uc.Answer(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != "Paris is the capital." {
		t.Errorf("unexpected answer %q", got)
	}
	if hist.askedN != 4 {
		t.Errorf("expected history window 4, got %d", hist.askedN)
	}

	sys := llm.last.SystemInstruction
	if !strings.Contains(sys, "I am Tony") || !strings.Contains(sys, "named Jarvis") {
		t.Errorf("names missing from system prompt: %q", sys)
	}
	if !strings.Contains(sys, "Year: "+time.Now().UTC().Format("2006")) {
		t.Errorf("realtime block missing from system prompt")
	}
	if len(llm.last.Messages) != 3 || llm.last.Messages[1].Role != llmprovider.RoleAssistant {
		t.Errorf("unexpected messages %+v", llm.last.Messages)
	}
}

func TestAnswer_Errors(t *testing.T) {
	ctx := context.Background()

	uc := New(log.NewNop(), &fakeLLM{reply: "x"}, &fakeHistory{}, newClock(t), Config{})
	if _, err := uc.Answer(ctx, "  "); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}

	uc = New(log.NewNop(), &fakeLLM{reply: "\n</s>\n"}, &fakeHistory{}, newClock(t), Config{})
	if _, err := uc.Answer(ctx, "hi"); !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("expected ErrEmptyAnswer, got %v", err)
	}

	uc = New(log.NewNop(), &fakeLLM{err: llmprovider.ErrAllProvidersFailed}, &fakeHistory{}, newClock(t), Config{})
	if _, err := uc.Answer(ctx, "hi"); !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Errorf("expected provider error, got %v", err)
	}

	// History failures do not fail the answer.
	uc = New(log.NewNop(), &fakeLLM{reply: "ok"}, &fakeHistory{err: errors.New("db locked")}, newClock(t), Config{})
	if got, err := uc.Answer(ctx, "hi"); err != nil || got != "ok" {
		t.Errorf("expected answer without history, got %q, %v", got, err)
	}
}

func TestWriteContent(t *testing.T) {
	llm := &fakeLLM{reply: "Dear Manager,\n\nI am unwell.\n</s>"}
	uc := New(log.NewNop(), llm, &fakeHistory{}, newClock(t), Config{})

	got, err := uc.WriteContent(context.Background(), "application for sick leave")
	if err != nil {
		t.Fatalf("WriteContent: %v", err)
	}
	if got != "Dear Manager,\n\nI am unwell." {
		t.Errorf("content should keep paragraph breaks, got %q", got)
	}
	if llm.last.SystemInstruction != SystemPromptContent || llm.last.MaxTokens != ContentMaxTokens {
		t.Errorf("unexpected request %+v", llm.last)
	}
}

func TestCleanAnswer(t *testing.T) {
	in := "Line one.  \n\n   \nLine two.</s>\n"
	if got := CleanAnswer(in); got != "Line one.\nLine two." {
		t.Errorf("CleanAnswer() = %q", got)
	}
}

func TestModifyQuery(t *testing.T) {
	tests := map[string]string{
		"what is the weather today":    "What is the weather today?",
		"Who won the match.":           "Who won the match?",
		"tell me a joke":               "Tell me a joke.",
		"open the door!":               "Open the door.",
		"CAN YOU help me":              "Can you help me?",
		"":                             "",
		"okay , bye":                   "Okay , bye.",
		"weather and what is the time": "Weather and what is the time?",
		"élan vital":                   "Élan vital.",
		"über cool":                    "Über cool.",
		"日本 weather":                   "日本 weather.",
		"what is ça?":                  "What is ça?",
	}
	for in, want := range tests {
		got := ModifyQuery(in)
		if got != want {
			t.Errorf("ModifyQuery(%q) = %q, want %q", in, got, want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("ModifyQuery(%q) produced invalid UTF-8 %q", in, got)
		}
	}
}
