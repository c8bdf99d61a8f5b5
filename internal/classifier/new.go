package classifier

import (
	"desktop-assistant/pkg/llmprovider"
	"desktop-assistant/pkg/log"
)

// Config tunes the decision model call.
type Config struct {
	MaxRetries  int
	Temperature float64
}

// LLMClassifier classifies utterances with a text-completion provider.
type LLMClassifier struct {
	llm llmprovider.Generator
	l   log.Logger
	cfg Config
}

var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier. Negative MaxRetries means no retry.
func New(llm llmprovider.Generator, l log.Logger, cfg Config) *LLMClassifier {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &LLMClassifier{
		llm: llm,
		l:   l,
		cfg: cfg,
	}
}
