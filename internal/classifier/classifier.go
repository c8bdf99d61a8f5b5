package classifier

import (
	"context"
	"fmt"
	"strings"

	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/model"
	"desktop-assistant/pkg/llmprovider"
)

// Classify determines the raw intent labels for an utterance.
func (c *LLMClassifier) Classify(ctx context.Context, utterance string, history []model.Entry) (string, error) {
	msgs := make([]llmprovider.Message, 0, len(fewShot)*2+1)
	for _, ex := range fewShot {
		msgs = append(msgs,
			llmprovider.Message{Role: llmprovider.RoleUser, Text: ex.user},
			llmprovider.Message{Role: llmprovider.RoleAssistant, Text: ex.labels},
		)
	}

	prompt := utterance
	if len(history) > 0 {
		var b strings.Builder
		b.WriteString(PromptHistoryPrefix)
		for i, e := range history {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, e.Role, e.Content)
		}
		b.WriteString("\nClassify: ")
		b.WriteString(utterance)
		prompt = b.String()
	}
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Text: prompt})

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptPreamble,
		Messages:          msgs,
		Temperature:       c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: LLM call failed: %w", LogPrefixClassify, err)
	}

	out := stripFences(resp.CleanText())
	c.l.Debugf(ctx, "%s: %q -> %q", LogPrefixClassify, utterance, out)
	return out, nil
}

// Decide classifies the utterance and parses the labels. When the model echoes
// the (query) placeholder it is asked again, at most MaxRetries more times.
func (c *LLMClassifier) Decide(ctx context.Context, utterance string, history []model.Entry) (intent.Decision, error) {
	attempts := 1 + c.cfg.MaxRetries

	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := c.Classify(ctx, utterance, history)
		if err != nil {
			return nil, &ClassificationError{Attempts: attempt, Err: err}
		}

		decision := intent.Parse(raw)
		if !decision.NeedsRetry() {
			c.l.Infof(ctx, "%s: decision [%s]", LogPrefixDecide, decision)
			return decision, nil
		}
		c.l.Warnf(ctx, "%s: placeholder in %q (attempt %d/%d)", LogPrefixDecide, raw, attempt, attempts)
	}

	return nil, &ClassificationError{Attempts: attempts, Err: errPlaceholder}
}

// stripFences removes a surrounding markdown code block if present.
// Labels split across lines inside the block are rejoined with commas.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")

	lines := strings.Split(s, "\n")
	if first := strings.TrimSpace(lines[0]); len(lines) > 1 && isLanguageTag(first) {
		lines = lines[1:]
	}

	var b strings.Builder
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 && !strings.HasSuffix(b.String(), ",") {
			b.WriteByte(',')
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(line)
	}
	return b.String()
}

// isLanguageTag reports whether line looks like ```text rather than a label.
func isLanguageTag(line string) bool {
	return line != "" && !strings.ContainsAny(line, " ,") && intent.Parse(line).Empty()
}
