package chat

import (
	"context"
	"fmt"
	"strings"

	"desktop-assistant/pkg/llmprovider"
)

func (uc *implUseCase) Answer(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	entries, err := uc.history.Recent(ctx, uc.cfg.HistorySize)
	if err != nil {
		// Answer without context rather than failing the turn.
		uc.l.Warnf(ctx, "%s: failed to load history: %v", LogPrefixAnswer, err)
	}

	msgs := HistoryMessages(entries)
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Text: query})

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: uc.systemPrompt(),
		Messages:          msgs,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixAnswer, err)
	}

	answer := CleanAnswer(resp.Text)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	uc.l.Infof(ctx, "%s: answered via %s (%d chars)", LogPrefixAnswer, resp.ProviderName, len(answer))
	return answer, nil
}

func (uc *implUseCase) WriteContent(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyQuery
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: SystemPromptContent,
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Text: topic},
		},
		Temperature: ContentTemperature,
		MaxTokens:   ContentMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixWriteContent, err)
	}

	content := strings.TrimSpace(strings.ReplaceAll(resp.Text, "</s>", ""))
	if content == "" {
		return "", ErrEmptyAnswer
	}
	return content, nil
}

func (uc *implUseCase) systemPrompt() string {
	return fmt.Sprintf(SystemPromptChat, uc.cfg.Username, uc.cfg.AssistantName) + "\n\n" + uc.clock.Context()
}
