package search

import (
	"context"
	"fmt"
	"strings"

	"desktop-assistant/internal/chat"
	"desktop-assistant/pkg/llmprovider"
	"desktop-assistant/pkg/websearch"
)

func (uc *implUseCase) Answer(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	key := cacheKey(query)
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "%s: cache hit for %q", LogPrefixAnswer, query)
			return cached, nil
		}
	}

	results := uc.lookup(ctx, query)

	entries, err := uc.history.Recent(ctx, uc.cfg.HistorySize)
	if err != nil {
		uc.l.Warnf(ctx, "%s: failed to load history: %v", LogPrefixAnswer, err)
	}

	system := fmt.Sprintf(SystemPromptSearch, uc.cfg.Username, uc.cfg.AssistantName) +
		"\n\n" + FormatResults(query, results) +
		"\n\n" + uc.clock.Context()

	msgs := chat.HistoryMessages(entries)
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Text: query})

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          msgs,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixAnswer, err)
	}

	answer := chat.CleanAnswer(resp.Text)
	if answer == "" {
		return "", ErrEmptyAnswer
	}

	if uc.cache != nil {
		uc.cache.Add(key, answer)
	}
	uc.l.Infof(ctx, "%s: answered %q with %d result(s)", LogPrefixAnswer, query, len(results))
	return answer, nil
}

// lookup returns web results, or none when search is unavailable or fails.
func (uc *implUseCase) lookup(ctx context.Context, query string) []websearch.Result {
	if uc.searcher == nil {
		return nil
	}
	results, err := uc.searcher.Search(ctx, query, uc.cfg.Results)
	if err != nil {
		uc.l.Warnf(ctx, "%s: web search failed, answering without results: %v", LogPrefixAnswer, err)
		return nil
	}
	return results
}

// FormatResults renders results as the [start]...[end] block given to the model.
func FormatResults(query string, results []websearch.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, ResultsHeader, query)
	if len(results) == 0 {
		b.WriteString(NoResults)
		b.WriteByte('\n')
	}
	for _, r := range results {
		fmt.Fprintf(&b, "Title: %s\nDescription: %s\nLink: %s\n\n", r.Title, r.Snippet, r.Link)
	}
	b.WriteString(ResultsFooter)
	return b.String()
}

func cacheKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimRight(query, "?.! "))), " ")
}
