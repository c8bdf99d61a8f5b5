package chat

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"desktop-assistant/internal/model"
	"desktop-assistant/pkg/llmprovider"
)

// CleanAnswer strips stop tokens and blank lines from a model answer.
func CleanAnswer(s string) string {
	s = strings.ReplaceAll(s, "</s>", "")
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, strings.TrimRight(line, " \t\r"))
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// HistoryMessages converts transcript entries into provider messages.
func HistoryMessages(entries []model.Entry) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(entries)+1)
	for _, e := range entries {
		role := llmprovider.RoleUser
		if e.Role == model.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Text: e.Content})
	}
	return msgs
}

var questionWords = []string{"how", "what", "who", "where", "when", "why", "which", "whose", "whom", "can you", "what's"}

// ModifyQuery lower-cases the query, ends it with '?' for questions or '.'
// otherwise, and capitalizes the first letter.
func ModifyQuery(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return q
	}

	isQuestion := false
	for _, w := range questionWords {
		if strings.Contains(q, w+" ") {
			isQuestion = true
			break
		}
	}

	if last, n := utf8.DecodeLastRuneInString(q); strings.ContainsRune(".?!", last) {
		q = q[:len(q)-n]
	}
	if isQuestion {
		q += "?"
	} else {
		q += "."
	}
	first, n := utf8.DecodeRuneInString(q)
	return string(unicode.ToUpper(first)) + q[n:]
}
