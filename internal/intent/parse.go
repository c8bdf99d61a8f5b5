package intent

import "strings"

// Parse turns raw classifier output into a Decision.
// Tokens that do not start with a known label are dropped.
func Parse(raw string) Decision {
	raw = strings.ReplaceAll(raw, "\n", "")
	tokens := strings.Split(raw, ",")

	d := make(Decision, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if it, ok := parseToken(tok); ok {
			d = append(d, it)
		}
	}
	return d
}

func parseToken(tok string) (Intent, bool) {
	for _, r := range grammar {
		if !strings.HasPrefix(tok, r.prefix) {
			continue
		}
		return Intent{
			Category: r.category,
			Payload:  strings.TrimSpace(tok[len(r.prefix):]),
			Raw:      tok,
		}, true
	}
	return Intent{}, false
}
