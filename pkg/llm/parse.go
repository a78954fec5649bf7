package llm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseKeywords splits a comma-separated model reply into keywords.
// Segments are trimmed, empty segments dropped, order and duplicates kept.
func parseKeywords(raw string) []string {
	keywords := []string{}
	for _, segment := range strings.Split(raw, ",") {
		if kw := strings.TrimSpace(segment); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// normalizeSentiment trims the reply and uppercases only its first rune.
// The rest of the text is passed through unchanged, whatever the model
// returned. Labels outside Positive/Negative/Neutral are not rejected.
func normalizeSentiment(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
