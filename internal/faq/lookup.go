package faq

import "strings"

// Lookup returns the first entry whose keywords appear in text, case-insensitively.
func (r *implRouter) Lookup(text string) (Match, bool) {
	lower := strings.ToLower(text)
	for _, e := range r.entries {
		if e.matches(lower) {
			return Match{Topic: e.Topic, Answer: e.Answer}, true
		}
	}
	return Match{}, false
}
