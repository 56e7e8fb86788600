package faq

import (
	"sort"
	"strings"
)

// Router answers frequently asked questions by keyword lookup. It holds no
// per-request state and is safe for concurrent use.
type Router interface {
	Lookup(text string) (Match, bool)
}

type implRouter struct {
	entries []Entry
}

var _ Router = (*implRouter)(nil)

// New builds a Router. overrides maps a space-separated keyword list (all required)
// to an answer; overrides are checked before the built-in entries, in key order.
func New(overrides map[string]string) *implRouter {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys)+len(defaultEntries))
	for _, k := range keys {
		words := strings.Fields(strings.ToLower(k))
		if len(words) == 0 || overrides[k] == "" {
			continue
		}
		entries = append(entries, Entry{Topic: k, AllOf: words, Answer: overrides[k]})
	}
	entries = append(entries, defaultEntries...)

	return &implRouter{entries: entries}
}
