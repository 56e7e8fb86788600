package faq

import "strings"

// Entry maps keywords to a canned answer. An input matches when it contains
// every AllOf keyword and at least one AnyOf keyword (each list is ignored when empty).
type Entry struct {
	Topic  string
	AllOf  []string
	AnyOf  []string
	Answer string
}

func (e Entry) matches(lower string) bool {
	if len(e.AllOf) == 0 && len(e.AnyOf) == 0 {
		return false
	}
	for _, k := range e.AllOf {
		if !strings.Contains(lower, k) {
			return false
		}
	}
	if len(e.AnyOf) == 0 {
		return true
	}
	for _, k := range e.AnyOf {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Match is a successful lookup.
type Match struct {
	Topic  string
	Answer string
}
