package utils

import (
	"strings"
)

// PrefixFilter narrows completion labels to those starting with what the
// user typed, dropping repeated labels. It is the host-side filter step the
// completion core leaves to its caller.
type PrefixFilter struct {
	seen   map[string]bool
	prefix string
}

// NewPrefixFilter creates a filter for prefix. Matching ignores case, as
// editor filters do.
func NewPrefixFilter(prefix string) *PrefixFilter {
	return &PrefixFilter{
		seen:   make(map[string]bool),
		prefix: strings.ToLower(prefix),
	}
}

// ShouldInclude reports whether label matches the prefix and has not been
// seen before.
func (f *PrefixFilter) ShouldInclude(label string) bool {
	if !strings.HasPrefix(strings.ToLower(label), f.prefix) {
		return false
	}
	if f.seen[label] {
		return false
	}
	f.seen[label] = true
	return true
}
