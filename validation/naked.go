package validation

import "strings"

// IsNaked reports whether s is empty or entirely whitespace.
func IsNaked(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsPlaceholder reports whether s starts with the template prefix shipped in
// example configuration. An empty prefix matches nothing.
func IsPlaceholder(s, prefix string) bool {
	return prefix != "" && strings.HasPrefix(s, prefix)
}

// configured reports whether s carries a real value: not naked and not a
// placeholder.
func configured(s, prefix string) bool {
	return !IsNaked(s) && !IsPlaceholder(s, prefix)
}
