// Package sanitize strips markup from visitor supplied text before it is
// forwarded by email or stored.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text removes every HTML element from raw and returns the remaining plain
// text, trimmed. Entities are decoded so the result is safe to re-escape.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Line is Text collapsed onto a single line, for header-like values such as names.
func Line(raw string) string {
	return strings.Join(strings.Fields(Text(raw)), " ")
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
