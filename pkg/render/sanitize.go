package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	displayPolicyOnce sync.Once
	displayPolicy     *bluemonday.Policy
)

// SanitizeDisplay strips markup from a user supplied value and returns text
// that is safe to embed in HTML as-is.
func SanitizeDisplay(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(displaySanitizer().Sanitize(trimmed))
}

func displaySanitizer() *bluemonday.Policy {
	displayPolicyOnce.Do(func() {
		displayPolicy = bluemonday.StrictPolicy()
	})
	return displayPolicy
}
