package render

import "strings"

// FormatErrors prefixes each message for display, keeping the given order and
// dropping blanks.
func FormatErrors(prefix string, messages []string) []string {
	normalized := normalizeMessages(messages)
	if len(normalized) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(normalized))
	for _, message := range normalized {
		out = append(out, prefix+message)
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
