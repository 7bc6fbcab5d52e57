package evaluation

import "strings"

// extractJSON pulls a JSON object out of a model response that may wrap it
// in markdown fences or surrounding prose. Returns "" when no complete
// object is present.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	// Prefer an explicit ```json fence.
	if idx := strings.Index(response, "```json"); idx != -1 {
		body := response[idx+len("```json"):]
		if end := strings.Index(body, "```"); end != -1 {
			return strings.TrimSpace(body[:end])
		}
	}

	// Generic fence, possibly with a language identifier on the first line.
	if idx := strings.Index(response, "```"); idx != -1 {
		body := response[idx+3:]
		if nl := strings.Index(body, "\n"); nl != -1 {
			body = body[nl+1:]
		}
		if end := strings.Index(body, "```"); end != -1 {
			candidate := strings.TrimSpace(body[:end])
			if strings.HasPrefix(candidate, "{") {
				return candidate
			}
		}
	}

	// Bare object: match braces while respecting strings and escapes.
	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(response); i++ {
		c := response[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return response[start : i+1]
				}
			}
		}
	}
	return ""
}
