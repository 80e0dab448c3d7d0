package agent

import "strings"

// extractJSON pulls a JSON object out of a model response. Models wrap their
// output in markdown fences or chat them up with prose, so we strip fences,
// cut to the outermost braces and then trim anything after the last balanced
// close. The brace scan is string aware so braces inside values do not count.
func extractJSON(response string) string {
	clean := strings.ReplaceAll(response, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	start := strings.IndexByte(clean, '{')
	end := strings.LastIndexByte(clean, '}')
	if start == -1 || end == -1 || end <= start {
		return clean
	}
	clean = clean[start : end+1]

	depth := 0
	inString := false
	escaped := false
	lastBalanced := -1
	for i := 0; i < len(clean); i++ {
		c := clean[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
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
					lastBalanced = i
				}
			}
		}
	}

	if lastBalanced != -1 {
		clean = clean[:lastBalanced+1]
	}
	return strings.TrimSpace(clean)
}
