package shared

import "strings"

// WithBottomHints renders content at the top of the available height, with
// hint text pinned to the very bottom line. Content taller than the space
// left is cut.
func WithBottomHints(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	var hintLines []string
	if hints != "" {
		hintLines = strings.Split(hints, "\n")
	}

	if height <= 0 {
		return strings.Join(append(contentLines, hintLines...), "\n")
	}

	room := max(height-len(hintLines), 0)
	if len(contentLines) > room {
		contentLines = contentLines[:room]
	}

	lines := make([]string, 0, height)
	lines = append(lines, contentLines...)
	for len(lines) < room {
		lines = append(lines, "")
	}
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}

// Truncate cuts content to at most height lines.
func Truncate(content string, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
