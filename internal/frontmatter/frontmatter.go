package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var delimiter = []byte("---")

// Extract parses the leading YAML block of a note. It returns the parsed
// mapping and true, or nil and false when there is no block, the block is
// not closed, the YAML is malformed, or the top level is not a mapping.
func Extract(content []byte) (map[string]any, bool) {
	fm, _, ok := Split(content)
	return fm, ok
}

// Split is Extract that also returns the text following the closing
// delimiter. When no usable block exists the whole content is returned as
// the body.
func Split(content []byte) (map[string]any, []byte, bool) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return nil, content, false
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			fmEnd = i
			break
		}
	}

	if fmEnd == 0 {
		return nil, content, false
	}

	fmBytes := bytes.Join(lines[1:fmEnd], []byte("\n"))
	var fm map[string]any
	if err := yaml.Unmarshal(fmBytes, &fm); err != nil {
		return nil, content, false
	}
	if fm == nil {
		return nil, content, false
	}

	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))
	return fm, body, true
}

// isDelimiter matches a line of exactly three hyphens; a trailing \r from
// CRLF files is tolerated.
func isDelimiter(line []byte) bool {
	return bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), delimiter)
}

// String returns fm[key] when it holds a non-empty string.
func String(fm map[string]any, key string) (string, bool) {
	v, ok := fm[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Bool returns fm[key] when it holds an explicit boolean.
func Bool(fm map[string]any, key string) (bool, bool) {
	v, ok := fm[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Map returns fm[key] when it holds a nested mapping.
func Map(fm map[string]any, key string) (map[string]any, bool) {
	v, ok := fm[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}
