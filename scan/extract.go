// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scan

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Extractor attempts to pull a student identifier out of a raw QR payload.
// Extractors must be pure: same input, same result, no side effects.
type Extractor func(raw string) (string, bool)

// plainTokenPattern accepts a bare identifier: alphanumeric plus dash and
// underscore, at least three characters. The character class rules out the
// '{' and ':' that mark structured payloads.
var plainTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,}$`)

// labeledPattern matches a studentId fragment such as "studentId: 99" or a
// studentId field inside loosely structured text.
var labeledPattern = regexp.MustCompile(`studentId["']?\s*[:=]\s*["']?([A-Za-z0-9_-]+)`)

// PlainToken treats the whole trimmed payload as the identifier.
func PlainToken(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if plainTokenPattern.MatchString(trimmed) {
		return trimmed, true
	}
	return "", false
}

// LabeledFragment finds a studentId-labeled value anywhere in the payload.
func LabeledFragment(raw string) (string, bool) {
	m := labeledPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// JSONField parses the payload as a JSON object and reads its studentId or
// id field. Numeric values are formatted back to their string form.
func JSONField(raw string) (string, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &obj); err != nil {
		return "", false
	}
	for _, field := range []string{"studentId", "id"} {
		switch v := obj[field].(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}

// DefaultExtractors is the strategy order: bare token, labeled fragment,
// JSON object. First match wins.
var DefaultExtractors = []Extractor{PlainToken, LabeledFragment, JSONField}

// ExtractStudentID runs the default extractor chain over a raw payload.
// It is total: any input yields either an identifier or ok=false, never a
// panic or an error. A false result means the scan must not be submitted.
func ExtractStudentID(raw string) (string, bool) {
	for _, extract := range DefaultExtractors {
		if id, ok := extract(raw); ok {
			return id, true
		}
	}
	return "", false
}

// SubmitValue renders an identifier the way the backend expects it: whole
// numbers travel as JSON numbers, everything else as strings.
func SubmitValue(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}
