// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scan

import "testing"

func TestExtractStudentID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{
			name:     "bare token",
			raw:      "abc123",
			expected: "abc123",
			ok:       true,
		},
		{
			name:     "bare token with surrounding whitespace",
			raw:      "  abc123\n",
			expected: "abc123",
			ok:       true,
		},
		{
			name:     "bare token with dash and underscore",
			raw:      "stu-42_b",
			expected: "stu-42_b",
			ok:       true,
		},
		{
			name:     "json studentId field",
			raw:      `{"studentId":"42"}`,
			expected: "42",
			ok:       true,
		},
		{
			name:     "json id field",
			raw:      `{"id":"7"}`,
			expected: "7",
			ok:       true,
		},
		{
			name:     "json numeric studentId",
			raw:      `{"studentId":42}`,
			expected: "42",
			ok:       true,
		},
		{
			name:     "studentId field preferred over id",
			raw:      `{"id":"7","studentId":"42"}`,
			expected: "42",
			ok:       true,
		},
		{
			name:     "labeled fragment",
			raw:      "studentId: 99",
			expected: "99",
			ok:       true,
		},
		{
			name:     "labeled fragment with equals",
			raw:      `studentId="abc"`,
			expected: "abc",
			ok:       true,
		},
		{
			name: "empty payload",
			raw:  "",
			ok:   false,
		},
		{
			name: "too short for bare token",
			raw:  "ab",
			ok:   false,
		},
		{
			name: "json without known fields",
			raw:  `{"foo":"bar"}`,
			ok:   false,
		},
		{
			name: "json with empty studentId",
			raw:  `{"studentId":""}`,
			ok:   false,
		},
		{
			name: "free text without identifier",
			raw:  "hello world!",
			ok:   false,
		},
		{
			name: "malformed json",
			raw:  `{"studentId":`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractStudentID(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got ok=%v (id=%q)", tt.ok, ok, id)
			}
			if ok && id != tt.expected {
				t.Errorf("Expected id %q, got %q", tt.expected, id)
			}
		})
	}
}

func TestExtractorOrder(t *testing.T) {
	// A bare numeric token that would also parse as JSON must be taken by
	// the plain-token extractor first.
	id, ok := ExtractStudentID("123")
	if !ok || id != "123" {
		t.Errorf("Expected bare token 123, got %q ok=%v", id, ok)
	}
}

func TestSubmitValue(t *testing.T) {
	tests := []struct {
		id       string
		expected any
	}{
		{"42", int64(42)},
		{"007", int64(7)},
		{"abc123", "abc123"},
		{"12ab", "12ab"},
	}

	for _, tt := range tests {
		if got := SubmitValue(tt.id); got != tt.expected {
			t.Errorf("SubmitValue(%q) = %v (%T), expected %v (%T)", tt.id, got, got, tt.expected, tt.expected)
		}
	}
}
