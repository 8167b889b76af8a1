// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scan

import "encoding/json"

// embeddedObjects are the response fields that may wrap the attendee
// record, tried in order.
var embeddedObjects = []string{"student", "user", "data", "attendee"}

// DisplayName walks an attendance response body for a human display name:
// top-level name first, then a name inside a known embedded object, then
// the fallback (normally the extracted identifier). Best effort; never
// fails.
func DisplayName(body []byte, fallback string) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return fallback
	}

	if name, ok := obj["name"].(string); ok && name != "" {
		return name
	}

	for _, field := range embeddedObjects {
		inner, ok := obj[field].(map[string]any)
		if !ok {
			continue
		}
		if name, ok := inner["name"].(string); ok && name != "" {
			return name
		}
	}

	return fallback
}

// Message pulls the human-readable message out of a response body, falling
// back when the body is not JSON or has no message field.
func Message(body []byte, fallback string) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return fallback
	}
	if msg, ok := obj["message"].(string); ok && msg != "" {
		return msg
	}
	return fallback
}
