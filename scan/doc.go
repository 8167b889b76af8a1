// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scan implements the QR scan and attendance pipeline.

# Identifier Extraction

QR payloads arrive in three shapes: a bare identifier, a studentId-labeled
fragment, or a JSON object. Extraction is an ordered chain of pure
strategies, first match wins:

	id, ok := scan.ExtractStudentID(raw)

	"abc123"              -> "abc123"  (bare token)
	"studentId: 99"       -> "99"      (labeled fragment)
	{"studentId":"42"}    -> "42"      (JSON field)
	{"id":"7"}            -> "7"       (JSON field)
	""                    -> not found

No match fails closed: nothing is submitted to the backend.

# Flow State Machine

Each scanner station owns a Flow:

	idle -> scanned -> sending -> success | error
	success | error -> idle  (Rearm)

Detections against a non-idle flow are ignored, keeping one submission in
flight per station. An error state retains the raw payload for manual
inspection. Successful submissions resolve a display name from the
attendance response (name field, then an embedded student/user/data/
attendee object, then the identifier itself) and append it to the
participant roster, which persists across re-arms.

# Station Registry

Registry hands out flows by station ID, creating them lazily:

	flows := scan.NewRegistry(func() *scan.Flow {
		return scan.NewFlow(client, participants)
	})
	flow := flows.Get(stationID)
*/
package scan
