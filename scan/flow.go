// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scan

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/models"
	"github.com/danielhkuo/eventgate/roster"
)

// markAttendancePath is the backend endpoint that records a scan.
const markAttendancePath = "/organizer/mark-attendance"

// MsgStudentIDNotFound is the flow message when no extractor matched the
// payload. Handlers compare against this constant to tell extraction
// failures from backend failures.
const MsgStudentIDNotFound = "studentId not found in QR"

// Snapshot is a point-in-time view of a flow for display.
type Snapshot struct {
	State   string
	Message string
	Payload string
}

// Flow is the scan state machine for one scanner station:
//
//	idle -> scanned -> sending -> success | error
//
// Both terminal states re-arm back to idle. Detections that arrive while
// the flow is not idle are ignored, which keeps one submission in flight
// per station. The participant roster outlives the flow: re-arming never
// touches it.
type Flow struct {
	mu           sync.Mutex
	state        string
	message      string
	payload      string
	client       backend.Client
	participants *roster.Roster
}

// NewFlow creates an idle flow backed by the given client and roster.
func NewFlow(client backend.Client, participants *roster.Roster) *Flow {
	return &Flow{
		state:        models.ScanIdle,
		client:       client,
		participants: participants,
	}
}

// Snapshot returns the current state for display.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{State: f.state, Message: f.message, Payload: f.payload}
}

// Rearm returns a terminal flow to idle. Roster contents are untouched.
// Re-arming an idle or in-flight flow is a no-op.
func (f *Flow) Rearm() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == models.ScanSuccess || f.state == models.ScanError {
		f.state = models.ScanIdle
		f.message = ""
		f.payload = ""
	}
	return Snapshot{State: f.state, Message: f.message, Payload: f.payload}
}

// Detect feeds a scanned payload into the flow. The bool reports whether
// the detection was accepted; a detection against a non-idle flow is
// dropped and the current snapshot returned unchanged.
func (f *Flow) Detect(ctx context.Context, token, payload string) (Snapshot, bool) {
	f.mu.Lock()
	if f.state != models.ScanIdle {
		snap := Snapshot{State: f.state, Message: f.message, Payload: f.payload}
		f.mu.Unlock()
		return snap, false
	}
	f.state = models.ScanScanned
	f.payload = payload

	id, ok := ExtractStudentID(payload)
	if !ok {
		// Fail closed: nothing is submitted, the raw payload stays around
		// for manual inspection.
		f.state = models.ScanError
		f.message = MsgStudentIDNotFound
		snap := Snapshot{State: f.state, Message: f.message, Payload: f.payload}
		f.mu.Unlock()
		return snap, true
	}

	f.state = models.ScanSending
	f.mu.Unlock()

	res, err := f.client.Do(ctx, http.MethodPost, markAttendancePath, token, map[string]any{
		"studentId": SubmitValue(id),
	})

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case err != nil:
		f.state = models.ScanError
		f.message = err.Error()
	case !res.OK():
		f.state = models.ScanError
		f.message = failureMessage(res)
	default:
		name := DisplayName(res.Body, id)
		if _, err := f.participants.Append(ctx, name); err != nil {
			slog.Error("failed to persist participant", "name", name, "error", err)
		}
		f.state = models.ScanSuccess
		f.message = Message(res.Body, "Submitted")
	}

	return Snapshot{State: f.state, Message: f.message, Payload: f.payload}, true
}

func failureMessage(res *backend.Response) string {
	if msg := strings.TrimSpace(string(res.Body)); msg != "" {
		return msg
	}
	return "Scan failed (" + strconv.Itoa(res.StatusCode) + ")"
}
