// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/eventgate/models"
)

// sampleTime keeps the stub's read endpoints deterministic.
var sampleTime = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

// StubClient serves canned sample data when no backend is configured.
// Read endpoints return fixed rows; write endpoints return an optimistic
// synthetic success. Only for local development: main never constructs a
// StubClient when a backend URL is set.
type StubClient struct {
	// participants supplies the roster for the random-winners endpoint.
	// May be nil, in which case no winners are drawn.
	participants func(ctx context.Context) []string
}

// NewStubClient creates a stub backend. participants may be nil.
func NewStubClient(participants func(ctx context.Context) []string) *StubClient {
	return &StubClient{participants: participants}
}

// Do implements Client with sample data keyed by backend path.
func (c *StubClient) Do(ctx context.Context, method, path, token string, payload any) (*Response, error) {
	path, query, _ := strings.Cut(path, "?")

	switch {
	case path == "/auth/admin/login":
		return jsonResponse(map[string]any{
			"user": map[string]any{"role": "admin", "email": payloadField(payload, "email")},
		})

	case path == "/organizer/login":
		return jsonResponse(map[string]any{
			"user": map[string]any{"role": "organizer", "username": payloadField(payload, "username")},
		})

	case path == "/admin/organizers":
		return jsonResponse(map[string]any{
			"ok":    true,
			"id":    "org_123",
			"name":  payloadField(payload, "name"),
			"email": payloadField(payload, "email"),
		})

	case path == "/admin/events":
		return jsonResponse(map[string]any{
			"ok":        true,
			"id":        "e_1",
			"eventName": payloadField(payload, "eventName"),
			"eventDate": payloadField(payload, "eventDate"),
		})

	case strings.HasPrefix(path, "/admin/events/") && strings.HasSuffix(path, "/attendees"):
		checkedIn := sampleTime
		return jsonResponse(map[string]any{
			"attendees": []models.Attendee{
				{ID: "a_1", Name: "Ada Lovelace", Email: "ada@example.com", Status: models.AttendeeRegistered},
				{ID: "a_2", Name: "Alan Turing", Email: "alan@example.com", Status: models.AttendeeCheckedIn, CheckedInAt: &checkedIn},
			},
		})

	case path == "/admin/reservations":
		return jsonResponse(map[string]any{
			"reservations": []models.Reservation{
				{
					ID: "r_1", EventID: "e_1", EventName: "Dev Conference",
					UserName: "Ada Lovelace", UserEmail: "ada@example.com",
					Status: "confirmed", CreatedAt: sampleTime,
				},
			},
		})

	case path == "/admin/dashboard-stats":
		return jsonResponse(models.DashboardStats{
			TodayRegistrations:   12,
			UpcomingEvents:       3,
			ActiveReservations:   27,
			TotalRegisteredUsers: 542,
			AllUsers:             612,
		})

	case path == "/organizer/mark-attendance":
		return jsonResponse(map[string]any{
			"message":   "Attendance recorded",
			"studentId": payloadField(payload, "studentId"),
		})

	case path == "/attendance/random-winners":
		return c.randomWinners(ctx, query)
	}

	return &Response{
		StatusCode: http.StatusNotFound,
		Body:       []byte("no sample data for " + path),
	}, nil
}

// randomWinners draws count distinct names from the participant roster.
func (c *StubClient) randomWinners(ctx context.Context, query string) (*Response, error) {
	count := 1
	if v, ok := strings.CutPrefix(query, "count="); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	var pool []string
	if c.participants != nil {
		pool = c.participants(ctx)
	}

	// The top-level shuffle is internally locked, so concurrent draws are safe
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count > len(pool) {
		count = len(pool)
	}

	return jsonResponse(map[string]any{"winners": pool[:count]})
}

// payloadField walks a JSON payload for a top-level string field.
func payloadField(payload any, field string) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return ""
	}
	switch v := m[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func jsonResponse(data any) (*Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: http.StatusOK, Body: body}, nil
}
