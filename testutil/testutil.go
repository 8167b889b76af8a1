// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/db"
	"github.com/danielhkuo/eventgate/roster"
)

// ScriptedClient is a backend.Client test double that answers every call
// with a fixed status and body while recording what it was asked.
type ScriptedClient struct {
	Status int
	Body   string
	Err    error

	Calls       int
	LastMethod  string
	LastPath    string
	LastToken   string
	LastPayload any
}

// Do implements backend.Client.
func (c *ScriptedClient) Do(ctx context.Context, method, path, token string, payload any) (*backend.Response, error) {
	c.Calls++
	c.LastMethod = method
	c.LastPath = path
	c.LastToken = token
	c.LastPayload = payload
	if c.Err != nil {
		return nil, c.Err
	}
	return &backend.Response{StatusCode: c.Status, Body: []byte(c.Body)}, nil
}

// SetupSQLiteDB opens an in-memory SQLite database with the full schema.
// Exercises the same driver arrangement production uses for the sql store.
func SetupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewRosters returns memory-backed participant and winner rosters.
func NewRosters() (participants, winners *roster.Roster) {
	store := roster.NewMemoryStore()
	return roster.New(store, roster.KeyParticipants), roster.New(store, roster.KeyWinners)
}

// Templates builds a minimal template set covering every page the router
// renders, so page handlers work without the real templates directory.
func Templates(t *testing.T) *template.Template {
	t.Helper()

	tmpl := template.New("test")
	for _, name := range []string{
		"index.html",
		"admin-login.html",
		"organizer-login.html",
		"admin-dashboard.html",
		"organizer-scan.html",
		"spin.html",
	} {
		var err error
		tmpl, err = tmpl.New(name).Parse("<html>" + name + "</html>")
		if err != nil {
			t.Fatalf("Failed to parse test template %s: %v", name, err)
		}
	}
	return tmpl
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithCredential attaches the credential cookie to a request.
func WithCredential(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
