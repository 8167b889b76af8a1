// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCredential(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin", nil)
	if _, ok := Credential(req); ok {
		t.Error("Expected no credential on a bare request")
	}

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok123"})
	token, ok := Credential(req)
	if !ok || token != "tok123" {
		t.Errorf("Expected tok123, got %q ok=%v", token, ok)
	}
}

func TestCredentialEmptyValue(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ""})
	if _, ok := Credential(req); ok {
		t.Error("Expected empty cookie to count as no credential")
	}
}

func TestSetCredential(t *testing.T) {
	w := httptest.NewRecorder()
	SetCredential(w, "tok123")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != CookieName || c.Value != "tok123" {
		t.Errorf("Unexpected cookie %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("Expected HttpOnly cookie")
	}
	if !c.Secure {
		t.Error("Expected Secure cookie")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("Expected SameSite=Lax, got %v", c.SameSite)
	}
	if c.MaxAge != int(TokenTTL.Seconds()) {
		t.Errorf("Expected MaxAge %d, got %d", int(TokenTTL.Seconds()), c.MaxAge)
	}
	if c.Path != "/" {
		t.Errorf("Expected path /, got %q", c.Path)
	}
}

func TestClearCredential(t *testing.T) {
	w := httptest.NewRecorder()
	ClearCredential(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("Expected expired cookie, got MaxAge %d", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Errorf("Expected empty value, got %q", cookies[0].Value)
	}
}

func TestTokenFromLoginBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "accessToken field",
			body:     `{"accessToken":"tok123"}`,
			expected: "tok123",
		},
		{
			name:     "token field",
			body:     `{"token":"tok456"}`,
			expected: "tok456",
		},
		{
			name:     "accessToken wins over token",
			body:     `{"accessToken":"a","token":"b"}`,
			expected: "a",
		},
		{
			name:     "neither field",
			body:     `{"user":{"role":"admin"}}`,
			expected: "",
		},
		{
			name:     "not json",
			body:     "OK",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenFromLoginBody([]byte(tt.body)); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
