// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/json"
	"net/http"
	"time"
)

// CookieName is the credential cookie set on successful login.
const CookieName = "token"

// TokenTTL bounds the credential lifetime. There is no refresh flow; once
// the cookie expires the user logs in again.
const TokenTTL = 8 * time.Hour

// Credential returns the bearer token from the request cookie, if any.
func Credential(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// SetCredential stores the bearer token in the credential cookie.
func SetCredential(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCredential expires the credential cookie immediately.
func ClearCredential(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromLoginBody extracts the bearer token from a login response body.
// Backends have shipped it as either accessToken or token; either works.
// Returns "" when the body is not JSON or carries neither field.
func TokenFromLoginBody(body []byte) string {
	var parsed struct {
		AccessToken string `json:"accessToken"`
		Token       string `json:"token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.AccessToken != "" {
		return parsed.AccessToken
	}
	return parsed.Token
}
