// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/eventgate/auth"
)

// exemptPrefixes are always allowed through, credential or not.
var exemptPrefixes = []string{
	"/admin/login",
	"/organizer/login",
	"/_next",
	"/static",
	"/public",
	"/api/health",
	"/health",
}

// Guard protects the admin and organizer areas and their APIs. Requests
// elsewhere pass through untouched. Guarded requests without a credential
// cookie get a 401 envelope (APIs) or a redirect to the role-appropriate
// login page with a next parameter (pages). The token itself is not
// verified here; validity is the backend's problem.
func Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		for _, prefix := range exemptPrefixes {
			if strings.HasPrefix(path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		isAdminPage := strings.HasPrefix(path, "/admin")
		isOrganizerPage := strings.HasPrefix(path, "/organizer")
		isAdminAPI := strings.HasPrefix(path, "/api/admin")
		isOrganizerAPI := strings.HasPrefix(path, "/api/organizer")

		if !(isAdminPage || isOrganizerPage || isAdminAPI || isOrganizerAPI) {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := auth.Credential(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		if isAdminAPI || isOrganizerAPI {
			ErrorResponse(w, http.StatusUnauthorized, "Unauthorized: login required")
			return
		}

		// Redirect pages to login, preserving the original destination
		original := path
		if r.URL.RawQuery != "" {
			original += "?" + r.URL.RawQuery
		}
		loginPath := "/admin/login"
		if isOrganizerPage {
			loginPath = "/organizer/login"
		}
		http.Redirect(w, r, loginPath+"?next="+url.QueryEscape(original), http.StatusFound)
	})
}
