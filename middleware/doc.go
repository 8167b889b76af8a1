// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Edge Guard

Guard protects the admin and organizer areas:

	handler := middleware.Guard(mux)

Exempt paths (login pages, static assets, health checks) always pass.
Guarded paths without a credential cookie get a 401 envelope (API
prefixes) or a 302 to the role-appropriate login page with a next
parameter (page prefixes). Everything else passes through. The guard
never verifies the token; the backend does.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, client ip) and completion
(duration_ms).

# Panic Recovery

Recover converts handler panics into a 500 envelope:

	handler := middleware.Recover(mux)

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(handler),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Station-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ErrorResponse writes the {error: message} envelope every handler uses.

Parse JSON request bodies:

	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
