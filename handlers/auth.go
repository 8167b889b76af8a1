// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/eventgate/auth"
	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/middleware"
	"github.com/danielhkuo/eventgate/models"
)

type AuthHandler struct {
	client backend.Client
}

func NewAuthHandler(client backend.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

// AdminLogin handles POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	res, err := h.client.Do(r.Context(), http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	// Login failures answer 401 rather than the usual 502
	if !res.OK() {
		middleware.ErrorResponse(w, http.StatusUnauthorized, remoteFailureMessage(res))
		return
	}

	if token := auth.TokenFromLoginBody(res.Body); token != "" {
		auth.SetCredential(w, token)
	}
	okEnvelope(w, res.Body)
}

// OrganizerLogin handles POST /api/auth/organizer/login
func (h *AuthHandler) OrganizerLogin(w http.ResponseWriter, r *http.Request) {
	var req models.OrganizerLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A username (or email standing in for one) is required; the password
	// field must be present but may be empty.
	username := req.Username
	if username == "" {
		username = req.Email
	}
	if username == "" || req.Password == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing username/email or password")
		return
	}

	res, err := h.client.Do(r.Context(), http.MethodPost, "/organizer/login", "", map[string]string{
		"username": username,
		"password": *req.Password,
	})
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if !res.OK() {
		middleware.ErrorResponse(w, http.StatusUnauthorized, remoteFailureMessage(res))
		return
	}

	// The credential cookie is only set when the backend handed out a
	// token; stub logins stay cookieless.
	if token := auth.TokenFromLoginBody(res.Body); token != "" {
		auth.SetCredential(w, token)
	}
	okEnvelope(w, res.Body)
}

// Logout handles POST /api/auth/logout by expiring the credential cookie.
// The token itself is not revoked; the backend bounds its lifetime.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCredential(w)
	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
}
