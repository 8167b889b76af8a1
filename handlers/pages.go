// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
)

type PageHandler struct {
	templates *template.Template
}

func NewPageHandler(templates *template.Template) *PageHandler {
	return &PageHandler{templates: templates}
}

// loginData feeds the login templates: the guard's next parameter rides
// along so the page can return the user where they were headed.
type loginData struct {
	Next string
}

// Index serves the landing page
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.render(w, "index.html", nil)
}

// AdminLogin serves GET /admin/login
func (h *PageHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin-login.html", loginData{Next: r.URL.Query().Get("next")})
}

// OrganizerLogin serves GET /organizer/login
func (h *PageHandler) OrganizerLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, "organizer-login.html", loginData{Next: r.URL.Query().Get("next")})
}

// AdminDashboard serves GET /admin
func (h *PageHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin-dashboard.html", nil)
}

// OrganizerScan serves GET /organizer/scan
func (h *PageHandler) OrganizerScan(w http.ResponseWriter, r *http.Request) {
	h.render(w, "organizer-scan.html", nil)
}

// SpinGame serves GET /game/spin
func (h *PageHandler) SpinGame(w http.ResponseWriter, r *http.Request) {
	h.render(w, "spin.html", nil)
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}
