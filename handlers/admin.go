// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"

	"github.com/danielhkuo/eventgate/auth"
	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/middleware"
	"github.com/danielhkuo/eventgate/models"
)

type AdminHandler struct {
	client backend.Client
}

func NewAdminHandler(client backend.Client) *AdminHandler {
	return &AdminHandler{client: client}
}

// CreateOrganizer handles POST /api/admin/organizers
func (h *AdminHandler) CreateOrganizer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrganizerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	token, _ := auth.Credential(r)
	res, err := h.client.Do(r.Context(), http.MethodPost, "/admin/organizers", token, req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	writeProxied(w, res, http.StatusBadGateway)
}

// CreateEvent handles POST /api/admin/events
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.EventName == "" || req.EventDate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing eventName or eventDate")
		return
	}

	token, _ := auth.Credential(r)
	res, err := h.client.Do(r.Context(), http.MethodPost, "/admin/events", token, req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	writeProxied(w, res, http.StatusBadGateway)
}

// ListAttendees handles GET /api/admin/events/{id}/attendees
func (h *AdminHandler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	token, _ := auth.Credential(r)
	path := "/admin/events/" + url.PathEscape(eventID) + "/attendees"
	res, err := h.client.Do(r.Context(), http.MethodGet, path, token, nil)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	writeProxied(w, res, http.StatusBadGateway)
}

// ListReservations handles GET /api/admin/reservations
func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	path := "/admin/reservations"
	if status := r.URL.Query().Get("status"); status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	token, _ := auth.Credential(r)
	res, err := h.client.Do(r.Context(), http.MethodGet, path, token, nil)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	writeProxied(w, res, http.StatusBadGateway)
}

// DashboardStats handles GET /api/admin/stats
func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	token, _ := auth.Credential(r)
	res, err := h.client.Do(r.Context(), http.MethodGet, "/admin/dashboard-stats", token, nil)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	writeProxied(w, res, http.StatusBadGateway)
}
