// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"html/template"
	"net/http"

	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/handlers"
	"github.com/danielhkuo/eventgate/middleware"
	"github.com/danielhkuo/eventgate/roster"
	"github.com/danielhkuo/eventgate/scan"
	"github.com/danielhkuo/eventgate/sse"
)

// Deps carries the wired dependencies the routes need.
type Deps struct {
	Client       backend.Client
	Participants *roster.Roster
	Winners      *roster.Roster
	Flows        *scan.Registry
	Broadcaster  *sse.Broadcaster
	Templates    *template.Template
	StaticDir    string
}

// NewRouter builds the full handler chain: mux, panic recovery, and the
// edge guard on the outside.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Client)
	adminHandler := handlers.NewAdminHandler(deps.Client)
	organizerHandler := handlers.NewOrganizerHandler(deps.Flows, deps.Participants, deps.Broadcaster)
	gameHandler := handlers.NewGameHandler(deps.Client, deps.Participants, deps.Winners, deps.Broadcaster)
	pageHandler := handlers.NewPageHandler(deps.Templates)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/auth/admin/login", middleware.WithLogging(authHandler.AdminLogin))
	mux.HandleFunc("POST /api/auth/organizer/login", middleware.WithLogging(authHandler.OrganizerLogin))
	mux.HandleFunc("POST /api/auth/logout", middleware.WithLogging(authHandler.Logout))

	// Admin proxy endpoints (guarded)
	mux.HandleFunc("POST /api/admin/organizers", middleware.WithLogging(adminHandler.CreateOrganizer))
	mux.HandleFunc("POST /api/admin/events", middleware.WithLogging(adminHandler.CreateEvent))
	mux.HandleFunc("GET /api/admin/events/{id}/attendees", middleware.WithLogging(adminHandler.ListAttendees))
	mux.HandleFunc("GET /api/admin/reservations", middleware.WithLogging(adminHandler.ListReservations))
	mux.HandleFunc("GET /api/admin/stats", middleware.WithLogging(adminHandler.DashboardStats))

	// Organizer scan pipeline (guarded)
	mux.HandleFunc("POST /api/organizer/scan", middleware.WithLogging(organizerHandler.Scan))
	mux.HandleFunc("POST /api/organizer/scan/rearm", middleware.WithLogging(organizerHandler.RearmScan))
	mux.HandleFunc("GET /api/organizer/scan/state", middleware.WithLogging(organizerHandler.ScanState))
	mux.HandleFunc("POST /api/organizer/record-general-attendance", middleware.WithLogging(organizerHandler.RecordGeneralAttendance))
	mux.HandleFunc("GET /api/organizer/badge", middleware.WithLogging(organizerHandler.Badge))

	// Spinner mini-game
	mux.HandleFunc("GET /api/game/participants", middleware.WithLogging(gameHandler.Participants))
	mux.HandleFunc("DELETE /api/game/participants", middleware.WithLogging(gameHandler.ClearParticipants))
	mux.HandleFunc("GET /api/game/participants/live", gameHandler.Live)
	mux.HandleFunc("GET /api/game/winners", middleware.WithLogging(gameHandler.Winners))
	mux.HandleFunc("GET /api/game/winners/history", middleware.WithLogging(gameHandler.PastWinners))
	mux.HandleFunc("DELETE /api/game/winners", middleware.WithLogging(gameHandler.ClearWinners))

	// Pages
	mux.HandleFunc("GET /", pageHandler.Index)
	mux.HandleFunc("GET /admin/login", pageHandler.AdminLogin)
	mux.HandleFunc("GET /organizer/login", pageHandler.OrganizerLogin)
	mux.HandleFunc("GET /admin", pageHandler.AdminDashboard)
	mux.HandleFunc("GET /organizer/scan", pageHandler.OrganizerScan)
	mux.HandleFunc("GET /game/spin", pageHandler.SpinGame)

	// Static files
	if deps.StaticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticDir))))
	}

	return middleware.Guard(middleware.Recover(mux))
}
