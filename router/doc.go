// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the eventgate gateway.

# Route Registration

NewRouter creates the full handler chain from wired dependencies:

	handler := router.NewRouter(router.Deps{...})

The returned handler is the mux wrapped in panic recovery and the edge
guard, so guard semantics apply to every route.

# Endpoints

Health (exempt from the guard):

	GET /health
	GET /api/health

Authentication:

	POST /api/auth/admin/login
	POST /api/auth/organizer/login
	POST /api/auth/logout

Admin proxy (guarded, 401 without credential):

	POST /api/admin/organizers
	POST /api/admin/events
	GET  /api/admin/events/{id}/attendees
	GET  /api/admin/reservations
	GET  /api/admin/stats

Organizer scan pipeline (guarded):

	POST /api/organizer/scan
	POST /api/organizer/scan/rearm
	GET  /api/organizer/scan/state
	POST /api/organizer/record-general-attendance
	GET  /api/organizer/badge

Spinner mini-game (public):

	GET    /api/game/participants
	DELETE /api/game/participants
	GET    /api/game/participants/live  (SSE)
	GET    /api/game/winners
	GET    /api/game/winners/history
	DELETE /api/game/winners

Pages (guarded pages redirect to login):

	GET /
	GET /admin/login
	GET /organizer/login
	GET /admin
	GET /organizer/scan
	GET /game/spin

Static assets under /static/ are exempt from the guard.
*/
package router
