// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the eventgate server.

Eventgate is the web edge of an event-management platform: an auth-gating
guard over the admin and organizer areas, a thin proxy to the remote event
backend, the QR scan/attendance pipeline, and the spinner mini-game's
roster endpoints.

# Starting the Server

The server reads environment variables (optionally from a .env file) or
CLI flags:

	BACKEND_URL=https://backend.example.com go run .

Or with flags:

	go run . -p 3000 -b "https://backend.example.com"

Without a backend URL the gateway serves deterministic stub data for local
development.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - BACKEND_URL (-b): Remote backend base URL
  - ROSTER_STORE (-s): memory, sql or redis (default: memory)
  - DATABASE_URL (-d) / DATABASE_TYPE (-t): sql store settings
  - REDIS_ADDR (-redis-addr): redis store setting

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, admin, organizer, game, pages)
  - router: Route definitions using Go 1.22+ routing, guard applied
  - middleware: Edge guard, logging, recovery, CORS, JSON helpers
  - models: Request/response types
  - backend: Remote/stub backend clients and response normalization
  - scan: QR identifier extraction and the scan flow state machine
  - roster: Participant/winner list persistence (memory, SQL, Redis)
  - auth: Credential cookie handling
  - db: Schema creation for the SQL roster store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
