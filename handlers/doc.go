// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the eventgate API.

# Handler Types

Each handler is a struct holding its dependencies, created via constructor:

  - AuthHandler: admin/organizer login and logout (backend.Client)
  - AdminHandler: organizer/event creation, reservations, attendees, stats
  - OrganizerHandler: QR scan flow, general attendance, badge generation
  - GameHandler: spinner rosters, winner draws, live SSE feed
  - PageHandler: minimal HTML pages behind the edge guard

# Proxy Contract

Most handlers follow one shape: validate the minimal required fields (400
before any remote call), forward to a fixed backend path with the bearer
token from the credential cookie, and normalize the answer:

  - remote non-2xx -> 502 {error: remote body or "Backend error <code>"}
    (the two login endpoints answer 401 instead)
  - remote 2xx JSON -> passed through
  - remote 2xx text -> {message: text}

Login success additionally extracts accessToken/token from the body and
sets the credential cookie.

# Scan Flow

POST /api/organizer/scan drives the per-station state machine in package
scan. Responses carry station, state, message, and the retained payload.
A detection against a busy station answers 409 with the current state;
an unextractable payload answers 400; a backend failure answers 502.

# Winner Draws

GET /api/game/winners proxies the external random-winners service, records
the drawn names in the winners roster, and broadcasts both rosters to SSE
subscribers of /api/game/participants/live.
*/
package handlers
