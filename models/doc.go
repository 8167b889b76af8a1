// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the gateway.

# Request Types

Types for parsing incoming JSON:

  - AdminLoginRequest: email, password
  - OrganizerLoginRequest: username (or email), password
  - CreateOrganizerRequest: name, email, password
  - CreateEventRequest: eventName, eventDate
  - ScanRequest: data (raw QR payload)
  - RecordAttendanceRequest: studentId

# Response Types

Types for JSON responses:

  - ScanStateResponse: station, state, message, payload
  - ParticipantsResponse: participants
  - WinnersResponse: winners
  - ErrorResponse: error, message

Most proxy endpoints do not respond with a fixed type: they forward whatever
JSON the backend returned (the envelope). The types above cover the locally
produced responses only.

# Domain Types

Sample-data structures served by the stub backend:

  - Reservation: event reservation row
  - Attendee: event attendee with check-in state
  - DashboardStats: admin dashboard counters

# Constants

Scan flow states:

	ScanIdle    = "idle"
	ScanScanned = "scanned"
	ScanSending = "sending"
	ScanSuccess = "success"
	ScanError   = "error"

Attendee statuses:

	AttendeeRegistered = "registered"
	AttendeeCheckedIn  = "checked_in"
*/
package models
