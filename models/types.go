// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Scan flow states
const (
	ScanIdle    = "idle"
	ScanScanned = "scanned"
	ScanSending = "sending"
	ScanSuccess = "success"
	ScanError   = "error"
)

// Attendee status constants
const (
	AttendeeRegistered = "registered"
	AttendeeCheckedIn  = "checked_in"
)

// Request types

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OrganizerLoginRequest accepts either a username or an email. Password must
// be present in the JSON body but may be the empty string.
type OrganizerLoginRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password *string `json:"password"`
}

type CreateOrganizerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateEventRequest struct {
	EventName string `json:"eventName"`
	EventDate string `json:"eventDate"`
}

type ScanRequest struct {
	Data string `json:"data"`
}

type RecordAttendanceRequest struct {
	StudentID string `json:"studentId"`
}

// Response types

type ScanStateResponse struct {
	Station string `json:"station"`
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
	Payload string `json:"payload,omitempty"`
}

type ParticipantsResponse struct {
	Participants []string `json:"participants"`
}

type WinnersResponse struct {
	Winners []string `json:"winners"`
}

// Domain types used by the stub backend's sample data

type Reservation struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	EventName string    `json:"eventName"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Attendee struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	CheckedInAt *time.Time `json:"checkedInAt"`
}

type DashboardStats struct {
	TodayRegistrations   int `json:"todayRegistrations"`
	UpcomingEvents       int `json:"upcomingEvents"`
	ActiveReservations   int `json:"activeReservations"`
	TotalRegisteredUsers int `json:"totalRegisteredUsers"`
	AllUsers             int `json:"allUsers"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
