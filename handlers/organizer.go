// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/danielhkuo/eventgate/auth"
	"github.com/danielhkuo/eventgate/middleware"
	"github.com/danielhkuo/eventgate/models"
	"github.com/danielhkuo/eventgate/roster"
	"github.com/danielhkuo/eventgate/scan"
	"github.com/danielhkuo/eventgate/sse"
)

// stationHeader identifies the scanner station driving a flow. Stations
// without one get a generated ID back in the response and reuse it.
const stationHeader = "X-Station-ID"

// badgeSize is the pixel width of generated badge QR codes.
const badgeSize = 256

type OrganizerHandler struct {
	flows        *scan.Registry
	participants *roster.Roster
	broadcaster  *sse.Broadcaster
}

func NewOrganizerHandler(flows *scan.Registry, participants *roster.Roster, broadcaster *sse.Broadcaster) *OrganizerHandler {
	return &OrganizerHandler{
		flows:        flows,
		participants: participants,
		broadcaster:  broadcaster,
	}
}

// Scan handles POST /api/organizer/scan. The body carries the raw QR
// payload; the station's flow extracts an identifier, submits it to the
// backend, and lands in success or error.
func (h *OrganizerHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.Data == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing 'data' in request body")
		return
	}

	station := h.station(r)
	token, _ := auth.Credential(r)

	snap, accepted := h.flows.Get(station).Detect(r.Context(), token, req.Data)
	if !accepted {
		// A submission is already in flight for this station
		middleware.JSONResponse(w, http.StatusConflict, snapshotResponse(station, snap))
		return
	}

	switch snap.State {
	case models.ScanSuccess:
		h.publishParticipants(r.Context())
		middleware.JSONResponse(w, http.StatusOK, snapshotResponse(station, snap))
	case models.ScanError:
		status := http.StatusBadGateway
		if snap.Message == scan.MsgStudentIDNotFound {
			status = http.StatusBadRequest
		}
		middleware.JSONResponse(w, status, snapshotResponse(station, snap))
	default:
		middleware.JSONResponse(w, http.StatusOK, snapshotResponse(station, snap))
	}
}

// RearmScan handles POST /api/organizer/scan/rearm
func (h *OrganizerHandler) RearmScan(w http.ResponseWriter, r *http.Request) {
	station := h.station(r)
	snap := h.flows.Get(station).Rearm()
	middleware.JSONResponse(w, http.StatusOK, snapshotResponse(station, snap))
}

// ScanState handles GET /api/organizer/scan/state
func (h *OrganizerHandler) ScanState(w http.ResponseWriter, r *http.Request) {
	station := h.station(r)
	snap := h.flows.Get(station).Snapshot()
	middleware.JSONResponse(w, http.StatusOK, snapshotResponse(station, snap))
}

// RecordGeneralAttendance handles POST /api/organizer/record-general-attendance.
// This endpoint validates and acknowledges locally; general attendance has
// no backing store yet.
func (h *OrganizerHandler) RecordGeneralAttendance(w http.ResponseWriter, r *http.Request) {
	var req models.RecordAttendanceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.StudentID == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, map[string]string{
			"message": "studentId is required",
		})
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message":   "Attendance recorded",
		"studentId": req.StudentID,
	})
}

// Badge handles GET /api/organizer/badge?studentId=... with a PNG QR code
// encoding the identifier. Scanning the badge round-trips through the
// bare-token extractor.
func (h *OrganizerHandler) Badge(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("studentId")
	if studentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "studentId is required")
		return
	}

	png, err := qrcode.Encode(studentID, qrcode.Medium, badgeSize)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate badge")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// station returns the caller's station ID, minting one when absent.
func (h *OrganizerHandler) station(r *http.Request) string {
	if station := r.Header.Get(stationHeader); station != "" {
		return station
	}
	return uuid.NewString()
}

func (h *OrganizerHandler) publishParticipants(ctx context.Context) {
	names, err := h.participants.List(ctx)
	if err != nil {
		slog.Error("failed to read participants for broadcast", "error", err)
		return
	}
	data, err := json.Marshal(models.ParticipantsResponse{Participants: names})
	if err != nil {
		slog.Error("failed to encode participants broadcast", "error", err)
		return
	}
	h.broadcaster.Publish(sse.EventParticipants, string(data))
}

func snapshotResponse(station string, snap scan.Snapshot) models.ScanStateResponse {
	return models.ScanStateResponse{
		Station: station,
		State:   snap.State,
		Message: snap.Message,
		Payload: snap.Payload,
	}
}
