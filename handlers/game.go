// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/eventgate/auth"
	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/middleware"
	"github.com/danielhkuo/eventgate/models"
	"github.com/danielhkuo/eventgate/roster"
	"github.com/danielhkuo/eventgate/sse"
)

// randomWinnersPath is the external winner-selection endpoint. Fairness of
// the draw lives entirely on that service.
const randomWinnersPath = "/attendance/random-winners"

type GameHandler struct {
	client       backend.Client
	participants *roster.Roster
	winners      *roster.Roster
	broadcaster  *sse.Broadcaster
}

func NewGameHandler(client backend.Client, participants, winners *roster.Roster, broadcaster *sse.Broadcaster) *GameHandler {
	return &GameHandler{
		client:       client,
		participants: participants,
		winners:      winners,
		broadcaster:  broadcaster,
	}
}

// Participants handles GET /api/game/participants
func (h *GameHandler) Participants(w http.ResponseWriter, r *http.Request) {
	names, err := h.participants.List(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ParticipantsResponse{Participants: names})
}

// ClearParticipants handles DELETE /api/game/participants. This is the only
// way participant names are discarded; scan re-arms never drop them.
func (h *GameHandler) ClearParticipants(w http.ResponseWriter, r *http.Request) {
	if err := h.participants.Clear(r.Context()); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.publish(r, sse.EventParticipants)
	middleware.JSONResponse(w, http.StatusOK, models.ParticipantsResponse{Participants: []string{}})
}

// Winners handles GET /api/game/winners?count=N by asking the external
// winner-selection service for a draw and recording the result.
func (h *GameHandler) Winners(w http.ResponseWriter, r *http.Request) {
	path := randomWinnersPath
	if count := r.URL.Query().Get("count"); count != "" {
		path += "?count=" + url.QueryEscape(count)
	}

	token, _ := auth.Credential(r)
	res, err := h.client.Do(r.Context(), http.MethodGet, path, token, nil)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if !res.OK() {
		middleware.ErrorResponse(w, http.StatusBadGateway, remoteFailureMessage(res))
		return
	}

	var drawn models.WinnersResponse
	if err := json.Unmarshal(res.Body, &drawn); err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "Unexpected winners response")
		return
	}

	for _, name := range drawn.Winners {
		if _, err := h.winners.Append(r.Context(), name); err != nil {
			slog.Error("failed to record winner", "name", name, "error", err)
		}
	}
	h.publish(r, sse.EventWinners)

	middleware.JSONResponse(w, http.StatusOK, drawn)
}

// PastWinners handles GET /api/game/winners/history
func (h *GameHandler) PastWinners(w http.ResponseWriter, r *http.Request) {
	names, err := h.winners.List(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.WinnersResponse{Winners: names})
}

// ClearWinners handles DELETE /api/game/winners
func (h *GameHandler) ClearWinners(w http.ResponseWriter, r *http.Request) {
	if err := h.winners.Clear(r.Context()); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.publish(r, sse.EventWinners)
	middleware.JSONResponse(w, http.StatusOK, models.WinnersResponse{Winners: []string{}})
}

// Live handles GET /api/game/participants/live, streaming roster updates
// as server-sent events so the spinner page refreshes without polling.
func (h *GameHandler) Live(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(ch)

	// Send the current roster immediately
	if names, err := h.participants.List(r.Context()); err == nil {
		if data, err := json.Marshal(models.ParticipantsResponse{Participants: names}); err == nil {
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventParticipants, data)
			flusher.Flush()
		}
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}

// publish broadcasts the current contents of a roster to live subscribers.
func (h *GameHandler) publish(r *http.Request, event string) {
	var payload any
	var err error
	switch event {
	case sse.EventParticipants:
		var names []string
		names, err = h.participants.List(r.Context())
		payload = models.ParticipantsResponse{Participants: names}
	case sse.EventWinners:
		var names []string
		names, err = h.winners.List(r.Context())
		payload = models.WinnersResponse{Winners: names}
	}
	if err != nil {
		slog.Error("failed to read roster for broadcast", "event", event, "error", err)
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode roster broadcast", "event", event, "error", err)
		return
	}
	h.broadcaster.Publish(event, string(data))
}
