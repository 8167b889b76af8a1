// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/middleware"
)

// writeProxied translates a backend response into the normalized envelope.
// Remote failures collapse to failStatus (502 for most endpoints, 401 for
// logins) with the remote body surfaced verbatim when there is one. Remote
// success passes JSON through untouched and wraps bare text as a message.
func writeProxied(w http.ResponseWriter, res *backend.Response, failStatus int) {
	if !res.OK() {
		middleware.ErrorResponse(w, failStatus, remoteFailureMessage(res))
		return
	}

	if json.Valid(res.Body) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(res.Body)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": string(res.Body)})
}

// okEnvelope re-encodes a successful login body with ok:true folded in.
func okEnvelope(w http.ResponseWriter, body []byte) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		middleware.JSONResponse(w, http.StatusOK, map[string]any{"ok": true, "message": string(body)})
		return
	}
	fields["ok"] = true
	middleware.JSONResponse(w, http.StatusOK, fields)
}

func remoteFailureMessage(res *backend.Response) string {
	if len(res.Body) > 0 {
		return string(res.Body)
	}
	return fmt.Sprintf("Backend error %d", res.StatusCode)
}
