// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// remoteCallTimeout caps a single backend round trip.
const remoteCallTimeout = 15 * time.Second

// RemoteClient forwards calls to the configured backend base URL.
type RemoteClient struct {
	baseURL string
	client  *http.Client
}

// NewRemoteClient creates a client for the given backend base URL.
func NewRemoteClient(baseURL string) *RemoteClient {
	return &RemoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: remoteCallTimeout},
	}
}

// Do implements Client against the remote backend.
func (c *RemoteClient) Do(ctx context.Context, method, path, token string, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode backend payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend call failed: %w", err)
	}
	defer res.Body.Close()

	// Read as text first; the backend does not always answer with JSON.
	text, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	return &Response{StatusCode: res.StatusCode, Body: text}, nil
}
