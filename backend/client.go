// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import "context"

// Response is the raw outcome of a backend call. Body is always read as
// text first; whether it parses as JSON is the caller's concern.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the backend answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client is the capability handlers use to reach the event backend.
// RemoteClient talks to a configured backend over HTTP; StubClient serves
// deterministic sample data for local development. The implementation is
// chosen once at startup, never branched on inside handlers.
type Client interface {
	// Do sends method+payload to the fixed backend path (which may carry a
	// query string) with the bearer token attached when non-empty. A nil
	// payload sends no body. The error covers transport failure only;
	// non-2xx statuses come back as a Response.
	Do(ctx context.Context, method, path, token string, payload any) (*Response, error)
}
