// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package backend abstracts the remote event-platform service.

# Client Capability

Handlers depend on the Client interface and never know which implementation
they hold:

	res, err := client.Do(ctx, "POST", "/admin/organizers", token, payload)

Do returns a transport error only for failures to reach the backend; any
HTTP answer, including 4xx and 5xx, comes back as a Response with the raw
body text. Callers decide how to translate that into a local response.

# Implementations

RemoteClient forwards to a configured base URL with a 15 second timeout,
JSON-encoding the payload and attaching Authorization: Bearer when a token
is present:

	client := backend.NewRemoteClient("https://backend.example.com")

StubClient answers from canned sample data so the gateway runs without a
backend. Reads are deterministic fixtures; writes echo an optimistic
success. The random-winners path draws from an injected participant source:

	client := backend.NewStubClient(func(ctx context.Context) []string {
		names, _ := participants.List(ctx)
		return names
	})

The choice is made once in main: a backend URL in the configuration selects
RemoteClient, otherwise StubClient. Nothing downstream branches on it.
*/
package backend
