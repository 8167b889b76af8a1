// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import "context"

// Persistence keys. The names predate this server: the spinner page used to
// keep these lists in browser localStorage under the same keys.
const (
	KeyParticipants = "spinnerParticipants"
	KeyWinners      = "spinnerWinners"
)

// Store persists ordered name lists under string keys.
type Store interface {
	// Get returns the list stored under key, empty when absent.
	Get(ctx context.Context, key string) ([]string, error)
	// Set replaces the list stored under key.
	Set(ctx context.Context, key string, names []string) error
}
