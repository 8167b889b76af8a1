// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster persists the participant and winner name lists behind the
spinner mini-game.

# Store Interface

Store is a small key-to-ordered-list contract:

	Get(ctx, key) ([]string, error)
	Set(ctx, key, names) error

Three implementations exist, selected by configuration at startup:

  - MemoryStore: process-local, for tests and throwaway runs
  - SQLStore: Postgres or SQLite via database/sql (schema in package db)
  - RedisStore: one Redis list per key, for multi-instance deployments

# Roster

Roster layers list semantics over a Store key: Append dedupes by exact
string match and keeps first-seen order, List reads, Clear empties. Names
accumulate across scan re-arms and page reloads until a user explicitly
clears them:

	participants := roster.New(store, roster.KeyParticipants)
	added, err := participants.Append(ctx, "Ada Lovelace")

# Keys

KeyParticipants ("spinnerParticipants") and KeyWinners ("spinnerWinners")
are the two lists the spinner page reads.
*/
package roster
