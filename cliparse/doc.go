// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - BackendURL: Backend base URL; empty selects the stub backend
  - RosterStore: memory, sql or redis (default: memory)
  - DatabaseURL: Database connection string (required for sql store)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - RedisAddr: Redis address (required for redis store)

# CLI Flags

	-p           Server port
	-b           Backend base URL
	-s           Roster store kind
	-d           Database URL
	-t           Database type
	-redis-addr  Redis address

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	BACKEND_URL   → -b
	ROSTER_STORE  → -s
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	REDIS_ADDR    → -redis-addr

CLI flags take precedence over environment variables. main loads a .env
file first via godotenv, so either mechanism works in development.

# Validation

ParseFlags returns an error when a selected roster store is missing its
backing configuration:

  - sql store needs DATABASE_URL
  - redis store needs REDIS_ADDR

An empty BackendURL is valid: the gateway then serves deterministic sample
data from the stub backend instead of forwarding calls.
*/
package cliparse
