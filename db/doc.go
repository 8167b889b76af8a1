// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The statements run unchanged on Postgres and SQLite.

# Tables

  - roster_entry: one row per (list_key, position, name); backs the SQL
    roster store. The gateway owns no other persistent state - events,
    reservations, and attendance all live in the remote backend.
*/
package db
