// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLStore persists lists in a relational database. The queries run
// unchanged against Postgres (lib/pq) and SQLite (modernc.org/sqlite);
// main picks the driver from configuration.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a store over an open database connection. The schema
// must already exist (see package db).
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get implements Store.
func (s *SQLStore) Get(ctx context.Context, key string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM roster_entry
		WHERE list_key = $1
		ORDER BY position
	`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster %q: %w", key, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster %q: %w", key, err)
	}
	return names, nil
}

// Set implements Store by replacing the whole list in one transaction.
func (s *SQLStore) Set(ctx context.Context, key string, names []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin roster transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roster_entry WHERE list_key = $1`, key); err != nil {
		return fmt.Errorf("failed to clear roster %q: %w", key, err)
	}
	for i, name := range names {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO roster_entry (list_key, position, name)
			VALUES ($1, $2, $3)
		`, key, i, name)
		if err != nil {
			return fmt.Errorf("failed to insert roster row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster %q: %w", key, err)
	}
	return nil
}
