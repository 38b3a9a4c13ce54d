package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a preference key has never been set.
var ErrNotFound = errors.New("store: not found")

// Preference keys. The last-selected subject and quantity are the only
// state that survives across sessions.
const (
	PrefSubject  = "selected_subject"
	PrefQuantity = "selected_quantity"
)

// PrefRepo stores string preferences by fixed key names. Read once at
// startup, written once per successful session start.
type PrefRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type prefRepo struct {
	db *sql.DB
}

func (r *prefRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get pref %s: %w", key, err)
	}
	return value, nil
}

func (r *prefRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("set pref %s: %w", key, err)
	}
	return nil
}
