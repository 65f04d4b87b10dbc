package sqlite

import (
	"context"
	"database/sql"

	"lostfound/internal/errors"
)

// Timestamps are stored as INTEGER unix microseconds so ordering is exact.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id             TEXT PRIMARY KEY,
    item_type      TEXT NOT NULL CHECK (item_type IN ('lost', 'found')),
    user_id        TEXT NOT NULL DEFAULT '',
    title          TEXT NOT NULL,
    description    TEXT NOT NULL,
    category       TEXT NOT NULL,
    building       TEXT NOT NULL,
    latitude       REAL NOT NULL,
    longitude      REAL NOT NULL,
    photo_url      TEXT NOT NULL DEFAULT '',
    reporter_email TEXT NOT NULL,
    reporter_name  TEXT NOT NULL DEFAULT '',
    push_token     TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'matched', 'claimed', 'closed')),
    created_at     INTEGER NOT NULL,
    updated_at     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_type_created
    ON items(item_type, created_at DESC, id);

CREATE TABLE IF NOT EXISTS matches (
    id            TEXT PRIMARY KEY,
    lost_item_id  TEXT NOT NULL REFERENCES items(id),
    found_item_id TEXT NOT NULL REFERENCES items(id),
    pair_key      TEXT NOT NULL,
    score         REAL NOT NULL CHECK (score >= 0 AND score <= 1),
    decided_at    INTEGER NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_pair_key ON matches(pair_key);
CREATE INDEX IF NOT EXISTS idx_matches_lost ON matches(lost_item_id);
CREATE INDEX IF NOT EXISTS idx_matches_found ON matches(found_item_id);

CREATE TABLE IF NOT EXISTS notification_jobs (
    id                 TEXT PRIMARY KEY,
    kind               TEXT NOT NULL,
    item_id            TEXT NOT NULL,
    match_id           TEXT,
    recipient_email    TEXT NOT NULL,
    recipient_name     TEXT NOT NULL DEFAULT '',
    push_token         TEXT NOT NULL DEFAULT '',
    payload            TEXT NOT NULL,
    status             TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'sent', 'failed')),
    attempts           INTEGER NOT NULL DEFAULT 0,
    delivered_channels TEXT NOT NULL DEFAULT '',
    last_error         TEXT NOT NULL DEFAULT '',
    created_at         INTEGER NOT NULL,
    updated_at         INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_jobs_status_created ON notification_jobs(status, created_at);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "creating schema")
	}

	return nil
}
