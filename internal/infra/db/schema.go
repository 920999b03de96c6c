package db

import (
	"context"
	"database/sql"
	"fmt"
)

// articlesTable is idempotent, so it is safe to run on every start.
const articlesTable = `
CREATE TABLE IF NOT EXISTS articles (
    id    BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    body  TEXT NOT NULL
)`

// EnsureSchema creates the articles table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, articlesTable); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}
