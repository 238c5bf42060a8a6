package db

import (
	"context"
	"database/sql"

	_ "embed"

	"github.com/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the embedded schema: the pgvector extension, the four
// knowledge tables and the chat_sessions table. All statements are
// idempotent so Migrate can run on every boot.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return errors.Wrap(err, "failed to apply schema")
}
