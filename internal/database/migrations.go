package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// position keeps insertion order; id is the contact id and may repeat in
	// books imported from older files
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS contacts (
			position INTEGER PRIMARY KEY AUTOINCREMENT,
			id INTEGER NOT NULL,
			surname TEXT NOT NULL,
			name TEXT NOT NULL,
			middlename TEXT NOT NULL,
			org_name TEXT NOT NULL,
			phone_for_work TEXT NOT NULL,
			personal_phone TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_contacts_id
		ON contacts(id)
	`)
	return err
}
