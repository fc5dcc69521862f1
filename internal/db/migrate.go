package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per user name; resubmission overwrites the whole row.
	// JSON columns hold the list-valued profile fields.
	`CREATE TABLE IF NOT EXISTS profiles (
		user_name           TEXT PRIMARY KEY,
		submitted_at        TEXT NOT NULL,
		answers             TEXT NOT NULL,
		dse_scores          TEXT NOT NULL,
		holland_code        TEXT NOT NULL,
		all_holland_codes   TEXT NOT NULL,
		matching_industries TEXT NOT NULL,
		category_scores     TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_profiles_submitted ON profiles(submitted_at)`,
}
