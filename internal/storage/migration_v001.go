package storage

import "database/sql"

// migrateV001 creates the activity tables. Position is the user-facing index
// and is rewritten on every save; id is the stable row identity.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS activities (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL UNIQUE,
			name        TEXT NOT NULL,
			start_ts    TEXT NOT NULL,
			start_label TEXT NOT NULL DEFAULT '',
			end_ts      TEXT,
			end_label   TEXT NOT NULL DEFAULT '',
			duration_ns INTEGER,
			updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS activity_tags (
			activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
			ord         INTEGER NOT NULL,
			tag         TEXT NOT NULL,
			PRIMARY KEY (activity_id, ord)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start_ts)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_tags_tag ON activity_tags(tag)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
