package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/runnerr0/trackerian/internal/tracker"
)

// Store is the persistence boundary: activities are loaded once when a
// command starts and saved once when it finishes.
type Store interface {
	Load(ctx context.Context) ([]*tracker.Activity, error)
	Save(ctx context.Context, activities []*tracker.Activity) error
	Close() error
}

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Prepared statements
	selectActivities *sql.Stmt
	selectTags       *sql.Stmt
}

// NewSQLiteStore creates a new SQLiteStore from an already-opened and migrated database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.selectActivities, err = s.db.Prepare(`
		SELECT id, name, start_ts, start_label, end_ts, end_label, duration_ns
		FROM activities ORDER BY position
	`)
	if err != nil {
		return err
	}

	s.selectTags, err = s.db.Prepare(`
		SELECT activity_id, tag FROM activity_tags ORDER BY activity_id, ord
	`)
	if err != nil {
		return err
	}

	return nil
}

// formatTimestamp keeps the local offset so wall-clock times survive a round trip.
func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// parseTimestamp tries several common SQLite timestamp formats and returns local time.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t.Local(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

// Load returns every stored activity in position order. A fresh database
// yields an empty, non-nil slice.
func (s *SQLiteStore) Load(ctx context.Context) ([]*tracker.Activity, error) {
	rows, err := s.selectActivities.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	activities := []*tracker.Activity{}
	byID := make(map[string]*tracker.Activity)

	for rows.Next() {
		var (
			a        tracker.Activity
			startStr string
			endStr   sql.NullString
			duration sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &a.Name, &startStr, &a.StartLabel, &endStr, &a.EndLabel, &duration); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		a.Start, err = parseTimestamp(startStr)
		if err != nil {
			return nil, fmt.Errorf("activity %s start: %w", a.ID, err)
		}
		if endStr.Valid {
			end, err := parseTimestamp(endStr.String)
			if err != nil {
				return nil, fmt.Errorf("activity %s end: %w", a.ID, err)
			}
			a.End = &end
			a.Duration = end.Sub(a.Start)
			if duration.Valid {
				a.Duration = time.Duration(duration.Int64)
			}
		}
		a.Tags = []string{}

		activities = append(activities, &a)
		byID[a.ID] = &a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadTags(ctx, byID); err != nil {
		return nil, err
	}

	return activities, nil
}

func (s *SQLiteStore) loadTags(ctx context.Context, byID map[string]*tracker.Activity) error {
	rows, err := s.selectTags.QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return fmt.Errorf("scan tag: %w", err)
		}
		if a, ok := byID[id]; ok {
			a.Tags = append(a.Tags, tag)
		}
	}
	return rows.Err()
}

// Save replaces the stored activities with the given ones in a single
// transaction. Activities without an ID are assigned one.
func (s *SQLiteStore) Save(ctx context.Context, activities []*tracker.Activity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range []string{"DELETE FROM activity_tags", "DELETE FROM activities"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear (%s): %w", stmt, err)
		}
	}

	for i, a := range activities {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}

		var endTS sql.NullString
		var duration sql.NullInt64
		if a.End != nil {
			endTS = sql.NullString{String: formatTimestamp(*a.End), Valid: true}
			duration = sql.NullInt64{Int64: int64(a.Duration), Valid: true}
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO activities (id, position, name, start_ts, start_label, end_ts, end_label, duration_ns)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, i, a.Name, formatTimestamp(a.Start), a.StartLabel, endTS, a.EndLabel, duration,
		)
		if err != nil {
			return fmt.Errorf("insert activity %d: %w", i, err)
		}

		for ord, tag := range a.Tags {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO activity_tags (activity_id, ord, tag) VALUES (?, ?, ?)",
				a.ID, ord, tag,
			); err != nil {
				return fmt.Errorf("insert tag for activity %d: %w", i, err)
			}
		}
	}

	return tx.Commit()
}

// Close releases all prepared statements. The underlying *sql.DB is NOT
// closed; that is the caller's responsibility.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.selectActivities, s.selectTags} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}
