package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/trackerian/internal/config"
	"github.com/runnerr0/trackerian/internal/storage"
	"github.com/runnerr0/trackerian/internal/tracker"
)

const noActivitiesMessage = "No activities have been tracked"

// env is everything a command works against during one invocation.
type env struct {
	out        io.Writer
	log        *slog.Logger
	activities *tracker.ActivityStore
	filter     tracker.RangeFilter
	json       bool
}

// session owns the resources behind an env for a real invocation.
type session struct {
	env

	store   storage.Store
	db      *sql.DB
	closers []io.Closer
}

// run loads the activity store, executes fn and, for mutating commands,
// saves the store back.
func run(globals *GlobalFlags, mutates bool, fn func(*env) error) error {
	s, err := openSession(globals)
	if err != nil {
		return err
	}
	defer s.close()

	if err := fn(&s.env); err != nil {
		return err
	}
	if !mutates {
		return nil
	}
	return s.save(context.Background())
}

// loadConfig resolves --config or the default path, creating defaults if missing.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.LoadOrCreateAt(globals.Config)
	}
	return config.LoadOrCreate()
}

// openSession opens the configured database, runs migrations and loads
// every stored activity.
func openSession(globals *GlobalFlags) (*session, error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	verbose := globals != nil && globals.Verbose
	logger, logCloser, err := newLogger(cfg, verbose)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	s := &session{closers: []io.Closer{logCloser}}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		s.close()
		return nil, err
	}
	db, err := openDatabase(dbPath, cfg.Storage.SQLiteJournalMode)
	if err != nil {
		s.close()
		return nil, err
	}
	s.db = db

	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("init store: %w", err)
	}
	s.store = store

	loaded, err := store.Load(context.Background())
	if err != nil {
		s.close()
		return nil, fmt.Errorf("load activities: %w", err)
	}
	logger.Debug("store loaded", "path", dbPath, "activities", len(loaded))

	s.env = env{
		out:        os.Stdout,
		log:        logger,
		activities: tracker.NewActivityStore(tracker.SystemClock, loaded...),
		filter: tracker.RangeFilter{
			Clock:        tracker.SystemClock,
			DayStartHour: cfg.Tracking.DayStartHour,
		},
		json: globals != nil && globals.JSON,
	}
	return s, nil
}

// openDatabase opens the SQLite file, creating its directory, and applies migrations.
func openDatabase(dbPath, journalMode string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := dbPath + "?_foreign_keys=on"
	if journalMode != "" {
		dsn += "&_journal_mode=" + strings.ToUpper(journalMode)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	runner := storage.NewMigrationRunner(db)
	if err := runner.Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func (s *session) save(ctx context.Context) error {
	all := s.activities.All()
	if err := s.store.Save(ctx, all); err != nil {
		return fmt.Errorf("save activities: %w", err)
	}
	s.log.Debug("store saved", "activities", len(all))
	return nil
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	for _, c := range s.closers {
		c.Close()
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds a text slog.Logger from the logging config. Output goes to
// the configured file, or stderr when none is set.
func newLogger(cfg *config.Config, verbose bool) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

// latestOrNotice reports the empty-store case to the user instead of failing.
func latestOrNotice(e *env, err error) (handled bool, _ error) {
	if errors.Is(err, tracker.ErrEmptyStore) {
		fmt.Fprintln(e.out, noActivitiesMessage)
		return true, nil
	}
	return err != nil, err
}

// parsePeriodArg reads an optional period positional argument.
func parsePeriodArg(args []string) (tracker.Period, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("expected at most one period argument, got %d", len(args))
	}
	if len(args) == 0 {
		return tracker.PeriodDay, nil
	}
	return tracker.ParsePeriod(args[0])
}
