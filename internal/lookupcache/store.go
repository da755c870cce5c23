package lookupcache

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"marquee/internal/logging"
	"marquee/internal/omdb"
	"marquee/internal/textutil"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped whenever schema.sql changes. The cache holds no
// user data, so a mismatched database is cleared and recreated.
const schemaVersion = 1

// Store is a TTL-bounded SQLite cache of OMDb lookups.
type Store struct {
	db     *sql.DB
	path   string
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// Open initializes or connects to the cache database at path. A ttl of zero
// keeps entries forever.
func Open(path string, ttl time.Duration, logger *slog.Logger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("lookup cache path required")
	}
	if ttl < 0 {
		return nil, fmt.Errorf("lookup cache ttl must be non-negative, got %v", ttl)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		path:   path,
		ttl:    ttl,
		logger: logging.NewComponentLogger(logger, "lookupcache"),
		now:    time.Now,
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached movie for title. Expired entries are reported as
// misses and removed.
func (s *Store) Get(ctx context.Context, title string) (*omdb.Movie, bool, error) {
	key := cacheKey(title)
	if key == "" {
		return nil, false, nil
	}

	var (
		payload  string
		cachedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT payload, cached_at FROM lookups WHERE query_key = ?", key,
	).Scan(&payload, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached lookup: %w", err)
	}

	if s.expired(time.Unix(cachedAt, 0)) {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM lookups WHERE query_key = ?", key); err != nil {
			return nil, false, fmt.Errorf("evict expired lookup: %w", err)
		}
		s.logger.Debug("evicted expired lookup",
			logging.String(logging.FieldEventType, "lookup_cache_expired"),
			logging.String("title", title))
		return nil, false, nil
	}

	var movie omdb.Movie
	if err := json.Unmarshal([]byte(payload), &movie); err != nil {
		return nil, false, fmt.Errorf("decode cached lookup: %w", err)
	}
	return &movie, true, nil
}

// Put stores movie under title, replacing any previous entry.
func (s *Store) Put(ctx context.Context, title string, movie *omdb.Movie) error {
	key := cacheKey(title)
	if key == "" {
		return errors.New("title cannot be empty")
	}
	if movie == nil {
		return errors.New("movie cannot be nil")
	}
	payload, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("encode lookup: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO lookups (query_key, query_title, payload, cached_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(query_key) DO UPDATE SET
    query_title = excluded.query_title,
    payload = excluded.payload,
    cached_at = excluded.cached_at`,
		key, strings.TrimSpace(title), string(payload), s.now().Unix())
	if err != nil {
		return fmt.Errorf("store lookup: %w", err)
	}
	return nil
}

// Prune removes expired entries and returns how many were deleted.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	if s.ttl == 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.ttl).Unix()
	res, err := s.db.ExecContext(ctx, "DELETE FROM lookups WHERE cached_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune lookups: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) expired(cachedAt time.Time) bool {
	if s.ttl == 0 {
		return false
	}
	return s.now().Sub(cachedAt) > s.ttl
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version == schemaVersion {
		return nil
	}

	s.logger.Warn("lookup cache schema changed; recreating",
		logging.String(logging.FieldEventType, "lookup_cache_reset"),
		logging.Int("found_version", version),
		logging.Int("expected_version", schemaVersion),
		logging.String(logging.FieldErrorHint, "cached lookups will be fetched again"))
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS lookups; DROP TABLE IF EXISTS schema_version;"); err != nil {
		return fmt.Errorf("reset cache schema: %w", err)
	}
	return s.createSchema(ctx)
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

func cacheKey(title string) string {
	return textutil.Fold(strings.TrimSpace(title))
}
