// Package cache stores computed Reports in a local SQLite database,
// keyed by a stable hash of the (SalaryProfile, Holdings, Options)
// tuple that produced them, so a Report computed once can be fetched
// again by that key (GET /v1/reports/{id}) without re-running the
// engine. Writers always compute a fresh Report before storing it; the
// nightly scheduler does not read this cache (SPEC_FULL.md §11).
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite"

	"github.com/spiffler33/taxhawk/internal/model"
)

// Store is a SQLite-backed cache of Reports.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// applies the connection-pool PRAGMAs suited to a low-concurrency local
// cache: WAL journaling for readers-don't-block-writers, a busy timeout
// so concurrent writers retry instead of failing outright, and foreign
// keys on for referential integrity.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	cache_key   TEXT PRIMARY KEY,
	report_id   TEXT NOT NULL,
	payload     BLOB NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
`

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key derives a stable cache key from the inputs that determine a
// Report's content. Two calls with identical inputs always produce the
// same key, and the derivation never looks at the clock.
func Key(profile model.SalaryProfile, holdings model.Holdings, options model.Options) (string, error) {
	payload, err := json.Marshal(struct {
		Profile  model.SalaryProfile
		Holdings model.Holdings
		Options  model.Options
	}{profile, holdings, options})
	if err != nil {
		return "", fmt.Errorf("marshal cache key inputs: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// Get returns the cached Report for key, or ok=false if absent.
func (s *Store) Get(ctx context.Context, key string) (model.Report, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM reports WHERE cache_key = ?`, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return model.Report{}, false, nil
	}
	if err != nil {
		return model.Report{}, false, fmt.Errorf("query cache: %w", err)
	}

	var report model.Report
	if err := msgpack.Unmarshal(blob, &report); err != nil {
		return model.Report{}, false, fmt.Errorf("decode cached report: %w", err)
	}
	return report, true, nil
}

// Put stores report under key, overwriting any existing entry.
func (s *Store) Put(ctx context.Context, key string, report model.Report) error {
	blob, err := msgpack.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (cache_key, report_id, payload, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			report_id = excluded.report_id,
			payload = excluded.payload,
			created_at = excluded.created_at
	`, key, report.ReportID, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert cache entry: %w", err)
	}
	return nil
}
