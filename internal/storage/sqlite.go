// Package storage provides SQLite-based persistence for the high score and
// the history of finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snake-deluxe/internal/games/snake"
)

// ErrClosed is returned by every method called after Close.
var ErrClosed = errors.New("storage: store is closed")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ResultEntry is a stored game result.
type ResultEntry struct {
	ID int64
	snake.Result
}

// Stats aggregates the result history.
type Stats struct {
	GamesCount int
	BestScore  int
	AvgScore   float64
	TotalTicks int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// DefaultPath returns the database location used when none is configured.
func DefaultPath() string {
	return "~/.snake/snake.db"
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			cause TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_ended ON results(ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. Later calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

// HighScore returns the integer stored under key.
// Returns 0 if the key is absent; a non-integer value is an error.
func (s *Store) HighScore(key string) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var raw string
	err = db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("storage: corrupt high score %q under %s", raw, key)
	}
	return score, nil
}

// SetHighScore stores score under key, replacing any previous value.
func (s *Store) SetHighScore(key string, score int) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, strconv.Itoa(score), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecordResult stores a finished game. It implements snake.ResultRecorder.
func (s *Store) RecordResult(r snake.Result) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO results (session_id, score, length, cause, ticks, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID.String(),
		r.Score,
		r.Length,
		r.Cause.String(),
		int64(r.Ticks),
		r.Duration.Milliseconds(),
		r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record result: %w", err)
	}
	return nil
}

// TopResults retrieves the best results, highest score first.
// Ties are broken by the earlier game.
func (s *Store) TopResults(limit int) ([]ResultEntry, error) {
	return s.queryResults("ORDER BY score DESC, ended_at ASC", limit)
}

// RecentResults retrieves the most recently finished games.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	return s.queryResults("ORDER BY ended_at DESC, id DESC", limit)
}

func (s *Store) queryResults(order string, limit int) ([]ResultEntry, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.Query(
		`SELECT id, session_id, score, length, cause, ticks, duration_ms, ended_at
		 FROM results `+order+` LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var (
			e          ResultEntry
			sessionID  string
			cause      string
			ticks      int64
			durationMs int64
			endedAt    int64
		)
		if err := rows.Scan(&e.ID, &sessionID, &e.Score, &e.Length, &cause, &ticks, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// A malformed id leaves the zero UUID; the rest of the row is still useful.
		if id, err := uuid.Parse(sessionID); err == nil {
			e.SessionID = id
		}
		e.Cause = snake.ParseCollision(cause)
		e.Ticks = uint64(ticks)
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.EndedAt = time.UnixMilli(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetStats aggregates the result history. LastPlayed is zero when no game
// has been recorded.
func (s *Store) GetStats() (*Stats, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	var lastPlayed sql.NullInt64
	err = db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0), MAX(ended_at)
		 FROM results`,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.AvgScore, &stats.TotalTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}

	return stats, nil
}

// ClearResults deletes the result history. The high score is kept.
func (s *Store) ClearResults() error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// KeyedHighScore adapts a Store to snake.HighScoreStore for a fixed key.
type KeyedHighScore struct {
	Store *Store
	Key   string
}

// LoadHighScore implements snake.HighScoreStore.
func (k KeyedHighScore) LoadHighScore() (int, error) {
	return k.Store.HighScore(k.Key)
}

// SaveHighScore implements snake.HighScoreStore.
func (k KeyedHighScore) SaveHighScore(score int) error {
	return k.Store.SetHighScore(k.Key, score)
}

var (
	_ snake.HighScoreStore = KeyedHighScore{}
	_ snake.ResultRecorder = (*Store)(nil)
)
