// Package auth provides SQLite-backed user accounts and high-score
// persistence. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package auth

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/avorobev/breakout-tui/internal/breakout"
)

// ErrUsernameTaken is returned by Register when the username already exists.
var ErrUsernameTaken = errors.New("auth: username already taken")

// ErrUnknownUser is returned for lookups of users that do not exist.
// It is the breakout.Gateway sentinel so callers can errors.Is against
// either package.
var ErrUnknownUser = breakout.ErrUnknownUser

// Store manages the SQLite database connection for accounts and scores.
type Store struct {
	db *sql.DB
}

// User is a registered account with its best score.
type User struct {
	Username  string
	HighScore int
	CreatedAt time.Time
}

// Run is a single finished game recorded for the history table.
type Run struct {
	ID        int64
	Username  string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("auth: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("auth: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("auth: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("auth: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("auth: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			high_score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_users_high_score ON users(high_score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_username ON runs(username);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// hashPassword returns the hex-encoded SHA-256 digest of the password.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account with a zero high score.
// Returns ErrUsernameTaken if the username already exists.
func (s *Store) Register(username, password string) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)",
		username,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("auth: cannot check username: %w", err)
	}
	if exists {
		return ErrUsernameTaken
	}

	_, err = s.db.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, hashPassword(password),
	)
	if err != nil {
		return fmt.Errorf("auth: cannot create user: %w", err)
	}
	return nil
}

// Login verifies a username/password pair. Unknown users and wrong
// passwords both report (false, nil).
func (s *Store) Login(username, password string) (bool, error) {
	var stored string
	err := s.db.QueryRow(
		"SELECT password_hash FROM users WHERE username = ?",
		username,
	).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("auth: cannot query user: %w", err)
	}

	return stored == hashPassword(password), nil
}

// HighScore returns the stored high score for the user.
// Returns ErrUnknownUser if the user does not exist.
func (s *Store) HighScore(username string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT high_score FROM users WHERE username = ?",
		username,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUnknownUser
	}
	if err != nil {
		return 0, fmt.Errorf("auth: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScoreIfHigher updates the user's high score only if the new score
// beats the stored one. Returns ErrUnknownUser if the user does not exist.
func (s *Store) SetHighScoreIfHigher(username string, score int) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)",
		username,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("auth: cannot check username: %w", err)
	}
	if !exists {
		return ErrUnknownUser
	}

	_, err = s.db.Exec(
		"UPDATE users SET high_score = ? WHERE username = ? AND high_score < ?",
		score, username, score,
	)
	if err != nil {
		return fmt.Errorf("auth: cannot update high score: %w", err)
	}
	return nil
}

// RecordRun appends a finished game to the run history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(username string, score, level int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (username, score, level) VALUES (?, ?, ?)",
		username, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("auth: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("auth: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the top N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, username, score, level, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("auth: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Username, &r.Score, &r.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("auth: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("auth: row iteration error: %w", err)
	}

	return runs, nil
}

// TopPlayers retrieves the top N users ordered by high score descending.
func (s *Store) TopPlayers(limit int) ([]User, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT username, high_score, created_at
		 FROM users
		 ORDER BY high_score DESC, username ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("auth: cannot query players: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		var createdAt any
		if err := rows.Scan(&u.Username, &u.HighScore, &createdAt); err != nil {
			return nil, fmt.Errorf("auth: cannot scan row: %w", err)
		}
		u.CreatedAt = parseTimestamp(createdAt)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("auth: row iteration error: %w", err)
	}

	return users, nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store implements the game's Gateway
var _ breakout.Gateway = (*Store)(nil)
