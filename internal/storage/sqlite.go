// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one recorded match.
type MatchRecord struct {
	ID             int64
	MatchID        string
	Seed           int64
	Frontend       string
	Rounds         int
	EndReason      string // Empty while the match is running
	HumanShots     int
	AutomatedShots int
	CreatedAt      time.Time
	EndedAt        time.Time // Zero while the match is running
}

// ShotRecord is one accepted shot of a match.
type ShotRecord struct {
	MatchID string
	Seq     int // 1-based order within the match
	Side    string
	X, Y    int
	Hit     bool
	Sunk    bool
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

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			frontend TEXT NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME
		);

		CREATE TABLE IF NOT EXISTS shots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL REFERENCES matches(match_id),
			seq INTEGER NOT NULL,
			side TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			hit INTEGER NOT NULL,
			sunk INTEGER NOT NULL,
			UNIQUE (match_id, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_shots_match_id ON shots(match_id);
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

// CreateMatch records the start of a match.
func (s *Store) CreateMatch(matchID string, seed int64, frontend string) error {
	_, err := s.db.Exec(
		"INSERT INTO matches (match_id, seed, frontend) VALUES (?, ?, ?)",
		matchID, seed, frontend,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot create match: %w", err)
	}
	return nil
}

// RecordShot appends an accepted shot to a match.
func (s *Store) RecordShot(shot ShotRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO shots (match_id, seq, side, x, y, hit, sunk)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		shot.MatchID, shot.Seq, shot.Side, shot.X, shot.Y, shot.Hit, shot.Sunk,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record shot: %w", err)
	}
	return nil
}

// FinishMatch stores the round count and why the match stopped.
func (s *Store) FinishMatch(matchID string, rounds int, reason string) error {
	res, err := s.db.Exec(
		`UPDATE matches
		 SET rounds = ?, end_reason = ?, ended_at = CURRENT_TIMESTAMP
		 WHERE match_id = ?`,
		rounds, reason, matchID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish match: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: unknown match %q", matchID)
	}
	return nil
}

const matchColumns = `
	m.id, m.match_id, m.seed, m.frontend, m.rounds, m.end_reason,
	(SELECT COUNT(*) FROM shots s WHERE s.match_id = m.match_id AND s.side = 'human'),
	(SELECT COUNT(*) FROM shots s WHERE s.match_id = m.match_id AND s.side = 'automated'),
	m.created_at, m.ended_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var (
		m                  MatchRecord
		endReason          sql.NullString
		createdAt, endedAt any
	)
	err := row.Scan(
		&m.ID,
		&m.MatchID,
		&m.Seed,
		&m.Frontend,
		&m.Rounds,
		&endReason,
		&m.HumanShots,
		&m.AutomatedShots,
		&createdAt,
		&endedAt,
	)
	if err != nil {
		return m, err
	}
	if endReason.Valid {
		m.EndReason = endReason.String
	}
	m.CreatedAt = parseTime(createdAt)
	m.EndedAt = parseTime(endedAt)
	return m, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if there is none.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+`
		 FROM matches m
		 WHERE m.match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches m
		 ORDER BY m.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// MatchShots retrieves the shots of a match in firing order.
func (s *Store) MatchShots(matchID string) ([]ShotRecord, error) {
	rows, err := s.db.Query(
		`SELECT match_id, seq, side, x, y, hit, sunk
		 FROM shots
		 WHERE match_id = ?
		 ORDER BY seq`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shots: %w", err)
	}
	defer rows.Close()

	var shots []ShotRecord
	for rows.Next() {
		var shot ShotRecord
		if err := rows.Scan(&shot.MatchID, &shot.Seq, &shot.Side, &shot.X, &shot.Y, &shot.Hit, &shot.Sunk); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		shots = append(shots, shot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return shots, nil
}

// parseTime converts a DATETIME column, which the driver may return as
// time.Time or string. Anything else yields the zero time.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
