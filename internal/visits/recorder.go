// Package visits records privacy-conscious page visits in sqlite. Client IPs
// are never stored: each is replaced by a salted, truncated SHA-256 digest
// whose salt lives only for the life of the process.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Visit struct {
	HashedIP  string
	UserAgent string
	Path      string
	At        time.Time
}

type Stats struct {
	Total  int64 `json:"total"`
	Unique int64 `json:"unique"`
	Today  int64 `json:"today"`
}

type Recorder struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		visited_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS visits_visited_at ON visits (visited_at)`,
}

// Open opens (creating if needed) the sqlite database at path. ":memory:"
// gives a private in-memory database.
func Open(ctx context.Context, path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visits db: %w", err)
	}
	// One connection keeps :memory: databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create visits schema: %w", err)
		}
	}

	salt, err := newSalt()
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Recorder{db: db, salt: salt, now: time.Now}, nil
}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (r *Recorder) Close() error {
	return r.db.Close()
}

// HashIP is stable for a given ip within one process.
func (r *Recorder) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + r.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (r *Recorder) Record(ctx context.Context, v Visit) error {
	at := v.At
	if at.IsZero() {
		at = r.now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, at.UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (r *Recorder) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&s.Total); err != nil {
		return Stats{}, fmt.Errorf("count visits: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`).Scan(&s.Unique); err != nil {
		return Stats{}, fmt.Errorf("count unique visitors: %w", err)
	}

	now := r.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, startOfDay.Unix()).Scan(&s.Today); err != nil {
		return Stats{}, fmt.Errorf("count visits today: %w", err)
	}
	return s, nil
}

// Cleanup deletes visits older than months and returns how many were removed.
func (r *Recorder) Cleanup(ctx context.Context, months int) (int64, error) {
	cutoff := r.now().UTC().AddDate(0, -months, 0)
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE visited_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	return n, nil
}
