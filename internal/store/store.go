package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Ryanditko/Prova-RPA/internal/reading"
)

func init() {
	// modernc registers under "sqlite", which sqlx has no bind type for.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Error marks a storage failure (table creation, write, query). The CLI maps
// it to its own exit code.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Store owns the local readings table. It is an unbounded append log: rows
// are only ever inserted and listed by recency, never updated or deleted.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if absent) the table file and ensures the schema
// exists. Idempotent, safe to call on every run.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, &Error{Op: "creating data dir", Err: err}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, &Error{Op: "opening db", Err: err}
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS dados_clima (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			city               TEXT NOT NULL,
			country            TEXT,
			temperature_c      REAL,
			feels_like_c       REAL,
			temp_min_c         REAL,
			temp_max_c         REAL,
			pressure_hpa       INTEGER,
			humidity_pct       INTEGER,
			description        TEXT,
			wind_speed_ms      REAL,
			cloud_cover_pct    INTEGER,
			observed_at_local  TEXT,
			provider_timestamp INTEGER
		)
	`)
	if err != nil {
		return &Error{Op: "initializing schema", Err: err}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append inserts one reading. Each insert commits immediately; there is no
// batching across readings.
func (s *Store) Append(r reading.Reading) error {
	_, err := s.db.NamedExec(`
		INSERT INTO dados_clima (
			city, country, temperature_c, feels_like_c, temp_min_c, temp_max_c,
			pressure_hpa, humidity_pct, description, wind_speed_ms,
			cloud_cover_pct, observed_at_local, provider_timestamp
		) VALUES (
			:city, :country, :temperature_c, :feels_like_c, :temp_min_c, :temp_max_c,
			:pressure_hpa, :humidity_pct, :description, :wind_speed_ms,
			:cloud_cover_pct, :observed_at_local, :provider_timestamp
		)
	`, r)
	if err != nil {
		return &Error{Op: fmt.Sprintf("inserting reading for %q", r.City), Err: err}
	}
	return nil
}

// RecentReading is the projection returned by Recent.
type RecentReading struct {
	City         string   `db:"city"`
	TemperatureC *float64 `db:"temperature_c"`
	Description  *string  `db:"description"`
	ObservedAt   string   `db:"observed_at_local"`
}

// Recent returns at most limit rows, newest insert first (by primary key,
// not by observation time). Fewer rows than limit is not an error.
func (s *Store) Recent(limit int) ([]RecentReading, error) {
	if limit <= 0 {
		return []RecentReading{}, nil
	}

	rows := []RecentReading{}
	err := s.db.Select(&rows, `
		SELECT city, temperature_c, description, observed_at_local
		FROM dados_clima
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, &Error{Op: "querying recent readings", Err: err}
	}
	return rows, nil
}

// Count returns the total number of stored readings.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM dados_clima`); err != nil {
		return 0, &Error{Op: "counting readings", Err: err}
	}
	return n, nil
}

// Stats returns the row count and the table file size on disk.
func (s *Store) Stats(dbPath string) (count int64, size int64, err error) {
	count, err = s.Count()
	if err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return 0, 0, &Error{Op: "reading db file size", Err: err}
	}
	return count, info.Size(), nil
}
