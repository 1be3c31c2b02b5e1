package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/teachthetutor/backend/internal/domain/mastery"
)

const schema = `
CREATE TABLE IF NOT EXISTS mastery (
    concept_id        TEXT PRIMARY KEY,
    times_explained   INTEGER NOT NULL DEFAULT 0,
    times_quizzed     INTEGER NOT NULL DEFAULT 0,
    times_taught_back INTEGER NOT NULL DEFAULT 0,
    last_score        INTEGER,
    avg_score         REAL
);
`

// SQLiteStore is the durable mastery store. SQLite's journaling gives the
// crash guarantee the contract asks for: a reader observes either the
// pre- or post-upsert state, never a torn record.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (or creates) the mastery database at path. If an
// existing file turns out not to be a usable database, it is renamed
// aside and a fresh one is created. Corruption must never block a
// session; learners just lose old history.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := open(path)
	if err != nil {
		quarantined, qErr := quarantine(path)
		if qErr != nil {
			return nil, fmt.Errorf("open mastery db %s: %w (quarantine also failed: %v)", path, err, qErr)
		}
		db, err = open(path)
		if err != nil {
			return nil, fmt.Errorf("open mastery db %s after quarantining %s: %w", path, quarantined, err)
		}
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// quarantine renames the unusable database file aside so the next open
// starts clean. Returns the new name.
func quarantine(path string) (string, error) {
	dest := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if err := os.Rename(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadAll returns every mastery record keyed by concept id. An empty
// store yields an empty map, not an error.
func (s *SQLiteStore) LoadAll(ctx context.Context) (map[string]mastery.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT concept_id, times_explained, times_quizzed, times_taught_back, last_score, avg_score
		FROM mastery`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]mastery.Record)
	for rows.Next() {
		var (
			id   string
			rec  mastery.Record
			last sql.NullInt64
			avg  sql.NullFloat64
		)
		if err := rows.Scan(&id, &rec.TimesExplained, &rec.TimesQuizzed, &rec.TimesTaughtBack, &last, &avg); err != nil {
			return nil, err
		}
		if last.Valid {
			v := int(last.Int64)
			rec.LastScore = &v
		}
		if avg.Valid {
			v := avg.Float64
			rec.AvgScore = &v
		}
		records[id] = rec
	}
	return records, rows.Err()
}

// Get returns the record for one concept, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, conceptID string) (mastery.Record, error) {
	var (
		rec  mastery.Record
		last sql.NullInt64
		avg  sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT times_explained, times_quizzed, times_taught_back, last_score, avg_score
		FROM mastery WHERE concept_id = ?`, conceptID).
		Scan(&rec.TimesExplained, &rec.TimesQuizzed, &rec.TimesTaughtBack, &last, &avg)
	if err == sql.ErrNoRows {
		return mastery.Record{}, ErrNotFound
	}
	if err != nil {
		return mastery.Record{}, err
	}
	if last.Valid {
		v := int(last.Int64)
		rec.LastScore = &v
	}
	if avg.Valid {
		v := avg.Float64
		rec.AvgScore = &v
	}
	return rec, nil
}

// Upsert writes the full record for a concept in a single statement.
// Last writer wins for the same key; upserts for different keys never
// lose each other.
func (s *SQLiteStore) Upsert(ctx context.Context, conceptID string, rec mastery.Record) error {
	var last sql.NullInt64
	if rec.LastScore != nil {
		last = sql.NullInt64{Int64: int64(*rec.LastScore), Valid: true}
	}
	var avg sql.NullFloat64
	if rec.AvgScore != nil {
		avg = sql.NullFloat64{Float64: *rec.AvgScore, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mastery (concept_id, times_explained, times_quizzed, times_taught_back, last_score, avg_score)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(concept_id) DO UPDATE SET
			times_explained   = excluded.times_explained,
			times_quizzed     = excluded.times_quizzed,
			times_taught_back = excluded.times_taught_back,
			last_score        = excluded.last_score,
			avg_score         = excluded.avg_score`,
		conceptID, rec.TimesExplained, rec.TimesQuizzed, rec.TimesTaughtBack, last, avg)
	return err
}
