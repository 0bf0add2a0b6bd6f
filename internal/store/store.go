// Package store handles SQLite persistence of the transmission log.
// The log is history for `chaplet stats`; it is never read back to resume
// a cycle.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quisutdeus/chaplet/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the transmission log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cycles (
			id INTEGER PRIMARY KEY,
			number INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			language TEXT NOT NULL,
			segments INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS segments (
			id INTEGER PRIMARY KEY,
			sent_at TEXT NOT NULL,
			cycle INTEGER NOT NULL,
			label TEXT NOT NULL,
			language TEXT NOT NULL,
			chars INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_ended_at ON cycles(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_segments_sent_at ON segments(sent_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertCycle stores a completed cycle.
func (s *Store) InsertCycle(ctx context.Context, rec model.CycleRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO cycles (number, started_at, ended_at, language, segments, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Number,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Language,
		rec.Segments,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertSegment stores one transmitted segment.
func (s *Store) InsertSegment(ctx context.Context, rec model.SegmentRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO segments (sent_at, cycle, label, language, chars, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SentAt.Format(time.RFC3339Nano),
		rec.Cycle,
		rec.Label,
		rec.Language,
		rec.Chars,
		rec.DurationMs,
	)
	return err
}

// ListCycles returns logged cycles filtered by stats config, oldest first.
func (s *Store) ListCycles(ctx context.Context, cfg model.StatsConfig) ([]model.CycleAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Language != "" {
		clauses = append(clauses, "language = ?")
		args = append(args, cfg.Language)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, number, ended_at, language, segments, duration_ms
		FROM cycles
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var cycles []model.CycleAggregate
	for rows.Next() {
		var agg model.CycleAggregate
		var endedAt string
		if err := rows.Scan(&agg.ID, &agg.Number, &endedAt, &agg.Language, &agg.Segments, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		cycles = append(cycles, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cycles, nil
}

// SummarizeSegments aggregates the segment log under the same filters.
func (s *Store) SummarizeSegments(ctx context.Context, cfg model.StatsConfig) (model.Totals, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Language != "" {
		clauses = append(clauses, "language = ?")
		args = append(args, cfg.Language)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "sent_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT COUNT(*), COALESCE(SUM(chars), 0), COALESCE(SUM(duration_ms), 0)
		FROM segments
		WHERE %s`, strings.Join(clauses, " AND "))

	var totals model.Totals
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&totals.Segments, &totals.Chars, &totals.DurationMs); err != nil {
		return model.Totals{}, err
	}
	return totals, nil
}

// CountByLanguage reports how many segments were keyed per language.
func (s *Store) CountByLanguage(ctx context.Context, cfg model.StatsConfig) (map[string]int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "sent_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT language, COUNT(*)
		FROM segments
		WHERE %s
		GROUP BY language`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	counts := map[string]int{}
	for rows.Next() {
		var lang string
		var n int
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, err
		}
		counts[lang] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
