package stats

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteConfig configures a SQLite-backed Store.
type SQLiteConfig struct {
	// Path is the sqlite file path, e.g. "~/.promptcmd/stats.db". Use
	// "file::memory:?cache=shared" for an in-process database.
	Path string
	// Table is the invocation-log table name. Defaults to "invocations".
	Table string
}

// SQLiteStore is a modernc.org/sqlite-backed Store. SQLite allows only one
// writer at a time, so the pool is capped to a single connection (§5).
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// NewSQLite opens (creating if absent) the SQLite database at cfg.Path and
// ensures its invocation table exists.
func NewSQLite(ctx context.Context, cfg SQLiteConfig) (*SQLiteStore, error) {
	table := cfg.Table
	if table == "" {
		table = "invocations"
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("stats: open %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, table: table}
	if err := s.ensureTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) ensureTable(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		promptname TEXT NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		variant TEXT,
		"group" TEXT,
		prompt_tokens INTEGER NOT NULL,
		completion_tokens INTEGER NOT NULL,
		result TEXT,
		success INTEGER NOT NULL,
		time_taken_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`, s.table)
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// Log implements Store.
func (s *SQLiteStore) Log(ctx context.Context, rec Record) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (promptname, provider, model, variant, "group", prompt_tokens,
			completion_tokens, result, success, time_taken_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, s.table)
	created := rec.Created
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, query,
		rec.PromptName, rec.Provider, rec.Model, nullable(rec.Variant), nullable(rec.Group),
		rec.PromptTokens, rec.CompletionTokens, rec.Result, rec.Success, rec.TimeTakenMillis,
		created.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("stats: log: %w", err)
	}
	return nil
}

// All implements Store.
func (s *SQLiteStore) All(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(
		`SELECT promptname, provider, model, variant, "group", prompt_tokens,
			completion_tokens, result, success, time_taken_ms, created_at
		FROM %s ORDER BY created_at ASC, id ASC`, s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats: all: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Summary implements Store: aggregates logged Records into (provider,
// model) rows, matching filter's non-nil dimensions (§4.9).
func (s *SQLiteStore) Summary(ctx context.Context, filter Filter) ([]Summary, error) {
	where, args := buildWhere(filter)
	query := fmt.Sprintf(
		`SELECT provider, model, COUNT(*), COALESCE(SUM(prompt_tokens),0),
			COALESCE(SUM(completion_tokens),0),
			COALESCE(SUM(completion_tokens) * 1000.0 / NULLIF(SUM(time_taken_ms), 0), 0)
		FROM %s %s GROUP BY provider, model`, s.table, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats: summary: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var tps float64
		if err := rows.Scan(&sum.Provider, &sum.Model, &sum.Count, &sum.PromptTokens, &sum.CompletionTokens, &tps); err != nil {
			return nil, fmt.Errorf("stats: summary scan: %w", err)
		}
		sum.TPS = uint32(tps)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func buildWhere(f Filter) (string, []any) {
	var clauses []string
	var args []any
	add := func(col string, v *string) {
		if v != nil {
			clauses = append(clauses, col+" = ?")
			args = append(args, *v)
		}
	}
	add("provider", f.Provider)
	add("model", f.Model)
	add("variant", f.Variant)
	add(`"group"`, f.Group)
	if f.Success != nil {
		clauses = append(clauses, "success = ?")
		args = append(args, *f.Success)
	}
	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		var r Record
		var variant, group sql.NullString
		var created string
		if err := rows.Scan(&r.PromptName, &r.Provider, &r.Model, &variant, &group,
			&r.PromptTokens, &r.CompletionTokens, &r.Result, &r.Success, &r.TimeTakenMillis, &created); err != nil {
			return nil, fmt.Errorf("stats: scan: %w", err)
		}
		r.Variant = variant.String
		r.Group = group.String
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			r.Created = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

var _ Store = (*SQLiteStore)(nil)
