// Package sqlite provides a SQLite-backed documentation storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hauswerk/dokuhilfe/internal/platform/id"
	sqlitemigrate "github.com/hauswerk/dokuhilfe/internal/platform/storage/sqlitemigrate"
	"github.com/hauswerk/dokuhilfe/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists documentation data in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// orderedTables lists every table carrying a position column, for the
// order-backfill pass at open time.
var orderedTables = []string{
	"persons",
	"activity_areas",
	"activities",
	"work_behavior_categories",
	"goals",
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite documentation store, applies embedded migrations and
// backfills missing position values once.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store := &Store{sqlDB: sqlDB}
	for _, table := range orderedTables {
		if err := store.backfillPositions(context.Background(), table); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("backfill %s positions: %w", table, err)
		}
	}
	return store, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// backfillPositions assigns positions to rows that have none, preserving the
// current on-disk order. Tables without NULL positions are left untouched,
// so repeated opens are no-ops.
func (s *Store) backfillPositions(ctx context.Context, table string) error {
	var missing int
	row := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE position IS NULL")
	if err := row.Scan(&missing); err != nil {
		return fmt.Errorf("count unpositioned rows: %w", err)
	}
	if missing == 0 {
		return nil
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id FROM "+table+" ORDER BY (position IS NULL), position, rowid")
	if err != nil {
		return fmt.Errorf("list rows: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var rowID string
		if err := rows.Scan(&rowID); err != nil {
			return fmt.Errorf("scan row id: %w", err)
		}
		ids = append(ids, rowID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin backfill transaction: %w", err)
	}
	for index, rowID := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE "+table+" SET position = ? WHERE id = ?", index, rowID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("assign position: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit backfill: %w", err)
	}
	return nil
}

// nextPosition returns the position for a newly appended row.
func (s *Store) nextPosition(ctx context.Context, table string) (int, error) {
	var count int
	row := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return count, nil
}

// moveAdjacent swaps the position of the row with the given id and its
// neighbor within the filtered sequence. delta is -1 for up and +1 for down.
// It reports false without error when the row sits at the boundary or does
// not exist.
func (s *Store) moveAdjacent(ctx context.Context, table, whereSQL string, whereArgs []any, rowID string, delta int) (bool, error) {
	query := "SELECT id, position FROM " + table
	if whereSQL != "" {
		query += " WHERE " + whereSQL
	}
	query += " ORDER BY position, rowid"

	rows, err := s.sqlDB.QueryContext(ctx, query, whereArgs...)
	if err != nil {
		return false, fmt.Errorf("list ordered rows: %w", err)
	}
	defer rows.Close()

	type orderedRow struct {
		id       string
		position int
	}
	var ordered []orderedRow
	for rows.Next() {
		var entry orderedRow
		if err := rows.Scan(&entry.id, &entry.position); err != nil {
			return false, fmt.Errorf("scan ordered row: %w", err)
		}
		ordered = append(ordered, entry)
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("iterate ordered rows: %w", err)
	}

	index := -1
	for i, entry := range ordered {
		if entry.id == rowID {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}
	target := index + delta
	if target < 0 || target >= len(ordered) {
		return false, nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin move transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE "+table+" SET position = ? WHERE id = ?", ordered[target].position, ordered[index].id); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("reposition row: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE "+table+" SET position = ? WHERE id = ?", ordered[index].position, ordered[target].id); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("reposition neighbor: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit move: %w", err)
	}
	return true, nil
}

func newID() (string, error) {
	value, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return value, nil
}
