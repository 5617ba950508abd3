package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const documentingPersonKey = "documenting_person"

// DocumentingPerson returns the stored documenting-person name, or an empty
// string when none has been set.
func (s *Store) DocumentingPerson(ctx context.Context) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	var value string
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", documentingPersonKey)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get documenting person: %w", err)
	}
	return value, nil
}

// SetDocumentingPerson stores the documenting-person name.
func (s *Store) SetDocumentingPerson(ctx context.Context, name string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		documentingPersonKey, name); err != nil {
		return fmt.Errorf("set documenting person: %w", err)
	}
	return nil
}
