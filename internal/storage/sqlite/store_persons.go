package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

// ListPersons returns all persons sorted by display order.
func (s *Store) ListPersons(ctx context.Context) ([]storage.Person, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, name, position FROM persons ORDER BY position, rowid")
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var persons []storage.Person
	for rows.Next() {
		var person storage.Person
		if err := rows.Scan(&person.ID, &person.Name, &person.Order); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return persons, nil
}

// GetPerson returns one person by id.
func (s *Store) GetPerson(ctx context.Context, id string) (storage.Person, error) {
	if err := s.ready(); err != nil {
		return storage.Person{}, err
	}
	var person storage.Person
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, name, position FROM persons WHERE id = ?", id)
	if err := row.Scan(&person.ID, &person.Name, &person.Order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Person{}, storage.ErrNotFound
		}
		return storage.Person{}, fmt.Errorf("get person: %w", err)
	}
	return person, nil
}

// CreatePerson appends a new person at the end of the list.
func (s *Store) CreatePerson(ctx context.Context, name string) (storage.Person, error) {
	if err := s.ready(); err != nil {
		return storage.Person{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Person{}, fmt.Errorf("name is required")
	}

	personID, err := newID()
	if err != nil {
		return storage.Person{}, err
	}
	position, err := s.nextPosition(ctx, "persons")
	if err != nil {
		return storage.Person{}, err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO persons (id, name, position) VALUES (?, ?, ?)",
		personID, name, position); err != nil {
		return storage.Person{}, fmt.Errorf("insert person: %w", err)
	}
	return storage.Person{ID: personID, Name: name, Order: position}, nil
}

// RenamePerson updates a person's name.
func (s *Store) RenamePerson(ctx context.Context, id string, name string) (storage.Person, error) {
	if err := s.ready(); err != nil {
		return storage.Person{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Person{}, fmt.Errorf("name is required")
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"UPDATE persons SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return storage.Person{}, fmt.Errorf("update person: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.Person{}, fmt.Errorf("check update result: %w", err)
	}
	if affected == 0 {
		return storage.Person{}, storage.ErrNotFound
	}
	return s.GetPerson(ctx, id)
}

// DeletePerson removes a person and cascades to their goals.
func (s *Store) DeletePerson(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM persons WHERE id = ?", id)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete person: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("check delete result: %w", err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return storage.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE person_id = ?", id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete person goals: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// MovePersonUp swaps the person with its predecessor.
func (s *Store) MovePersonUp(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.moveAdjacent(ctx, "persons", "", nil, id, -1)
}

// MovePersonDown swaps the person with its successor.
func (s *Store) MovePersonDown(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.moveAdjacent(ctx, "persons", "", nil, id, +1)
}
