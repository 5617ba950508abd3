package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

// ListActivityAreas returns all areas sorted by display order.
func (s *Store) ListActivityAreas(ctx context.Context) ([]storage.ActivityArea, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, name, position FROM activity_areas ORDER BY position, rowid")
	if err != nil {
		return nil, fmt.Errorf("list activity areas: %w", err)
	}
	defer rows.Close()

	var areas []storage.ActivityArea
	for rows.Next() {
		var area storage.ActivityArea
		if err := rows.Scan(&area.ID, &area.Name, &area.Order); err != nil {
			return nil, fmt.Errorf("scan activity area: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity areas: %w", err)
	}
	return areas, nil
}

// CreateActivityArea appends a new area at the end of the list.
func (s *Store) CreateActivityArea(ctx context.Context, name string) (storage.ActivityArea, error) {
	if err := s.ready(); err != nil {
		return storage.ActivityArea{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.ActivityArea{}, fmt.Errorf("name is required")
	}

	areaID, err := newID()
	if err != nil {
		return storage.ActivityArea{}, err
	}
	position, err := s.nextPosition(ctx, "activity_areas")
	if err != nil {
		return storage.ActivityArea{}, err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO activity_areas (id, name, position) VALUES (?, ?, ?)",
		areaID, name, position); err != nil {
		return storage.ActivityArea{}, fmt.Errorf("insert activity area: %w", err)
	}
	return storage.ActivityArea{ID: areaID, Name: name, Order: position}, nil
}

// RenameActivityArea updates an area's name.
func (s *Store) RenameActivityArea(ctx context.Context, id string, name string) (storage.ActivityArea, error) {
	if err := s.ready(); err != nil {
		return storage.ActivityArea{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.ActivityArea{}, fmt.Errorf("name is required")
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"UPDATE activity_areas SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return storage.ActivityArea{}, fmt.Errorf("update activity area: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.ActivityArea{}, fmt.Errorf("check update result: %w", err)
	}
	if affected == 0 {
		return storage.ActivityArea{}, storage.ErrNotFound
	}

	var area storage.ActivityArea
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, name, position FROM activity_areas WHERE id = ?", id)
	if err := row.Scan(&area.ID, &area.Name, &area.Order); err != nil {
		return storage.ActivityArea{}, fmt.Errorf("get activity area: %w", err)
	}
	return area, nil
}

// DeleteActivityArea removes an area and cascades to its activities.
func (s *Store) DeleteActivityArea(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM activity_areas WHERE id = ?", id)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete activity area: %w", err)
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
	if _, err := tx.ExecContext(ctx, "DELETE FROM activities WHERE area_id = ?", id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete area activities: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// MoveActivityAreaUp swaps the area with its predecessor.
func (s *Store) MoveActivityAreaUp(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.moveAdjacent(ctx, "activity_areas", "", nil, id, -1)
}

// MoveActivityAreaDown swaps the area with its successor.
func (s *Store) MoveActivityAreaDown(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.moveAdjacent(ctx, "activity_areas", "", nil, id, +1)
}
