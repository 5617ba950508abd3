package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

func scanActivities(rows *sql.Rows) ([]storage.Activity, error) {
	var activities []storage.Activity
	for rows.Next() {
		var activity storage.Activity
		if err := rows.Scan(&activity.ID, &activity.AreaID, &activity.Title,
			&activity.Description, &activity.Measure, &activity.Order); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}

// ListActivities returns every activity sorted by display order.
func (s *Store) ListActivities(ctx context.Context) ([]storage.Activity, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, area_id, title, description, measure, position FROM activities ORDER BY position, rowid")
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

// ListActivitiesByArea returns the activities of one area sorted by display order.
func (s *Store) ListActivitiesByArea(ctx context.Context, areaID string) ([]storage.Activity, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, area_id, title, description, measure, position FROM activities WHERE area_id = ? ORDER BY position, rowid",
		areaID)
	if err != nil {
		return nil, fmt.Errorf("list area activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

// GetActivity returns one activity by id.
func (s *Store) GetActivity(ctx context.Context, id string) (storage.Activity, error) {
	if err := s.ready(); err != nil {
		return storage.Activity{}, err
	}
	var activity storage.Activity
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, area_id, title, description, measure, position FROM activities WHERE id = ?", id)
	if err := row.Scan(&activity.ID, &activity.AreaID, &activity.Title,
		&activity.Description, &activity.Measure, &activity.Order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Activity{}, storage.ErrNotFound
		}
		return storage.Activity{}, fmt.Errorf("get activity: %w", err)
	}
	return activity, nil
}

// CreateActivity appends a new activity. ID and Order on the input are ignored.
func (s *Store) CreateActivity(ctx context.Context, activity storage.Activity) (storage.Activity, error) {
	if err := s.ready(); err != nil {
		return storage.Activity{}, err
	}
	activity.Title = strings.TrimSpace(activity.Title)
	if activity.Title == "" {
		return storage.Activity{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(activity.AreaID) == "" {
		return storage.Activity{}, fmt.Errorf("area id is required")
	}

	activityID, err := newID()
	if err != nil {
		return storage.Activity{}, err
	}
	position, err := s.nextPosition(ctx, "activities")
	if err != nil {
		return storage.Activity{}, err
	}
	activity.ID = activityID
	activity.Order = position
	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO activities (id, area_id, title, description, measure, position) VALUES (?, ?, ?, ?, ?, ?)",
		activity.ID, activity.AreaID, activity.Title, activity.Description, activity.Measure, activity.Order); err != nil {
		return storage.Activity{}, fmt.Errorf("insert activity: %w", err)
	}
	return activity, nil
}

// UpdateActivity applies a partial change to an activity.
func (s *Store) UpdateActivity(ctx context.Context, id string, update storage.ActivityUpdate) (storage.Activity, error) {
	if err := s.ready(); err != nil {
		return storage.Activity{}, err
	}
	activity, err := s.GetActivity(ctx, id)
	if err != nil {
		return storage.Activity{}, err
	}
	if update.AreaID != nil {
		activity.AreaID = *update.AreaID
	}
	if update.Title != nil {
		activity.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		activity.Description = *update.Description
	}
	if update.Measure != nil {
		activity.Measure = *update.Measure
	}
	if activity.Title == "" {
		return storage.Activity{}, fmt.Errorf("title is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		"UPDATE activities SET area_id = ?, title = ?, description = ?, measure = ? WHERE id = ?",
		activity.AreaID, activity.Title, activity.Description, activity.Measure, id); err != nil {
		return storage.Activity{}, fmt.Errorf("update activity: %w", err)
	}
	return activity, nil
}

// DeleteActivity removes one activity.
func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// MoveActivityUp swaps the activity with its predecessor in the same area.
func (s *Store) MoveActivityUp(ctx context.Context, id string) (bool, error) {
	return s.moveActivity(ctx, id, -1)
}

// MoveActivityDown swaps the activity with its successor in the same area.
func (s *Store) MoveActivityDown(ctx context.Context, id string) (bool, error) {
	return s.moveActivity(ctx, id, +1)
}

func (s *Store) moveActivity(ctx context.Context, id string, delta int) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	var areaID string
	row := s.sqlDB.QueryRowContext(ctx, "SELECT area_id FROM activities WHERE id = ?", id)
	if err := row.Scan(&areaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get activity area: %w", err)
	}
	return s.moveAdjacent(ctx, "activities", "area_id = ?", []any{areaID}, id, delta)
}
