package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

func scanGoals(rows *sql.Rows) ([]storage.Goal, error) {
	var goals []storage.Goal
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

func scanGoal(scan func(...any) error) (storage.Goal, error) {
	var goal storage.Goal
	var status string
	var completedAt sql.NullInt64
	if err := scan(&goal.ID, &goal.PersonID, &goal.Title, &goal.Description,
		&goal.Measure, &goal.DueDate, &status, &goal.Order, &completedAt); err != nil {
		return storage.Goal{}, fmt.Errorf("scan goal: %w", err)
	}
	goal.Status = storage.GoalStatus(status)
	if completedAt.Valid {
		stamp := fromMillis(completedAt.Int64)
		goal.CompletedAt = &stamp
	}
	return goal, nil
}

const goalColumns = "id, person_id, title, description, measure, due_date, status, position, completed_at"

// ListGoals returns every goal sorted by display order.
func (s *Store) ListGoals(ctx context.Context) ([]storage.Goal, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+goalColumns+" FROM goals ORDER BY position, rowid")
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()
	return scanGoals(rows)
}

// ListGoalsByPerson returns the goals of one person sorted by display order.
func (s *Store) ListGoalsByPerson(ctx context.Context, personID string) ([]storage.Goal, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE person_id = ? ORDER BY position, rowid", personID)
	if err != nil {
		return nil, fmt.Errorf("list person goals: %w", err)
	}
	defer rows.Close()
	return scanGoals(rows)
}

// CreateGoal appends a new goal. ID, Order and CompletedAt on the input are
// ignored; new goals always start open.
func (s *Store) CreateGoal(ctx context.Context, goal storage.Goal) (storage.Goal, error) {
	if err := s.ready(); err != nil {
		return storage.Goal{}, err
	}
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return storage.Goal{}, fmt.Errorf("title is required")
	}

	goalID, err := newID()
	if err != nil {
		return storage.Goal{}, err
	}
	position, err := s.nextPosition(ctx, "goals")
	if err != nil {
		return storage.Goal{}, err
	}
	goal.ID = goalID
	goal.Order = position
	goal.Status = storage.GoalStatusOpen
	goal.CompletedAt = nil
	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO goals (id, person_id, title, description, measure, due_date, status, position, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)",
		goal.ID, goal.PersonID, goal.Title, goal.Description, goal.Measure,
		goal.DueDate, string(goal.Status), goal.Order); err != nil {
		return storage.Goal{}, fmt.Errorf("insert goal: %w", err)
	}
	return goal, nil
}

// UpdateGoal applies a partial change to a goal. Completing an open goal
// stamps CompletedAt; setting the status back to open clears it.
func (s *Store) UpdateGoal(ctx context.Context, id string, update storage.GoalUpdate) (storage.Goal, error) {
	if err := s.ready(); err != nil {
		return storage.Goal{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE id = ?", id)
	goal, err := scanGoal(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Goal{}, storage.ErrNotFound
		}
		return storage.Goal{}, err
	}

	if update.PersonID != nil {
		goal.PersonID = *update.PersonID
	}
	if update.Title != nil {
		goal.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.Measure != nil {
		goal.Measure = *update.Measure
	}
	if update.DueDate != nil {
		goal.DueDate = *update.DueDate
	}
	if update.Status != nil && *update.Status != goal.Status {
		switch *update.Status {
		case storage.GoalStatusCompleted:
			stamp := time.Now().UTC()
			goal.CompletedAt = &stamp
		case storage.GoalStatusOpen:
			goal.CompletedAt = nil
		default:
			return storage.Goal{}, fmt.Errorf("unknown goal status %q", *update.Status)
		}
		goal.Status = *update.Status
	}
	if goal.Title == "" {
		return storage.Goal{}, fmt.Errorf("title is required")
	}

	var completedAt any
	if goal.CompletedAt != nil {
		completedAt = toMillis(*goal.CompletedAt)
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		"UPDATE goals SET person_id = ?, title = ?, description = ?, measure = ?, due_date = ?, status = ?, completed_at = ? WHERE id = ?",
		goal.PersonID, goal.Title, goal.Description, goal.Measure,
		goal.DueDate, string(goal.Status), completedAt, id); err != nil {
		return storage.Goal{}, fmt.Errorf("update goal: %w", err)
	}
	return goal, nil
}

// DeleteGoal removes one goal.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
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
