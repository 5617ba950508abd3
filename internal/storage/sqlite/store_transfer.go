package sqlite

import (
	"context"
	"fmt"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

// ExportSnapshot reads every collection in display order.
func (s *Store) ExportSnapshot(ctx context.Context) (storage.Snapshot, error) {
	if err := s.ready(); err != nil {
		return storage.Snapshot{}, err
	}
	var snapshot storage.Snapshot
	var err error
	if snapshot.Persons, err = s.ListPersons(ctx); err != nil {
		return storage.Snapshot{}, err
	}
	if snapshot.Categories, err = s.ListWorkBehaviorCategories(ctx); err != nil {
		return storage.Snapshot{}, err
	}
	if snapshot.Areas, err = s.ListActivityAreas(ctx); err != nil {
		return storage.Snapshot{}, err
	}
	if snapshot.Activities, err = s.ListActivities(ctx); err != nil {
		return storage.Snapshot{}, err
	}
	if snapshot.Goals, err = s.ListGoals(ctx); err != nil {
		return storage.Snapshot{}, err
	}
	return snapshot, nil
}

// ImportSnapshot replaces every collection with the snapshot contents in one
// transaction. Records keep the ids and order they carry in the snapshot.
func (s *Store) ImportSnapshot(ctx context.Context, snapshot storage.Snapshot) error {
	if err := s.ready(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import transaction: %w", err)
	}
	for _, table := range orderedTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, person := range snapshot.Persons {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO persons (id, name, position) VALUES (?, ?, ?)",
			person.ID, person.Name, person.Order); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("import person: %w", err)
		}
	}
	for _, category := range snapshot.Categories {
		positive, negative := "", ""
		if len(category.Choices) > 0 {
			positive = category.Choices[0]
		}
		if len(category.Choices) > 1 {
			negative = category.Choices[1]
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO work_behavior_categories (id, label, choice_positive, choice_negative, position) VALUES (?, ?, ?, ?, ?)",
			category.ID, category.Label, positive, negative, category.Order); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("import category: %w", err)
		}
	}
	for _, area := range snapshot.Areas {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO activity_areas (id, name, position) VALUES (?, ?, ?)",
			area.ID, area.Name, area.Order); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("import activity area: %w", err)
		}
	}
	for _, activity := range snapshot.Activities {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO activities (id, area_id, title, description, measure, position) VALUES (?, ?, ?, ?, ?, ?)",
			activity.ID, activity.AreaID, activity.Title, activity.Description,
			activity.Measure, activity.Order); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("import activity: %w", err)
		}
	}
	for _, goal := range snapshot.Goals {
		var completedAt any
		if goal.CompletedAt != nil {
			completedAt = toMillis(*goal.CompletedAt)
		}
		status := goal.Status
		if status == "" {
			status = storage.GoalStatusOpen
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO goals (id, person_id, title, description, measure, due_date, status, position, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			goal.ID, goal.PersonID, goal.Title, goal.Description, goal.Measure,
			goal.DueDate, string(status), goal.Order, completedAt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("import goal: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}
