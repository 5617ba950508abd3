package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

// ListWorkBehaviorCategories returns all categories sorted by display order.
func (s *Store) ListWorkBehaviorCategories(ctx context.Context) ([]storage.WorkBehaviorCategory, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, label, choice_positive, choice_negative, position FROM work_behavior_categories ORDER BY position, rowid")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []storage.WorkBehaviorCategory
	for rows.Next() {
		var category storage.WorkBehaviorCategory
		var positive, negative string
		if err := rows.Scan(&category.ID, &category.Label, &positive, &negative, &category.Order); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		category.Choices = []string{positive, negative}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// CreateWorkBehaviorCategory appends a new category at the end of the list.
func (s *Store) CreateWorkBehaviorCategory(ctx context.Context, label, positive, negative string) (storage.WorkBehaviorCategory, error) {
	if err := s.ready(); err != nil {
		return storage.WorkBehaviorCategory{}, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("label is required")
	}
	if strings.TrimSpace(positive) == "" || strings.TrimSpace(negative) == "" {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("both choices are required")
	}

	categoryID, err := newID()
	if err != nil {
		return storage.WorkBehaviorCategory{}, err
	}
	position, err := s.nextPosition(ctx, "work_behavior_categories")
	if err != nil {
		return storage.WorkBehaviorCategory{}, err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO work_behavior_categories (id, label, choice_positive, choice_negative, position) VALUES (?, ?, ?, ?, ?)",
		categoryID, label, positive, negative, position); err != nil {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("insert category: %w", err)
	}
	return storage.WorkBehaviorCategory{
		ID:      categoryID,
		Label:   label,
		Choices: []string{positive, negative},
		Order:   position,
	}, nil
}

// UpdateWorkBehaviorCategory replaces a category's label and choices.
func (s *Store) UpdateWorkBehaviorCategory(ctx context.Context, id string, label, positive, negative string) (storage.WorkBehaviorCategory, error) {
	if err := s.ready(); err != nil {
		return storage.WorkBehaviorCategory{}, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("label is required")
	}
	if strings.TrimSpace(positive) == "" || strings.TrimSpace(negative) == "" {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("both choices are required")
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"UPDATE work_behavior_categories SET label = ?, choice_positive = ?, choice_negative = ? WHERE id = ?",
		label, positive, negative, id)
	if err != nil {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("update category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("check update result: %w", err)
	}
	if affected == 0 {
		return storage.WorkBehaviorCategory{}, storage.ErrNotFound
	}

	var position int
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT position FROM work_behavior_categories WHERE id = ?", id)
	if err := row.Scan(&position); err != nil {
		return storage.WorkBehaviorCategory{}, fmt.Errorf("get category position: %w", err)
	}
	return storage.WorkBehaviorCategory{
		ID:      id,
		Label:   label,
		Choices: []string{positive, negative},
		Order:   position,
	}, nil
}

// DeleteWorkBehaviorCategory removes one category.
func (s *Store) DeleteWorkBehaviorCategory(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM work_behavior_categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
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

// MoveWorkBehaviorCategoryUp swaps the category with its predecessor.
func (s *Store) MoveWorkBehaviorCategoryUp(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.moveAdjacent(ctx, "work_behavior_categories", "", nil, id, -1)
}

// MoveWorkBehaviorCategoryDown swaps the category with its successor.
func (s *Store) MoveWorkBehaviorCategoryDown(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.moveAdjacent(ctx, "work_behavior_categories", "", nil, id, +1)
}
