// Package storage defines persistence contracts for documentation data.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Person stores one documented (beschäftigte) person.
type Person struct {
	ID    string
	Name  string
	Order int
}

// ActivityArea stores one grouping of activities (Bereich).
type ActivityArea struct {
	ID    string
	Name  string
	Order int
}

// Activity stores one Tätigkeit within an area.
type Activity struct {
	ID          string
	AreaID      string
	Title       string
	Description string
	Measure     string
	Order       int
}

// WorkBehaviorCategory stores one behavior dimension. Choices always holds
// exactly two phrasings: the positive one first, the negative one second.
type WorkBehaviorCategory struct {
	ID      string
	Label   string
	Choices []string
	Order   int
}

// GoalStatus enumerates the lifecycle states of a goal.
type GoalStatus string

const (
	GoalStatusOpen      GoalStatus = "open"
	GoalStatusCompleted GoalStatus = "completed"
)

// Goal stores one Ziel for a person. DueDate uses YYYY-MM-DD or is empty.
type Goal struct {
	ID          string
	PersonID    string
	Title       string
	Description string
	Measure     string
	DueDate     string
	Status      GoalStatus
	Order       int
	CompletedAt *time.Time
}

// ActivityUpdate carries a partial activity change. Nil fields stay untouched.
type ActivityUpdate struct {
	AreaID      *string
	Title       *string
	Description *string
	Measure     *string
}

// GoalUpdate carries a partial goal change. Nil fields stay untouched.
// Flipping Status to completed stamps CompletedAt; flipping back clears it.
type GoalUpdate struct {
	PersonID    *string
	Title       *string
	Description *string
	Measure     *string
	DueDate     *string
	Status      *GoalStatus
}

// PersonStore persists documented persons in display order.
type PersonStore interface {
	ListPersons(ctx context.Context) ([]Person, error)
	GetPerson(ctx context.Context, id string) (Person, error)
	CreatePerson(ctx context.Context, name string) (Person, error)
	RenamePerson(ctx context.Context, id string, name string) (Person, error)
	// DeletePerson removes the person and all of their goals.
	DeletePerson(ctx context.Context, id string) error
	MovePersonUp(ctx context.Context, id string) (bool, error)
	MovePersonDown(ctx context.Context, id string) (bool, error)
}

// ActivityAreaStore persists activity areas in display order.
type ActivityAreaStore interface {
	ListActivityAreas(ctx context.Context) ([]ActivityArea, error)
	CreateActivityArea(ctx context.Context, name string) (ActivityArea, error)
	RenameActivityArea(ctx context.Context, id string, name string) (ActivityArea, error)
	// DeleteActivityArea removes the area and every activity inside it.
	DeleteActivityArea(ctx context.Context, id string) error
	MoveActivityAreaUp(ctx context.Context, id string) (bool, error)
	MoveActivityAreaDown(ctx context.Context, id string) (bool, error)
}

// ActivityStore persists activities. Move operations consider only the
// activities of the same area when determining adjacency.
type ActivityStore interface {
	ListActivities(ctx context.Context) ([]Activity, error)
	ListActivitiesByArea(ctx context.Context, areaID string) ([]Activity, error)
	GetActivity(ctx context.Context, id string) (Activity, error)
	CreateActivity(ctx context.Context, activity Activity) (Activity, error)
	UpdateActivity(ctx context.Context, id string, update ActivityUpdate) (Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	MoveActivityUp(ctx context.Context, id string) (bool, error)
	MoveActivityDown(ctx context.Context, id string) (bool, error)
}

// WorkBehaviorCategoryStore persists behavior categories in display order.
type WorkBehaviorCategoryStore interface {
	ListWorkBehaviorCategories(ctx context.Context) ([]WorkBehaviorCategory, error)
	CreateWorkBehaviorCategory(ctx context.Context, label, positive, negative string) (WorkBehaviorCategory, error)
	UpdateWorkBehaviorCategory(ctx context.Context, id string, label, positive, negative string) (WorkBehaviorCategory, error)
	DeleteWorkBehaviorCategory(ctx context.Context, id string) error
	MoveWorkBehaviorCategoryUp(ctx context.Context, id string) (bool, error)
	MoveWorkBehaviorCategoryDown(ctx context.Context, id string) (bool, error)
}

// GoalStore persists goals.
type GoalStore interface {
	ListGoals(ctx context.Context) ([]Goal, error)
	ListGoalsByPerson(ctx context.Context, personID string) ([]Goal, error)
	CreateGoal(ctx context.Context, goal Goal) (Goal, error)
	UpdateGoal(ctx context.Context, id string, update GoalUpdate) (Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// SettingsStore persists the documenting-person name.
type SettingsStore interface {
	DocumentingPerson(ctx context.Context) (string, error)
	SetDocumentingPerson(ctx context.Context, name string) error
}

// Snapshot is a full copy of all collections, used for export and import.
type Snapshot struct {
	Persons    []Person
	Categories []WorkBehaviorCategory
	Areas      []ActivityArea
	Activities []Activity
	Goals      []Goal
}

// TransferStore reads and replaces the complete dataset.
type TransferStore interface {
	ExportSnapshot(ctx context.Context) (Snapshot, error)
	// ImportSnapshot replaces every collection with the snapshot contents.
	ImportSnapshot(ctx context.Context, snapshot Snapshot) error
}

// Store bundles every persistence capability the service needs.
type Store interface {
	PersonStore
	ActivityAreaStore
	ActivityStore
	WorkBehaviorCategoryStore
	GoalStore
	SettingsStore
	TransferStore
}
