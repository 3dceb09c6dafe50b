package repository

import (
	"context"
	"time"

	"github.com/reviseapp/revise/internal/entity"
)

// TaskRepository persists generated tasks and their subtopic join rows.
type TaskRepository interface {
	// Create persists the task, its TaskSubtopic rows and the derived
	// total duration in a single transaction and returns the task with
	// its assigned id.
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetByID(ctx context.Context, userID, id int64) (*entity.Task, error)
	// Update persists completion/skip timestamps.
	Update(ctx context.Context, task *entity.Task) (*entity.Task, error)
	// ListForDate returns the user's tasks due on the given day, packed
	// subtopics included.
	ListForDate(ctx context.Context, userID int64, day time.Time) ([]entity.Task, error)
	// CountBySubjectSince returns how many tasks were created per subject
	// since the given instant.
	CountBySubjectSince(ctx context.Context, userID int64, since time.Time) (map[int64]int, error)
}

// TaskTypeRepository provides task type reference data and the user's
// generation preferences.
type TaskTypeRepository interface {
	List(ctx context.Context) ([]entity.TaskType, error)
	GetByID(ctx context.Context, id int64) (*entity.TaskType, error)
	// ListEnabled returns the task types the user has switched on; an
	// empty result means the user expressed no preference.
	ListEnabled(ctx context.Context, userID int64) ([]entity.TaskType, error)
	// ExclusiveForSubject returns the task type id the user pinned for the
	// subject, or nil when the exclusive toggle is off.
	ExclusiveForSubject(ctx context.Context, userID, subjectID int64) (*int64, error)
}
