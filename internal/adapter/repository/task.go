package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/entity"
	entdb "github.com/reviseapp/revise/internal/infrastructure/database/ent"
	entsubjectpref "github.com/reviseapp/revise/internal/infrastructure/database/ent/subjectpreference"
	enttask "github.com/reviseapp/revise/internal/infrastructure/database/ent/task"
	enttasksubtopic "github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
	enttasktype "github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktype"
	enttasktypepref "github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
	"github.com/reviseapp/revise/internal/repository"
)

type taskRepository struct {
	client *entdb.Client
}

// NewTaskRepository constructs an ent-backed repository.
func NewTaskRepository(client *entdb.Client) repository.TaskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin task tx: %w", err)
	}

	row, err := tx.Task.Create().
		SetUserID(task.UserID).
		SetSubjectID(task.SubjectID).
		SetTopicID(task.TopicID).
		SetTaskTypeID(task.TaskTypeID).
		SetTitle(task.Title).
		SetDescription(task.Description).
		SetDueDate(task.DueDate).
		SetTotalDuration(task.TotalDuration).
		SetCreatedAt(task.CreatedAt).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create task: %w", err))
	}

	taskID := int64(row.ID)
	for _, ts := range task.Subtopics {
		_, err := tx.TaskSubtopic.Create().
			SetTaskID(taskID).
			SetSubtopicID(ts.SubtopicID).
			SetDuration(ts.Duration).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("create task subtopic: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit task tx: %w", err)
	}

	created := mapEntTask(row)
	created.Subtopics = lo.Map(task.Subtopics, func(ts entity.TaskSubtopic, _ int) entity.TaskSubtopic {
		ts.TaskID = taskID
		return ts
	})
	return &created, nil
}

func (r *taskRepository) GetByID(ctx context.Context, userID, id int64) (*entity.Task, error) {
	row, err := r.client.Task.Query().
		Where(
			enttask.IDEQ(int(id)),
			enttask.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	task := mapEntTask(row)
	if err := r.attachSubtopics(ctx, []*entity.Task{&task}); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	mutation := r.client.Task.UpdateOneID(int(task.ID)).
		SetTitle(task.Title).
		SetDescription(task.Description).
		SetTotalDuration(task.TotalDuration)
	if task.CompletedAt != nil {
		mutation.SetCompletedAt(*task.CompletedAt)
	} else {
		mutation.ClearCompletedAt()
	}
	if task.SkippedAt != nil {
		mutation.SetSkippedAt(*task.SkippedAt)
	} else {
		mutation.ClearSkippedAt()
	}

	row, err := mutation.Save(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	updated := mapEntTask(row)
	updated.Subtopics = task.Subtopics
	return &updated, nil
}

func (r *taskRepository) ListForDate(ctx context.Context, userID int64, day time.Time) ([]entity.Task, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := r.client.Task.Query().
		Where(
			enttask.UserIDEQ(userID),
			enttask.DueDateGTE(start),
			enttask.DueDateLT(end),
		).
		Order(entdb.Asc(enttask.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks for date: %w", err)
	}

	tasks := make([]entity.Task, 0, len(rows))
	refs := make([]*entity.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapEntTask(row))
		refs = append(refs, &tasks[len(tasks)-1])
	}
	if err := r.attachSubtopics(ctx, refs); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) CountBySubjectSince(ctx context.Context, userID int64, since time.Time) (map[int64]int, error) {
	var rows []struct {
		SubjectID int64 `json:"subject_id"`
		Count     int   `json:"count"`
	}
	err := r.client.Task.Query().
		Where(
			enttask.UserIDEQ(userID),
			enttask.CreatedAtGTE(since),
		).
		GroupBy(enttask.FieldSubjectID).
		Aggregate(entdb.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count tasks by subject: %w", err)
	}
	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.SubjectID] = row.Count
	}
	return counts, nil
}

// attachSubtopics loads the join rows for the given tasks in one query.
func (r *taskRepository) attachSubtopics(ctx context.Context, tasks []*entity.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := lo.Map(tasks, func(t *entity.Task, _ int) int64 { return t.ID })
	rows, err := r.client.TaskSubtopic.Query().
		Where(enttasksubtopic.TaskIDIn(ids...)).
		Order(entdb.Asc(enttasksubtopic.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list task subtopics: %w", err)
	}

	byTask := lo.GroupBy(rows, func(row *entdb.TaskSubtopic) int64 { return row.TaskID })
	for _, task := range tasks {
		task.Subtopics = lo.Map(byTask[task.ID], func(row *entdb.TaskSubtopic, _ int) entity.TaskSubtopic {
			return entity.TaskSubtopic{
				TaskID:     row.TaskID,
				SubtopicID: row.SubtopicID,
				Duration:   row.Duration,
			}
		})
	}
	return nil
}

func mapEntTask(row *entdb.Task) entity.Task {
	return entity.Task{
		ID:            int64(row.ID),
		UserID:        row.UserID,
		SubjectID:     row.SubjectID,
		TopicID:       row.TopicID,
		TaskTypeID:    row.TaskTypeID,
		Title:         row.Title,
		Description:   row.Description,
		DueDate:       row.DueDate,
		CreatedAt:     row.CreatedAt,
		CompletedAt:   row.CompletedAt,
		SkippedAt:     row.SkippedAt,
		TotalDuration: row.TotalDuration,
	}
}

type taskTypeRepository struct {
	client *entdb.Client
}

// NewTaskTypeRepository constructs an ent-backed repository.
func NewTaskTypeRepository(client *entdb.Client) repository.TaskTypeRepository {
	return &taskTypeRepository{client: client}
}

func (r *taskTypeRepository) List(ctx context.Context) ([]entity.TaskType, error) {
	rows, err := r.client.TaskType.Query().
		Order(entdb.Asc(enttasktype.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list task types: %w", err)
	}
	return lo.Map(rows, func(row *entdb.TaskType, _ int) entity.TaskType {
		return mapEntTaskType(row)
	}), nil
}

func (r *taskTypeRepository) GetByID(ctx context.Context, id int64) (*entity.TaskType, error) {
	row, err := r.client.TaskType.Query().
		Where(enttasktype.IDEQ(int(id))).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task type: %w", err)
	}
	tt := mapEntTaskType(row)
	return &tt, nil
}

func (r *taskTypeRepository) ListEnabled(ctx context.Context, userID int64) ([]entity.TaskType, error) {
	prefs, err := r.client.TaskTypePreference.Query().
		Where(
			enttasktypepref.UserIDEQ(userID),
			enttasktypepref.EnabledEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list task type preferences: %w", err)
	}
	if len(prefs) == 0 {
		return nil, nil
	}

	ids := lo.Map(prefs, func(p *entdb.TaskTypePreference, _ int) int {
		return int(p.TaskTypeID)
	})
	rows, err := r.client.TaskType.Query().
		Where(enttasktype.IDIn(ids...)).
		Order(entdb.Asc(enttasktype.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled task types: %w", err)
	}
	return lo.Map(rows, func(row *entdb.TaskType, _ int) entity.TaskType {
		return mapEntTaskType(row)
	}), nil
}

func (r *taskTypeRepository) ExclusiveForSubject(ctx context.Context, userID, subjectID int64) (*int64, error) {
	row, err := r.client.SubjectPreference.Query().
		Where(
			entsubjectpref.UserIDEQ(userID),
			entsubjectpref.SubjectIDEQ(subjectID),
		).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject preference: %w", err)
	}
	return row.ExclusiveTaskTypeID, nil
}

func mapEntTaskType(row *entdb.TaskType) entity.TaskType {
	return entity.TaskType{
		ID:          int64(row.ID),
		Name:        row.Name,
		Description: row.Description,
	}
}
