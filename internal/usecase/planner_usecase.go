package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

// DailyPlan is the dashboard view of one day: outstanding tasks plus the
// ones already completed.
type DailyPlan struct {
	Active    []entity.Task
	Completed []entity.Task
}

// PlannerUsecase drives the day-to-day task lifecycle: the idempotent
// "ensure today's tasks" entry point plus completion and skipping.
type PlannerUsecase interface {
	// EnsureTodaysTasks returns today's tasks, generating a fresh batch
	// only when the day is empty. Calling it repeatedly without acting on
	// any task returns the same set.
	EnsureTodaysTasks(ctx context.Context, userID int64) (*DailyPlan, error)
	CompleteTask(ctx context.Context, userID, taskID int64) (*entity.Task, error)
	// SkipTask marks the task skipped and generates a replacement drawn
	// from the weekly subject distribution. The replacement may be nil.
	SkipTask(ctx context.Context, userID, taskID int64) (skipped, replacement *entity.Task, err error)
}

// NewPlannerUsecase wires the planner.
func NewPlannerUsecase(
	users repository.UserRepository,
	tasks repository.TaskRepository,
	generator TaskGenerator,
	confidence ConfidenceUsecase,
	logger logrus.FieldLogger,
) PlannerUsecase {
	return &plannerUsecase{
		users:      users,
		tasks:      tasks,
		generator:  generator,
		confidence: confidence,
		logger:     logger,
		clock:      time.Now,
	}
}

type plannerUsecase struct {
	users      repository.UserRepository
	tasks      repository.TaskRepository
	generator  TaskGenerator
	confidence ConfidenceUsecase
	logger     logrus.FieldLogger
	clock      func() time.Time
}

func (p *plannerUsecase) EnsureTodaysTasks(ctx context.Context, userID int64) (*DailyPlan, error) {
	user, err := p.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := p.clock()
	today := startOfDay(now)
	existing, err := p.tasks.ListForDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	plan := &DailyPlan{
		Active:    lo.Filter(existing, func(t entity.Task, _ int) bool { return t.IsActive() }),
		Completed: lo.Filter(existing, func(t entity.Task, _ int) bool { return t.CompletedAt != nil }),
	}
	if len(plan.Active) > 0 || len(plan.Completed) > 0 {
		return plan, nil
	}

	count := entity.DailyTaskCount(user.StudyHoursFor(now.Weekday()))
	generated, err := p.generator.GenerateDailyBatch(ctx, user, count)
	if err != nil {
		return nil, err
	}
	plan.Active = generated
	return plan, nil
}

func (p *plannerUsecase) CompleteTask(ctx context.Context, userID, taskID int64) (*entity.Task, error) {
	task, err := p.requireTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if task.CompletedAt != nil {
		return task, nil
	}

	task.Complete(p.clock())
	updated, err := p.tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	// Completing a task counts as addressing every subtopic it packed,
	// which resets the needs-attention clock for flagged items.
	for _, ts := range updated.Subtopics {
		if err := p.confidence.MarkAddressed(ctx, userID, ts.SubtopicID); err != nil {
			p.logger.WithError(err).WithField("subtopic_id", ts.SubtopicID).
				Warn("failed to mark subtopic addressed")
		}
	}
	return updated, nil
}

func (p *plannerUsecase) SkipTask(ctx context.Context, userID, taskID int64) (*entity.Task, *entity.Task, error) {
	user, err := p.requireUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	task, err := p.requireTask(ctx, userID, taskID)
	if err != nil {
		return nil, nil, err
	}
	if task.SkippedAt != nil {
		return task, nil, nil
	}

	task.Skip(p.clock())
	skipped, err := p.tasks.Update(ctx, task)
	if err != nil {
		return nil, nil, err
	}

	replacement, err := p.generator.GenerateReplacement(ctx, user, nil)
	if err != nil {
		// The skip already took effect; a failed replacement only costs
		// the user one task today.
		p.logger.WithError(err).Warn("replacement generation failed after skip")
		return skipped, nil, nil
	}
	return skipped, replacement, nil
}

func (p *plannerUsecase) requireUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := p.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func (p *plannerUsecase) requireTask(ctx context.Context, userID, taskID int64) (*entity.Task, error) {
	task, err := p.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}
	return task, nil
}
