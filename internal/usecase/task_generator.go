package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
	"github.com/reviseapp/revise/pkg/roulette"
)

// TaskGenerator orchestrates subject, topic and subtopic selection into
// persisted tasks. A nil task with a nil error means nothing could be
// generated (empty curriculum) — an expected outcome, not a failure.
type TaskGenerator interface {
	GenerateForSubject(ctx context.Context, user *entity.User, subjectID int64) (*entity.Task, error)
	// GenerateReplacement draws the subject from the weekly distribution
	// when subjectID is nil.
	GenerateReplacement(ctx context.Context, user *entity.User, subjectID *int64) (*entity.Task, error)
	// GenerateDailyBatch attempts count generations; attempts that yield
	// nothing are logged and skipped, never aborting the batch.
	GenerateDailyBatch(ctx context.Context, user *entity.User, count int) ([]entity.Task, error)
}

// NewTaskGenerator wires the orchestrator. packingFraction is the share of
// the user's daily study time given to a single task before clamping to the
// [15, 120] minute band.
func NewTaskGenerator(
	subjects repository.SubjectRepository,
	taskTypes repository.TaskTypeRepository,
	tasks repository.TaskRepository,
	distributor SubjectDistributor,
	selector TopicSelector,
	packer SubtopicPacker,
	packingFraction float64,
	rng roulette.Rand,
	logger logrus.FieldLogger,
) TaskGenerator {
	return &taskGenerator{
		subjects:        subjects,
		taskTypes:       taskTypes,
		tasks:           tasks,
		distributor:     distributor,
		selector:        selector,
		packer:          packer,
		packingFraction: packingFraction,
		rng:             rng,
		logger:          logger,
		clock:           time.Now,
	}
}

type taskGenerator struct {
	subjects        repository.SubjectRepository
	taskTypes       repository.TaskTypeRepository
	tasks           repository.TaskRepository
	distributor     SubjectDistributor
	selector        TopicSelector
	packer          SubtopicPacker
	packingFraction float64
	rng             roulette.Rand
	logger          logrus.FieldLogger
	clock           func() time.Time
}

func (g *taskGenerator) GenerateForSubject(ctx context.Context, user *entity.User, subjectID int64) (*entity.Task, error) {
	subject, err := g.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, entity.ErrSubjectNotFound
	}

	taskTypes, err := g.eligibleTaskTypes(ctx, user.ID, subjectID)
	if err != nil {
		return nil, err
	}
	if len(taskTypes) == 0 {
		g.logger.WithField("subject_id", subjectID).Warn("no task types available, skipping generation")
		return nil, nil
	}
	taskType := taskTypes[g.rng.Intn(len(taskTypes))]

	topic, err := g.selector.SelectTopic(ctx, user.ID, subjectID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, nil
	}

	now := g.clock()
	task := &entity.Task{
		UserID:      user.ID,
		SubjectID:   subjectID,
		TopicID:     topic.ID,
		TaskTypeID:  taskType.ID,
		Title:       fmt.Sprintf("%s: %s", titleCase(taskType.Name), topic.Title),
		Description: topic.Description,
		DueDate:     startOfDay(now),
		CreatedAt:   now,
	}

	budget := g.timeBudget(user, now)
	if err := g.packer.Pack(ctx, task, budget); err != nil {
		// An unpacked task is still a valid (degenerate) task; packing
		// problems must not lose the whole generation.
		g.logger.WithError(err).WithField("topic_id", topic.ID).Warn("subtopic packing failed")
	}

	created, err := g.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("persist task: %w", err)
	}
	return created, nil
}

func (g *taskGenerator) GenerateReplacement(ctx context.Context, user *entity.User, subjectID *int64) (*entity.Task, error) {
	if subjectID != nil {
		return g.GenerateForSubject(ctx, user, *subjectID)
	}
	subject, err := g.distributor.SelectSubject(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, nil
	}
	return g.GenerateForSubject(ctx, user, subject.ID)
}

func (g *taskGenerator) GenerateDailyBatch(ctx context.Context, user *entity.User, count int) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0, count)
	failed := 0
	for i := 0; i < count; i++ {
		task, err := g.GenerateReplacement(ctx, user, nil)
		if err != nil {
			failed++
			g.logger.WithError(err).Warn("task generation attempt failed")
			continue
		}
		if task == nil {
			failed++
			continue
		}
		tasks = append(tasks, *task)
	}
	if failed > 0 {
		g.logger.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"requested": count,
			"failed":    failed,
		}).Info("daily batch completed with failed attempts")
	}
	return tasks, nil
}

// eligibleTaskTypes resolves the task-type pool: the subject's exclusive
// type when the toggle is on, otherwise the user's enabled types, otherwise
// every known type.
func (g *taskGenerator) eligibleTaskTypes(ctx context.Context, userID, subjectID int64) ([]entity.TaskType, error) {
	exclusiveID, err := g.taskTypes.ExclusiveForSubject(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	if exclusiveID != nil {
		tt, err := g.taskTypes.GetByID(ctx, *exclusiveID)
		if err != nil {
			return nil, err
		}
		if tt != nil {
			return []entity.TaskType{*tt}, nil
		}
		// Pinned type vanished; fall through to the regular pools.
	}

	enabled, err := g.taskTypes.ListEnabled(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(enabled) > 0 {
		return enabled, nil
	}
	return g.taskTypes.List(ctx)
}

// timeBudget converts the day's configured study hours into a single task's
// packing budget, clamped to the [15, 120] minute band.
func (g *taskGenerator) timeBudget(user *entity.User, now time.Time) int {
	hours := user.StudyHoursFor(now.Weekday())
	minutes := int(math.Round(hours * 60 * g.packingFraction))
	if minutes < entity.MinSubtopicMinutes {
		return entity.MinSubtopicMinutes
	}
	if minutes > entity.MaxTaskMinutes {
		return entity.MaxTaskMinutes
	}
	return minutes
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
